package domain

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// Setting is one keyed JSON configuration document.
type Setting struct {
	gorm.Model
	Key   string          `gorm:"column:setting_key;type:varchar(64);uniqueIndex;not null" json:"key"`
	Value json.RawMessage `gorm:"column:value;type:json" json:"value"`
}

func (Setting) TableName() string { return "settings" }

// Known setting keys.
const (
	KeyWhatsAppNumber = "whatsapp_number"
	KeyStoreInfo      = "store_info"
	KeySocialMedia    = "social_media"
)

// ErrNotFound is returned when a setting key has no stored value.
var ErrNotFound = errors.New("setting not found")

// ErrUnknownKey rejects writes to keys outside the known set.
var ErrUnknownKey = errors.New("unknown setting key")

// KnownKey reports whether key belongs to the known set.
func KnownKey(key string) bool {
	switch key {
	case KeyWhatsAppNumber, KeyStoreInfo, KeySocialMedia:
		return true
	}
	return false
}

// WhatsAppContact is the value under whatsapp_number. Number is
// digits-only international format; Display is the human-readable
// label shown in the storefront footer.
type WhatsAppContact struct {
	Number  string `json:"number"`
	Display string `json:"display"`
}

// StoreInfo is the value under store_info.
type StoreInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Hours   string `json:"hours"`
}

// SocialMedia is the value under social_media.
type SocialMedia struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	TikTok    string `json:"tiktok"`
}
