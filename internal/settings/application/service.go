package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tokobajusablon/storefront/internal/settings/domain"
)

// SettingsService manages the store's keyed configuration documents.
type SettingsService struct {
	repo domain.SettingRepository
}

func NewSettingsService(repo domain.SettingRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the setting stored under key.
func (s *SettingsService) Get(ctx context.Context, key string) (*domain.Setting, error) {
	return s.repo.Get(ctx, key)
}

// List returns all stored settings.
func (s *SettingsService) List(ctx context.Context) ([]*domain.Setting, error) {
	return s.repo.List(ctx)
}

// Upsert validates the key and value shape, then inserts or replaces
// the document.
func (s *SettingsService) Upsert(ctx context.Context, key string, value json.RawMessage) error {
	if !domain.KnownKey(key) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownKey, key)
	}
	if !json.Valid(value) {
		return fmt.Errorf("value for %s is not valid JSON", key)
	}
	return s.repo.Upsert(ctx, key, value)
}

// WhatsAppContact returns the typed whatsapp_number value. Callers
// needing resilience apply their own fallback; this method reports
// missing configuration as an error.
func (s *SettingsService) WhatsAppContact(ctx context.Context) (*domain.WhatsAppContact, error) {
	setting, err := s.repo.Get(ctx, domain.KeyWhatsAppNumber)
	if err != nil {
		return nil, err
	}

	var contact domain.WhatsAppContact
	if err := json.Unmarshal(setting.Value, &contact); err != nil {
		return nil, fmt.Errorf("malformed whatsapp_number setting: %w", err)
	}
	return &contact, nil
}

// WhatsAppNumber implements the checkout contact provider.
func (s *SettingsService) WhatsAppNumber(ctx context.Context) (string, error) {
	contact, err := s.WhatsAppContact(ctx)
	if err != nil {
		return "", err
	}
	return contact.Number, nil
}

// StoreInfo returns the typed store_info value.
func (s *SettingsService) StoreInfo(ctx context.Context) (*domain.StoreInfo, error) {
	setting, err := s.repo.Get(ctx, domain.KeyStoreInfo)
	if err != nil {
		return nil, err
	}

	var info domain.StoreInfo
	if err := json.Unmarshal(setting.Value, &info); err != nil {
		return nil, fmt.Errorf("malformed store_info setting: %w", err)
	}
	return &info, nil
}

// SocialMedia returns the typed social_media value.
func (s *SettingsService) SocialMedia(ctx context.Context) (*domain.SocialMedia, error) {
	setting, err := s.repo.Get(ctx, domain.KeySocialMedia)
	if err != nil {
		return nil, err
	}

	var social domain.SocialMedia
	if err := json.Unmarshal(setting.Value, &social); err != nil {
		return nil, fmt.Errorf("malformed social_media setting: %w", err)
	}
	return &social, nil
}
