package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// StringList stores an ordered list of strings as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// Product is a catalog entry. Size and color variant lists may be
// empty; such products go into the cart with empty variant strings.
type Product struct {
	gorm.Model
	Name          string     `gorm:"column:name;type:varchar(255);not null"`
	Slug          string     `gorm:"column:slug;type:varchar(255);uniqueIndex;not null"`
	Price         int64      `gorm:"column:price;not null"`
	Description   string     `gorm:"column:description;type:text"`
	CategoryID    uint       `gorm:"column:category_id;index"`
	Images        StringList `gorm:"column:images;type:json"`
	SizeVariants  StringList `gorm:"column:size_variants;type:json"`
	ColorVariants StringList `gorm:"column:color_variants;type:json"`
	Stock         int        `gorm:"column:stock;not null;default:0"`
	Active        bool       `gorm:"column:active;not null;default:true"`
	Featured      bool       `gorm:"column:featured;not null;default:false"`
}

func (Product) TableName() string { return "products" }
