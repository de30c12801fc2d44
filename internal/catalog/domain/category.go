package domain

import "gorm.io/gorm"

// Category groups products. SortOrder controls display order in the
// catalog sidebar.
type Category struct {
	gorm.Model
	Name        string `gorm:"column:name;type:varchar(100);not null"`
	Slug        string `gorm:"column:slug;type:varchar(100);uniqueIndex;not null"`
	Description string `gorm:"column:description;type:text"`
	SortOrder   int    `gorm:"column:sort_order;index;not null;default:0"`
	Active      bool   `gorm:"column:active;not null;default:true"`
}

func (Category) TableName() string { return "categories" }
