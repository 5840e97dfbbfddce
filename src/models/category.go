package models

import "ers/src/types"

type Category struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Name  string `json:"name,omitempty"`
	Slug  string `gorm:"uniqueIndex" json:"slug,omitempty"`
	Color string `json:"color,omitempty"`

	Events []Event `gorm:"foreignKey:category_id" json:"events,omitempty"`

	types.Timestamps
}
