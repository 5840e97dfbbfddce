package models

import "ers/src/types"

type User struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Email    string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password string `json:"-"`
	Name     string `json:"name,omitempty"`
	Role     string `gorm:"default:'user'" json:"role,omitempty"`
	Phone    string `json:"phone,omitempty"`

	Registrations []Registration `gorm:"foreignKey:user_id" json:"registrations,omitempty"`
	Events        []Event        `gorm:"foreignKey:organizer_id" json:"events,omitempty"`

	types.Timestamps
}
