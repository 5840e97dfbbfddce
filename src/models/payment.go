package models

import "ers/src/types"

type Payment struct {
	ID                uint                `gorm:"primarykey" json:"id"`
	RegistrationID    uint                `json:"registration_id,omitempty"`
	Amount            float32             `json:"amount"`
	Status            types.PaymentStatus `gorm:"default:'pending'" json:"status,omitempty"`
	CheckoutSessionID *string             `json:"-"`

	Registration Registration `gorm:"foreignKey:registration_id" json:"registration,omitempty"`

	types.Timestamps
}
