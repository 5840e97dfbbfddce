package models

import (
	"ers/src/types"
	"time"
)

// Registration is a user's claim on one ticket tier of one event. At most one
// non-cancelled registration may exist per (user_id, event_id); the partial
// unique index enforcing that is created in boot.InitDb.
type Registration struct {
	ID           uint                     `gorm:"primarykey" json:"id"`
	UserID       uint                     `json:"user_id,omitempty"`
	EventID      uint                     `json:"event_id,omitempty"`
	TicketID     uint                     `json:"ticket_id,omitempty"`
	TicketCode   string                   `gorm:"uniqueIndex" json:"ticket_code,omitempty"`
	QRCodeURL    string                   `json:"qr_code_url,omitempty"`
	Status       types.RegistrationStatus `gorm:"default:'pending'" json:"status,omitempty"`
	CheckedIn    bool                     `json:"checked_in"`
	RegisteredAt time.Time                `gorm:"autoCreateTime" json:"registered_at,omitempty"`

	User   User   `gorm:"foreignKey:user_id" json:"user,omitempty"`
	Event  Event  `gorm:"foreignKey:event_id" json:"event,omitempty"`
	Ticket Ticket `gorm:"foreignKey:ticket_id" json:"ticket,omitempty"`

	types.Timestamps
}
