package models

import "ers/src/types"

// Ticket is a sellable tier of an event. Sold is only ever mutated inside
// a transaction holding a row lock on the ticket, so 0 <= Sold <= Quantity.
type Ticket struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	EventID     uint    `json:"event_id,omitempty"`
	TicketType  string  `gorm:"default:'general'" json:"ticket_type,omitempty"`
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float32 `json:"price"`
	Quantity    uint    `json:"quantity,omitempty"`
	Sold        uint    `json:"sold"`

	Event         Event          `gorm:"foreignKey:event_id" json:"event,omitempty"`
	Registrations []Registration `gorm:"foreignKey:ticket_id" json:"registrations,omitempty"`

	types.Timestamps
}
