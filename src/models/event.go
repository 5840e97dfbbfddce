package models

import (
	"ers/src/types"
	"time"
)

type Event struct {
	ID          uint              `gorm:"primarykey" json:"id"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	ImageURL    string            `json:"image_url,omitempty"`
	StartTime   time.Time         `json:"start_time,omitempty"`
	EndTime     time.Time         `json:"end_time,omitempty"`
	Timezone    string            `gorm:"default:'UTC'" json:"timezone,omitempty"`
	MeetingLink string            `json:"meeting_link,omitempty"`
	Capacity    uint              `json:"capacity,omitempty"`
	IsFeatured  bool              `json:"is_featured"`
	Status      types.EventStatus `gorm:"default:'draft'" json:"status,omitempty"`
	OrganizerID uint              `json:"organizer_id,omitempty"`
	CategoryID  uint              `json:"category_id,omitempty"`

	Organizer     User           `gorm:"foreignKey:organizer_id" json:"organizer,omitempty"`
	Category      Category       `gorm:"foreignKey:category_id" json:"category,omitempty"`
	Tickets       []Ticket       `gorm:"foreignKey:event_id" json:"tickets,omitempty"`
	Registrations []Registration `gorm:"foreignKey:event_id" json:"registrations,omitempty"`

	types.Timestamps
}
