package types

import (
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type EventStatus string

const (
	EVENT_DRAFT     EventStatus = "draft"
	EVENT_PUBLISHED EventStatus = "published"
)

type RegistrationStatus string

const (
	REGISTRATION_PENDING   RegistrationStatus = "pending"
	REGISTRATION_CONFIRMED RegistrationStatus = "confirmed"
	REGISTRATION_CANCELLED RegistrationStatus = "cancelled"
)

type PaymentStatus string

const (
	PAYMENT_PENDING PaymentStatus = "pending"
	PAYMENT_PAID    PaymentStatus = "paid"
	PAYMENT_FAILED  PaymentStatus = "failed"
)

const (
	ROLE_USER      = "user"
	ROLE_ORGANIZER = "organizer"
	ROLE_ADMIN     = "admin"
)

type CreateEventRequestBody struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description,omitempty"`
	ImageURL    string             `json:"image_url,omitempty"`
	StartTime   string             `json:"start_time" binding:"required,bookabledate" time_format:"2006-01-02 15:04:05 -07:00"`
	EndTime     string             `json:"end_time" binding:"required,gtdate=StartTime" time_format:"2006-01-02 15:04:05 -07:00"`
	Timezone    string             `json:"timezone,omitempty"`
	MeetingLink string             `json:"meeting_link,omitempty"`
	Capacity    uint               `json:"capacity" binding:"required,min=1"`
	CategoryID  uint               `json:"category_id,omitempty"`
	Tickets     []CreateTicketItem `json:"tickets,omitempty"`
}

type CreateTicketItem struct {
	TicketType  string  `json:"ticket_type,omitempty"`
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float32 `json:"price,omitempty"`
	Quantity    uint    `json:"quantity,omitempty"`
}

type UpdateEventRequestBody struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	StartTime   *string `json:"start_time,omitempty" binding:"omitempty,bookabledate" time_format:"2006-01-02 15:04:05 -07:00"`
	EndTime     *string `json:"end_time,omitempty" time_format:"2006-01-02 15:04:05 -07:00"`
	Timezone    *string `json:"timezone,omitempty"`
	MeetingLink *string `json:"meeting_link,omitempty"`
	Capacity    *uint   `json:"capacity,omitempty"`
	CategoryID  *uint   `json:"category_id,omitempty"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=draft published"`
}

type CreateTicketRequestBody struct {
	EventID     uint    `json:"event_id" binding:"required"`
	TicketType  string  `json:"ticket_type" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description,omitempty"`
	Price       float32 `json:"price" binding:"min=0"`
	Quantity    uint    `json:"quantity" binding:"required,min=1"`
}

type UpdateTicketRequestBody struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float32 `json:"price,omitempty" binding:"omitempty,min=0"`
	Quantity    *uint    `json:"quantity,omitempty" binding:"omitempty,min=1"`
}

type CreateRegistrationRequestBody struct {
	EventID  uint `json:"event_id" binding:"required"`
	TicketID uint `json:"ticket_id,omitempty"`
}

type CreateCategoryRequestBody struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color,omitempty"`
}

type RegisterUserRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone,omitempty"`
}

type LoginRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequestBody struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

type CreateCheckoutRequestBody struct {
	RegistrationID uint `json:"registration_id" binding:"required"`
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type EventIDRequestParams struct {
	EventID uint `uri:"eventId" binding:"required"`
}

type SlugRequestParams struct {
	Slug string `uri:"slug" binding:"required"`
}

type EventQueryFilters struct {
	Status     string `form:"status"`
	CategoryID uint   `form:"category_id"`
	Search     string `form:"search"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

type EventStats struct {
	TotalRegistrations int64   `json:"total_registrations"`
	CheckedIn          int64   `json:"checked_in"`
	Pending            int64   `json:"pending"`
	Confirmed          int64   `json:"confirmed"`
	TicketsSold        int64   `json:"tickets_sold"`
	Revenue            float32 `json:"revenue"`
}
