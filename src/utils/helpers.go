package utils

import (
	"errors"
	"ers/src/config"
	"ers/src/db"
	"ers/src/models"
	"ers/src/types"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateTicketCode returns a short unique code attendees present at
// check-in, e.g. TKT-9F3A1C08B2D4.
func GenerateTicketCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("TKT-%s", strings.ToUpper(raw[:12]))
}

func GenerateJWT(email string, userID uint, role string) (string, error) {
	key := []byte(os.Getenv("JWT_SECRET"))
	claims := types.Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString(key)
}

// CreateNewEvent creates the event together with a default ticket in one
// transaction so new events are always registerable.
func CreateNewEvent(params *types.CreateEventRequestBody, organizerID uint) (uint, error) {
	startTime, err := time.Parse(config.TIME_PARSE_FORMAT, params.StartTime)
	if err != nil {
		log.Printf("Error parsing start_time: %s\n", err.Error())
		return 0, err
	}
	endTime, err := time.Parse(config.TIME_PARSE_FORMAT, params.EndTime)
	if err != nil {
		log.Printf("Error parsing end_time: %s\n", err.Error())
		return 0, err
	}
	timezone := params.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	event := models.Event{
		Title:       params.Title,
		Description: params.Description,
		ImageURL:    params.ImageURL,
		StartTime:   startTime,
		EndTime:     endTime,
		Timezone:    timezone,
		MeetingLink: params.MeetingLink,
		Capacity:    params.Capacity,
		OrganizerID: organizerID,
		CategoryID:  params.CategoryID,
		Status:      types.EVENT_DRAFT,
	}

	var eventID uint
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		ticket := models.Ticket{
			EventID:     event.ID,
			TicketType:  "general",
			Name:        "General Admission",
			Description: "Default ticket",
			Price:       0,
			Quantity:    event.Capacity,
			Sold:        0,
		}
		if len(params.Tickets) > 0 {
			item := params.Tickets[0]
			if item.Name != "" {
				ticket.Name = item.Name
			}
			if item.Description != "" {
				ticket.Description = item.Description
			}
			ticket.Price = item.Price
			if item.Quantity > 0 {
				ticket.Quantity = item.Quantity
			}
		}
		if err := tx.Create(&ticket).Error; err != nil {
			return err
		}
		eventID = event.ID
		return nil
	})
	if err != nil {
		log.Printf("Error creating event: %s\n", err.Error())
		return 0, err
	}
	return eventID, nil
}

func GetEvents(filters *types.EventQueryFilters) ([]models.Event, error) {
	db := db.GetDb()
	q := db.Model(&models.Event{})
	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}
	if filters.CategoryID > 0 {
		q = q.Where("category_id = ?", filters.CategoryID)
	}
	if filters.Search != "" {
		term := fmt.Sprintf("%%%s%%", filters.Search)
		q = q.Where("title ILIKE ? OR description ILIKE ?", term, term)
	}
	limit := filters.Limit
	if limit <= 0 {
		limit = 10
	}
	var events []models.Event
	if err := q.
		Preload("Organizer").
		Preload("Category").
		Preload("Tickets").
		Order("created_at DESC").
		Offset(filters.Page * limit).
		Limit(limit).
		Find(&events).
		Error; err != nil {
		log.Printf("Error retrieving events: %s\n", err.Error())
		return nil, err
	}
	return events, nil
}

func GetEventByID(eventID uint) (*models.Event, error) {
	db := db.GetDb()
	var event models.Event
	if err := db.
		Where(&models.Event{ID: eventID}).
		Preload("Organizer").
		Preload("Category").
		Preload("Tickets").
		Preload("Registrations").
		Preload("Registrations.User").
		Preload("Registrations.Ticket").
		First(&event).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewAppError(http.StatusNotFound, "Event not found")
		}
		return nil, err
	}
	return &event, nil
}

func UpdateEvent(eventID uint, params *types.UpdateEventRequestBody, userID uint, role string) (*models.Event, error) {
	event, err := GetEventByID(eventID)
	if err != nil {
		return nil, err
	}
	if role != types.ROLE_ADMIN && event.OrganizerID != userID {
		return nil, types.NewAppError(http.StatusForbidden, "You can only update your own events")
	}
	updates := map[string]any{}
	if params.Title != nil {
		updates["title"] = *params.Title
	}
	if params.Description != nil {
		updates["description"] = *params.Description
	}
	if params.ImageURL != nil {
		updates["image_url"] = *params.ImageURL
	}
	if params.StartTime != nil {
		startTime, err := time.Parse(config.TIME_PARSE_FORMAT, *params.StartTime)
		if err != nil {
			return nil, err
		}
		updates["start_time"] = startTime
	}
	if params.EndTime != nil {
		endTime, err := time.Parse(config.TIME_PARSE_FORMAT, *params.EndTime)
		if err != nil {
			return nil, err
		}
		updates["end_time"] = endTime
	}
	if params.MeetingLink != nil {
		updates["meeting_link"] = *params.MeetingLink
	}
	if params.Timezone != nil {
		updates["timezone"] = *params.Timezone
	}
	if params.Capacity != nil {
		updates["capacity"] = *params.Capacity
	}
	if params.CategoryID != nil {
		updates["category_id"] = *params.CategoryID
	}
	if params.Status != nil {
		updates["status"] = *params.Status
	}
	db := db.GetDb()
	if len(updates) > 0 {
		if err := db.
			Model(&models.Event{}).
			Where(&models.Event{ID: eventID}).
			Updates(updates).
			Error; err != nil {
			log.Printf("Error updating event [%d]: %s\n", eventID, err.Error())
			return nil, err
		}
	}
	return GetEventByID(eventID)
}

func PublishEvent(eventID uint, userID uint, role string) (*models.Event, error) {
	event, err := GetEventByID(eventID)
	if err != nil {
		return nil, err
	}
	if role != types.ROLE_ADMIN && event.OrganizerID != userID {
		return nil, types.NewAppError(http.StatusForbidden, "You can only publish your own events")
	}
	db := db.GetDb()
	if err := db.
		Model(&models.Event{}).
		Where(&models.Event{ID: eventID}).
		Update("status", types.EVENT_PUBLISHED).
		Error; err != nil {
		log.Printf("Error publishing event [%d]: %s\n", eventID, err.Error())
		return nil, err
	}
	event.Status = types.EVENT_PUBLISHED
	return event, nil
}

func GetEventStats(eventID uint) (*types.EventStats, error) {
	event, err := GetEventByID(eventID)
	if err != nil {
		return nil, err
	}
	prices := make(map[uint]float32, len(event.Tickets))
	stats := types.EventStats{}
	for _, t := range event.Tickets {
		prices[t.ID] = t.Price
		stats.TicketsSold += int64(t.Sold)
	}
	for _, r := range event.Registrations {
		stats.TotalRegistrations++
		if r.CheckedIn {
			stats.CheckedIn++
		}
		switch r.Status {
		case types.REGISTRATION_PENDING:
			stats.Pending++
		case types.REGISTRATION_CONFIRMED:
			stats.Confirmed++
		}
		stats.Revenue += prices[r.TicketID]
	}
	return &stats, nil
}

func CreateNewTicket(eventID uint, params *types.CreateTicketRequestBody, userID uint, role string) (*models.Ticket, error) {
	db := db.GetDb()
	var ticket models.Ticket
	err := db.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.
			Where(&models.Event{ID: eventID}).
			First(&event).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewAppError(http.StatusNotFound, "Event not found")
			}
			return err
		}
		if role != types.ROLE_ADMIN && event.OrganizerID != userID {
			return types.NewAppError(http.StatusForbidden, "You can only manage tickets for your own events")
		}
		ticketType := params.TicketType
		if ticketType == "" {
			ticketType = "general"
		}
		ticket = models.Ticket{
			EventID:     eventID,
			TicketType:  ticketType,
			Name:        params.Name,
			Description: params.Description,
			Price:       params.Price,
			Quantity:    params.Quantity,
			Sold:        0,
		}
		return tx.Create(&ticket).Error
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func UpdateTicket(ticketID uint, params *types.UpdateTicketRequestBody, userID uint, role string) (*models.Ticket, error) {
	db := db.GetDb()
	var ticket models.Ticket
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where(&models.Ticket{ID: ticketID}).
			Preload("Event").
			First(&ticket).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewAppError(http.StatusNotFound, "Ticket not found")
			}
			return err
		}
		if role != types.ROLE_ADMIN && ticket.Event.OrganizerID != userID {
			return types.NewAppError(http.StatusForbidden, "You can only manage tickets for your own events")
		}
		updates := map[string]any{}
		if params.Name != nil {
			updates["name"] = *params.Name
		}
		if params.Description != nil {
			updates["description"] = *params.Description
		}
		if params.Price != nil {
			updates["price"] = *params.Price
		}
		if params.Quantity != nil {
			if *params.Quantity < ticket.Sold {
				return types.NewAppError(http.StatusBadRequest, "Quantity cannot be lower than tickets already sold")
			}
			updates["quantity"] = *params.Quantity
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.
			Model(&models.Ticket{}).
			Where(&models.Ticket{ID: ticketID}).
			Updates(updates).
			Error; err != nil {
			return err
		}
		return tx.Where(&models.Ticket{ID: ticketID}).First(&ticket).Error
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func DeleteTicket(ticketID uint, userID uint, role string) error {
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		var ticket models.Ticket
		if err := tx.
			Where(&models.Ticket{ID: ticketID}).
			Preload("Event").
			First(&ticket).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewAppError(http.StatusNotFound, "Ticket not found")
			}
			return err
		}
		if role != types.ROLE_ADMIN && ticket.Event.OrganizerID != userID {
			return types.NewAppError(http.StatusForbidden, "You can only manage tickets for your own events")
		}
		var count int64
		if err := tx.
			Model(&models.Registration{}).
			Where("ticket_id = ? AND status <> ?", ticketID, types.REGISTRATION_CANCELLED).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count > 0 {
			return types.NewAppError(http.StatusBadRequest, "Cannot delete a ticket with active registrations")
		}
		return tx.Unscoped().Where("id = ?", ticketID).Delete(&models.Ticket{}).Error
	})
}

func GetTicketsForEvent(eventID uint) ([]models.Ticket, error) {
	db := db.GetDb()
	var tickets []models.Ticket
	if err := db.
		Where(&models.Ticket{EventID: eventID}).
		Order("id ASC").
		Find(&tickets).
		Error; err != nil {
		log.Printf("Error retrieving tickets for event [%d]: %s\n", eventID, err.Error())
		return nil, err
	}
	return tickets, nil
}

func GetTicket(ticketID uint) (*models.Ticket, error) {
	db := db.GetDb()
	var ticket models.Ticket
	if err := db.
		Where(&models.Ticket{ID: ticketID}).
		First(&ticket).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewAppError(http.StatusNotFound, "Ticket not found")
		}
		return nil, err
	}
	return &ticket, nil
}

func GetCategories() ([]models.Category, error) {
	db := db.GetDb()
	var categories []models.Category
	if err := db.
		Order("name ASC").
		Find(&categories).
		Error; err != nil {
		log.Printf("Error retrieving categories: %s\n", err.Error())
		return nil, err
	}
	return categories, nil
}

func GetCategoryBySlug(categorySlug string) (*models.Category, error) {
	db := db.GetDb()
	var category models.Category
	if err := db.
		Where(&models.Category{Slug: categorySlug}).
		Preload("Events", "status = ?", types.EVENT_PUBLISHED).
		First(&category).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewAppError(http.StatusNotFound, "Category not found")
		}
		return nil, err
	}
	return &category, nil
}

func CreateCategory(params *types.CreateCategoryRequestBody) (*models.Category, error) {
	category := models.Category{
		Name:  params.Name,
		Slug:  slug.Make(params.Name),
		Color: params.Color,
	}
	db := db.GetDb()
	if err := db.Create(&category).Error; err != nil {
		log.Printf("Error creating category: %s\n", err.Error())
		return nil, err
	}
	return &category, nil
}
