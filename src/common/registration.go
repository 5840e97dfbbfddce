package common

import (
	"errors"
	"ers/src/db"
	"ers/src/lib"
	"ers/src/models"
	"ers/src/types"
	"ers/src/utils"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegisterForEvent creates a registration for the given user. When no
// ticket is specified the first ticket of the event is selected. The sold
// counter is incremented inside the same transaction under a row lock, so
// two concurrent callers can never oversell a ticket.
func RegisterForEvent(userID uint, body *types.CreateRegistrationRequestBody) (*models.Registration, error) {
	var registration models.Registration
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.
			Where(&models.Event{ID: body.EventID}).
			First(&event).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		ticketID := body.TicketID
		if ticketID == 0 {
			var first models.Ticket
			if err := tx.
				Where(&models.Ticket{EventID: body.EventID}).
				Order("id ASC").
				First(&first).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNoTicketsAvailable
				}
				return err
			}
			ticketID = first.ID
		}

		var ticket models.Ticket
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(&models.Ticket{ID: ticketID, EventID: body.EventID}).
			First(&ticket).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketNotFound
			}
			return err
		}

		var count int64
		if err := tx.
			Model(&models.Registration{}).
			Where("user_id = ? AND event_id = ? AND status <> ?", userID, body.EventID, types.REGISTRATION_CANCELLED).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyRegistered
		}

		res := tx.
			Model(&models.Ticket{}).
			Where("id = ? AND sold < quantity", ticket.ID).
			Update("sold", gorm.Expr("sold + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSoldOut
		}

		status := types.REGISTRATION_CONFIRMED
		if ticket.Price > 0 {
			status = types.REGISTRATION_PENDING
		}
		registration = models.Registration{
			UserID:     userID,
			EventID:    body.EventID,
			TicketID:   ticket.ID,
			TicketCode: utils.GenerateTicketCode(),
			Status:     status,
		}
		if err := tx.Create(&registration).Error; err != nil {
			return err
		}

		qrCodeURL, err := lib.GenerateTicketQR(registration.ID, registration.TicketCode, event.Title)
		if err != nil {
			log.Printf("Could not generate QR code for registration [%d]: %s\n", registration.ID, err.Error())
			return err
		}
		if err := tx.
			Model(&models.Registration{}).
			Where(&models.Registration{ID: registration.ID}).
			Update("qr_code_url", qrCodeURL).
			Error; err != nil {
			return err
		}
		registration.QRCodeURL = qrCodeURL
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := db.
		Where(&models.Registration{ID: registration.ID}).
		Preload("User").
		Preload("Event").
		Preload("Ticket").
		First(&registration).
		Error; err != nil {
		log.Printf("Error reloading registration [%d]: %s\n", registration.ID, err.Error())
		return &registration, nil
	}
	go sendRegistrationConfirmation(registration.User.Email, registration.Event.Title, registration.TicketCode)
	return &registration, nil
}

// CancelRegistration flips the registration to cancelled and releases the
// ticket back to inventory. Cancelling twice is a no-op for the counter.
func CancelRegistration(userID uint, role string, registrationID uint) (*models.Registration, error) {
	var registration models.Registration
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where(&models.Registration{ID: registrationID}).
			Preload("Event").
			First(&registration).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRegistrationNotFound
			}
			return err
		}
		if registration.UserID != userID && role != types.ROLE_ADMIN {
			return ErrNotRegistrationOwner
		}
		if registration.CheckedIn {
			return ErrCancelCheckedIn
		}

		res := tx.
			Model(&models.Registration{}).
			Where("id = ? AND status <> ?", registrationID, types.REGISTRATION_CANCELLED).
			Update("status", types.REGISTRATION_CANCELLED)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 1 {
			if err := tx.
				Model(&models.Ticket{}).
				Where("id = ?", registration.TicketID).
				Update("sold", gorm.Expr("GREATEST(sold - 1, 0)")).
				Error; err != nil {
				return err
			}
		}
		registration.Status = types.REGISTRATION_CANCELLED
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

// CheckInAttendee marks the registration as checked in. Only the event
// organizer or an admin may check in attendees. Checking in a registration
// that is already checked in returns it unchanged.
func CheckInAttendee(userID uint, role string, registrationID uint) (*models.Registration, error) {
	var registration models.Registration
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where(&models.Registration{ID: registrationID}).
			Preload("Event").
			Preload("User").
			Preload("Ticket").
			First(&registration).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRegistrationNotFound
			}
			return err
		}
		if registration.Event.OrganizerID != userID && role != types.ROLE_ADMIN {
			return ErrNotEventOrganizer
		}
		if registration.Status == types.REGISTRATION_CANCELLED {
			return ErrCheckInCancelled
		}
		if registration.CheckedIn {
			return nil
		}
		if err := tx.
			Model(&models.Registration{}).
			Where(&models.Registration{ID: registrationID}).
			Update("checked_in", true).
			Error; err != nil {
			return err
		}
		registration.CheckedIn = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

func GetRegistrationsByUser(userID uint) ([]models.Registration, error) {
	var registrations []models.Registration
	db := db.GetDb()
	if err := db.
		Where(&models.Registration{UserID: userID}).
		Preload("Event").
		Preload("Ticket").
		Order("registered_at DESC").
		Find(&registrations).
		Error; err != nil {
		log.Printf("Error retrieving registrations for user [%d]: %s\n", userID, err.Error())
		return nil, err
	}
	return registrations, nil
}

func GetRegistrationsByEvent(eventID uint, userID uint, role string) ([]models.Registration, error) {
	db := db.GetDb()
	var event models.Event
	if err := db.
		Where(&models.Event{ID: eventID}).
		First(&event).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if event.OrganizerID != userID && role != types.ROLE_ADMIN {
		return nil, ErrNotEventOrganizer
	}
	var registrations []models.Registration
	if err := db.
		Where(&models.Registration{EventID: eventID}).
		Preload("User").
		Preload("Ticket").
		Order("registered_at DESC").
		Find(&registrations).
		Error; err != nil {
		log.Printf("Error retrieving registrations for event [%d]: %s\n", eventID, err.Error())
		return nil, err
	}
	return registrations, nil
}

// GetPublicRegistrationsByEvent is the guest-facing attendee listing. No
// ownership check, but the event must exist.
func GetPublicRegistrationsByEvent(eventID uint) ([]models.Registration, error) {
	db := db.GetDb()
	var event models.Event
	if err := db.
		Select("id").
		Where(&models.Event{ID: eventID}).
		First(&event).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	var registrations []models.Registration
	if err := db.
		Where(&models.Registration{EventID: eventID}).
		Preload("User").
		Preload("Ticket").
		Order("registered_at DESC").
		Find(&registrations).
		Error; err != nil {
		log.Printf("Error retrieving registrations for event [%d]: %s\n", eventID, err.Error())
		return nil, err
	}
	return registrations, nil
}

// GetRegistrationQR serves the QR image for a registration to its owner,
// the event organizer, or an admin.
func GetRegistrationQR(userID uint, role string, registrationID uint) ([]byte, error) {
	db := db.GetDb()
	var registration models.Registration
	if err := db.
		Where(&models.Registration{ID: registrationID}).
		Preload("Event").
		First(&registration).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	if registration.UserID != userID && registration.Event.OrganizerID != userID && role != types.ROLE_ADMIN {
		return nil, ErrNotRegistrationOwner
	}
	return lib.DownloadTicketQR(registration.TicketCode)
}

func sendRegistrationConfirmation(email string, eventTitle string, ticketCode string) {
	body := fmt.Sprintf(`
    <h2>Event Registration Confirmed!</h2>
    <p>Thank you for registering for <strong>%s</strong></p>
    <p>Your ticket code: <strong>%s</strong></p>
    <p>Please keep this code safe for check-in.</p>
  `, eventTitle, ticketCode)
	if err := lib.SendMail(&lib.SendMailInput{
		From:     "noreply@ers.local",
		FromName: "Event Registration",
		To:       []string{email},
		Subject:  fmt.Sprintf("Registration Confirmation - %s", eventTitle),
		Body:     body,
		Html:     true,
	}); err != nil {
		log.Printf("Error sending confirmation email to %s: %s\n", email, err.Error())
	}
}
