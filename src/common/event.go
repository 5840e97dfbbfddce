package common

import (
	"errors"
	"ers/src/db"
	"ers/src/models"
	"ers/src/types"
	"log"

	"gorm.io/gorm"
)

// DeleteEvent removes an event together with every row that references
// it. Payments are removed first, then registrations, then tickets, then
// the event itself, all inside one transaction.
func DeleteEvent(eventID uint, userID uint, role string) error {
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.
			Select("id", "title", "organizer_id").
			Where(&models.Event{ID: eventID}).
			First(&event).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		if role != types.ROLE_ADMIN && event.OrganizerID != userID {
			return ErrNotEventOrganizer
		}

		if err := tx.
			Unscoped().
			Where("registration_id IN (?)",
				tx.Model(&models.Registration{}).Select("id").Where("event_id = ?", eventID)).
			Delete(&models.Payment{}).
			Error; err != nil {
			return err
		}
		if err := tx.
			Unscoped().
			Where("event_id = ?", eventID).
			Delete(&models.Registration{}).
			Error; err != nil {
			return err
		}
		if err := tx.
			Unscoped().
			Where("event_id = ?", eventID).
			Delete(&models.Ticket{}).
			Error; err != nil {
			return err
		}
		if err := tx.
			Unscoped().
			Where("id = ?", eventID).
			Delete(&models.Event{}).
			Error; err != nil {
			return err
		}
		log.Printf("Deleted event [%d] %s\n", eventID, event.Title)
		return nil
	})
}

// CompletePayment marks the payment behind a checkout session as paid and
// confirms its pending registration in the same transaction.
func CompletePayment(checkoutSessionID string) error {
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		if err := tx.
			Where("checkout_session_id = ?", checkoutSessionID).
			First(&payment).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}
		if payment.Status == types.PAYMENT_PAID {
			return nil
		}
		if err := tx.
			Model(&models.Payment{}).
			Where(&models.Payment{ID: payment.ID}).
			Update("status", types.PAYMENT_PAID).
			Error; err != nil {
			return err
		}
		if err := tx.
			Model(&models.Registration{}).
			Where("id = ? AND status = ?", payment.RegistrationID, types.REGISTRATION_PENDING).
			Update("status", types.REGISTRATION_CONFIRMED).
			Error; err != nil {
			return err
		}
		return nil
	})
}
