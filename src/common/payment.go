package common

import (
	"context"
	"errors"
	"ers/src/db"
	"ers/src/lib"
	"ers/src/models"
	"ers/src/types"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/stripe/stripe-go/v82"
	"gorm.io/gorm"
)

// CreateCheckoutSession opens a stripe hosted checkout for a pending
// registration and records the payment row tied to the session.
func CreateCheckoutSession(userID uint, registrationID uint) (*string, error) {
	db := db.GetDb()
	var registration models.Registration
	if err := db.
		Where(&models.Registration{ID: registrationID}).
		Preload("Event").
		Preload("Ticket").
		First(&registration).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	if registration.UserID != userID {
		return nil, ErrNotRegistrationOwner
	}
	if registration.Status != types.REGISTRATION_PENDING {
		return nil, types.NewAppError(http.StatusBadRequest, "Registration does not require payment")
	}

	appHost := os.Getenv("APP_HOST")
	createParams := stripe.CheckoutSessionCreateParams{
		SuccessURL: stripe.String(fmt.Sprint(appHost, "/registrations?checkout=success")),
		CancelURL:  stripe.String(fmt.Sprint(appHost, "/registrations?checkout=cancelled")),
		UIMode:     stripe.String("hosted"),
		Mode:       stripe.String("payment"),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency: stripe.String("usd"),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("%s - %s", registration.Event.Title, registration.Ticket.Name)),
					},
					UnitAmount: stripe.Int64(int64(registration.Ticket.Price * 100)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: map[string]string{
			"registration_id": fmt.Sprint(registration.ID),
		},
	}
	sc := lib.GetStripeClient()
	checkoutSession, err := sc.V1CheckoutSessions.Create(context.Background(), &createParams)
	if err != nil {
		log.Printf("CreateCheckoutSession failed: %s\n", err.Error())
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		payment := &models.Payment{
			RegistrationID:    registration.ID,
			Amount:            registration.Ticket.Price,
			Status:            types.PAYMENT_PENDING,
			CheckoutSessionID: &checkoutSession.ID,
		}
		return tx.Create(payment).Error
	})
	if err != nil {
		log.Printf("Error while creating Payment: %s\n", err.Error())
		return nil, err
	}
	return &checkoutSession.URL, nil
}

// GetPayment returns a payment visible to its registration owner or an admin.
func GetPayment(userID uint, role string, paymentID uint) (*models.Payment, error) {
	db := db.GetDb()
	var payment models.Payment
	if err := db.
		Where(&models.Payment{ID: paymentID}).
		Preload("Registration").
		First(&payment).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if role != types.ROLE_ADMIN && payment.Registration.UserID != userID {
		return nil, ErrNotRegistrationOwner
	}
	return &payment, nil
}
