package common

import (
	"ers/src/types"
	"net/http"
)

var (
	ErrEventNotFound        = types.NewAppError(http.StatusNotFound, "Event not found")
	ErrTicketNotFound       = types.NewAppError(http.StatusNotFound, "Ticket not found")
	ErrNoTicketsAvailable   = types.NewAppError(http.StatusNotFound, "No tickets available for this event")
	ErrAlreadyRegistered    = types.NewAppError(http.StatusBadRequest, "You are already registered for this event")
	ErrSoldOut              = types.NewAppError(http.StatusBadRequest, "This ticket is sold out")
	ErrRegistrationNotFound = types.NewAppError(http.StatusNotFound, "Registration not found")
	ErrNotRegistrationOwner = types.NewAppError(http.StatusForbidden, "You do not own this registration")
	ErrCancelCheckedIn      = types.NewAppError(http.StatusBadRequest, "Cannot cancel a registration that has been checked in")
	ErrCheckInCancelled     = types.NewAppError(http.StatusBadRequest, "Cannot check in a cancelled registration")
	ErrNotEventOrganizer    = types.NewAppError(http.StatusForbidden, "You are not the organizer of this event")
	ErrPaymentNotFound      = types.NewAppError(http.StatusNotFound, "Payment not found")
)
