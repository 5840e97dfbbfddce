package common

import (
	"ers/src/types"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestDeleteEventNotFound(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := DeleteEvent(99, 1, types.ROLE_ORGANIZER)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestDeleteEventNotOrganizer(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "organizer_id"}).
			AddRow(1, "Go Conference", 2))
	mock.ExpectRollback()

	err := DeleteEvent(1, 1, types.ROLE_ORGANIZER)
	assert.ErrorIs(t, err, ErrNotEventOrganizer)
}

func TestDeleteEventCascade(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "organizer_id"}).
			AddRow(1, "Go Conference", 1))
	mock.ExpectExec(`DELETE FROM "payments"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "registrations"`).
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(`DELETE FROM "tickets"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "events"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := DeleteEvent(1, 1, types.ROLE_ORGANIZER)
	assert.Nil(t, err)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCompletePaymentNotFound(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := CompletePayment("cs_test_missing")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestCompletePaymentConfirmsRegistration(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "registration_id", "status"}).
			AddRow(3, 12, "pending"))
	mock.ExpectExec(`UPDATE "payments"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "registrations"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := CompletePayment("cs_test_123")
	assert.Nil(t, err)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCompletePaymentAlreadyPaid(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "registration_id", "status"}).
			AddRow(3, 12, "paid"))
	mock.ExpectCommit()

	err := CompletePayment("cs_test_123")
	assert.Nil(t, err)
}
