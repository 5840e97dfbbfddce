package types

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorStatus(t *testing.T) {
	notFound := NewAppError(http.StatusNotFound, "Event not found")
	assert.Equal(t, http.StatusNotFound, ErrorStatus(notFound))
	assert.Equal(t, "Event not found", notFound.Error())

	forbidden := NewAppError(http.StatusForbidden, "You do not own this registration")
	assert.Equal(t, http.StatusForbidden, ErrorStatus(forbidden))

	wrapped := fmt.Errorf("registering: %w", notFound)
	assert.Equal(t, http.StatusNotFound, ErrorStatus(wrapped))

	plain := errors.New("something broke")
	assert.Equal(t, http.StatusBadRequest, ErrorStatus(plain))
}
