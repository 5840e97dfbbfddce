package utils

import (
	"ers/src/types"
	"os"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestGenerateTicketCode(t *testing.T) {
	code := GenerateTicketCode()
	assert.True(t, strings.HasPrefix(code, "TKT-"))
	assert.Len(t, code, 16)
	assert.Equal(t, code, strings.ToUpper(code))

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		c := GenerateTicketCode()
		assert.False(t, seen[c], "duplicate ticket code %s", c)
		seen[c] = true
	}
}

func TestGenerateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT("someone@example.com", 42, types.ROLE_ORGANIZER)
	assert.Nil(t, err)
	assert.NotEmpty(t, token)

	claims := &types.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tk *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	assert.Nil(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "someone@example.com", claims.Email)
	assert.Equal(t, types.ROLE_ORGANIZER, claims.Role)
	assert.Equal(t, "42", claims.Subject)
}
