package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("s3cret", time.Hour)
	id := uuid.New()

	token, err := m.CreateToken(id, "traveller")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "traveller", claims.Role)
}

func TestTokenRejected(t *testing.T) {
	m := NewTokenManager("s3cret", time.Hour)
	token, err := NewTokenManager("other", time.Hour).CreateToken(uuid.New(), "traveller")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)
	_, err = m.ValidateToken(expired)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = NewTokenManager("", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
