package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusjobs-backend/internal/apperror"
)

func TestTokenManager_roundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, testIssuer, time.Hour)
	userID := uuid.New()

	raw, issued, err := m.Generate(userID)
	require.NoError(t, err)

	claims, got, err := m.Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
	assert.Equal(t, issued.ID, claims.ID)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestTokenManager_uniqueIDs(t *testing.T) {
	m := NewTokenManager(testSecret, testIssuer, time.Hour)
	_, a, err := m.Generate(uuid.New())
	require.NoError(t, err)
	_, b, err := m.Generate(uuid.New())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestTokenManager_rejects(t *testing.T) {
	m := NewTokenManager(testSecret, testIssuer, time.Hour)
	userID := uuid.New()

	expired := NewTokenManager(testSecret, testIssuer, time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, _, err := expired.Generate(userID)
	require.NoError(t, err)

	otherIssuer, _, err := NewTokenManager(testSecret, "someone-else", time.Hour).Generate(userID)
	require.NoError(t, err)

	otherSecret, _, err := NewTokenManager("other-secret", testIssuer, time.Hour).Generate(userID)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		msg   string
	}{
		{"garbage", "not.a.token", "Invalid access token"},
		{"wrong secret", otherSecret, "Invalid access token"},
		{"expired", expiredToken, "Access token expired"},
		{"wrong issuer", otherIssuer, "Invalid token issuer"},
		{"bad subject", badSubject, "Invalid token subject"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := m.Validate(tt.token)
			require.Error(t, err)
			assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
			assert.Equal(t, tt.msg, apperror.Message(err))
		})
	}
}
