package auth

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusjobs-backend/internal/utilities"
)

type failingBlacklist struct {
	addError error
}

func (f *failingBlacklist) IsBlacklisted(string) (bool, error) { return false, nil }

func (f *failingBlacklist) AddToBlacklist(string, time.Time) error { return f.addError }

func logout(t *testing.T, h *LocalAuthHandler, claims interface{}) (int, map[string]interface{}) {
	t.Helper()
	var opts []utilities.ContextOption
	if claims != nil {
		opts = append(opts, utilities.WithContextValue("claims", claims))
	}
	rec, resp, err := utilities.SimulateAPICall(h.Logout, "/logout", http.MethodPost, nil, opts...)
	require.NoError(t, err)
	return rec.Code, resp
}

func TestLogoutSuccess(t *testing.T) {
	f := newFixture(t)
	accessToken, err := GetAccessToken(t, f.handler, f.student.Username, seedPassword)
	require.NoError(t, err)

	claims, _, err := f.tokens.Validate(accessToken)
	require.NoError(t, err)

	code, resp := logout(t, f.handler, claims)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Successfully logged out", resp["message"])

	isBlacklisted, err := f.handler.Blacklist.IsBlacklisted(claims.ID)
	require.NoError(t, err)
	assert.True(t, isBlacklisted, "Token should be blacklisted after logout")
}

func TestLogoutMissingClaims(t *testing.T) {
	f := newFixture(t)

	code, resp := logout(t, f.handler, nil)

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid token claims", resp["error"])
}

func TestLogoutInvalidClaimsType(t *testing.T) {
	f := newFixture(t)

	code, resp := logout(t, f.handler, "invalid_claims_type")

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid token claims", resp["error"])
}

func TestLogoutBlacklistStoreError(t *testing.T) {
	f := newFixture(t)
	accessToken, err := GetAccessToken(t, f.handler, f.student.Username, seedPassword)
	require.NoError(t, err)
	claims, _, err := f.tokens.Validate(accessToken)
	require.NoError(t, err)

	h := NewLocalAuthHandler(f.store, f.tokens, &failingBlacklist{addError: fmt.Errorf("database connection failed")}, nil)
	code, resp := logout(t, h, claims)

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", resp["error"])
}
