// Package auth issues and validates bearer tokens and serves the local
// register, login and logout endpoints.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"campusjobs-backend/internal/apperror"
)

// TokenManager signs and validates HS256 access tokens
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a TokenManager. Tokens expire ttl after issuing.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Generate signs an access token for userID. Every token carries a unique
// ID so it can be revoked on logout.
func (m *TokenManager) Generate(userID uuid.UUID) (string, *jwt.RegisteredClaims, error) {
	now := m.now()
	claims := &jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    m.issuer,
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, errors.Wrap(err, "sign token")
	}
	return signed, claims, nil
}

// Validate parses raw and returns its claims and subject. Every failure is
// Unauthorized.
func (m *TokenManager) Validate(raw string) (*jwt.RegisteredClaims, uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parser.SkipClaimsValidation = true

	token, err := parser.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, uuid.Nil, apperror.Unauthorized("Invalid access token")
	}

	now := m.now()
	if !claims.VerifyExpiresAt(now, true) {
		return nil, uuid.Nil, apperror.Unauthorized("Access token expired")
	}
	if !claims.VerifyIssuer(m.issuer, true) {
		return nil, uuid.Nil, apperror.Unauthorized("Invalid token issuer")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, uuid.Nil, apperror.Unauthorized("Invalid token subject")
	}
	return claims, userID, nil
}
