package utilities

import (
	"strings"

	"github.com/gin-gonic/gin"

	"campusjobs-backend/internal/apperror"
)

// AccessTokenQuery is the query parameter holding the token for clients
// that cannot set headers
const AccessTokenQuery = "access_token"

// ExtractBearerToken returns the token of a "Bearer <token>" Authorization
// header. The scheme is matched case-insensitively.
func ExtractBearerToken(c *gin.Context) (string, error) {
	const bearerSchema = "bearer "
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(authHeader) <= len(bearerSchema) || !strings.EqualFold(authHeader[:len(bearerSchema)], bearerSchema) {
		return "", apperror.Unauthorized("Invalid authorization header")
	}
	token := strings.TrimSpace(authHeader[len(bearerSchema):])
	if token == "" {
		return "", apperror.Unauthorized("Invalid authorization header")
	}
	return token, nil
}

// ExtractAccessToken prefers the Authorization header and, when allowQuery
// is set, falls back to the access_token query parameter.
func ExtractAccessToken(c *gin.Context, allowQuery bool) (string, error) {
	token, err := ExtractBearerToken(c)
	if err == nil || !allowQuery {
		return token, err
	}
	if token = strings.TrimSpace(c.Query(AccessTokenQuery)); token != "" {
		return token, nil
	}
	return "", err
}
