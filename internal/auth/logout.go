package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"campusjobs-backend/internal/apperror"
	"campusjobs-backend/internal/utilities"
)

// Logout revokes the token of the request until it expires. RequireAuth
// must run first so the claims are in the context.
// @Summary Revoke the current access token
// @Tags Auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utilities.MessageResponse
// @Failure 401 {object} utilities.ErrorResponse "Missing or invalid token"
// @Router /auth/logout [post]
func (h *LocalAuthHandler) Logout(c *gin.Context) {
	claims, err := extractClaims(c)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	if err := h.Blacklist.AddToBlacklist(claims.ID, claims.ExpiresAt.Time); err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Successfully logged out"})
}

func extractClaims(c *gin.Context) (*jwt.RegisteredClaims, error) {
	claims, ok := c.Get("claims")
	if !ok {
		return nil, apperror.Unauthorized("Invalid token claims")
	}

	realClaims, okCast := claims.(*jwt.RegisteredClaims)
	if !okCast || realClaims.ID == "" || realClaims.ExpiresAt == nil {
		return nil, apperror.Unauthorized("Invalid token claims")
	}
	return realClaims, nil
}
