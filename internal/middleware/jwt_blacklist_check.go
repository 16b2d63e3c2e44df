package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"campusjobs-backend/internal/auth"
	"campusjobs-backend/internal/utilities"
)

// JwtBlacklistCheck rejects tokens revoked by logout. It reads the claims
// set by RequireAuth.
func JwtBlacklistCheck(bl auth.Blacklist) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw, _ := ctx.Get("claims")
		claims, ok := raw.(*jwt.RegisteredClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: "Invalid token claims",
			})
			return
		}

		isBlacklisted, err := bl.IsBlacklisted(claims.ID)
		if err != nil {
			utilities.AbortWithError(ctx, err)
			return
		}

		if isBlacklisted {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: "Token has been revoked",
			})
			return
		}

		ctx.Next()
	}
}
