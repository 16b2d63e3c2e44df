// Package middleware contain utilities middleware code
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"campusjobs-backend/internal/apperror"
	"campusjobs-backend/internal/model"
	"campusjobs-backend/internal/utilities"
)

// UserFinder loads the user a token was issued for
type UserFinder interface {
	FindUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// TokenValidator validates a raw bearer token
type TokenValidator interface {
	Validate(raw string) (*jwt.RegisteredClaims, uuid.UUID, error)
}

// RequireAuth validates the Bearer token of the Authorization header and
// loads its user. The claims and the user are stored in the context under
// "claims" and "user".
func RequireAuth(users UserFinder, tokens TokenValidator) gin.HandlerFunc {
	return requireAuth(users, tokens, false)
}

// RequireAuthOrQueryToken also accepts the token in the access_token query
// parameter, for clients such as EventSource that cannot set headers.
func RequireAuthOrQueryToken(users UserFinder, tokens TokenValidator) gin.HandlerFunc {
	return requireAuth(users, tokens, true)
}

func requireAuth(users UserFinder, tokens TokenValidator, allowQuery bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := utilities.ExtractAccessToken(ctx, allowQuery)
		if err != nil {
			utilities.AbortWithError(ctx, err)
			return
		}

		claims, userID, err := tokens.Validate(tokenString)
		if err != nil {
			utilities.AbortWithError(ctx, err)
			return
		}
		ctx.Set("claims", claims)

		foundUser, err := users.FindUserByID(ctx.Request.Context(), userID)
		if err != nil {
			if apperror.Is(err, apperror.KindNotFound) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
					Error: "User not exist",
				})
				return
			}
			utilities.AbortWithError(ctx, err)
			return
		}

		ctx.Set("user", *foundUser)
		ctx.Next()
	}
}
