package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusjobs-backend/internal/model"
	"campusjobs-backend/internal/utilities"
)

// CheckRole will protect endpoint from user that is not a specific roles
func CheckRole(roles ...model.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := utilities.ExtractUser(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: err.Error(),
			})
			return
		}

		if !hasRole(roles, user.Role) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, utilities.ErrorResponse{
				Error: "User doesn't have permission to access",
			})
			return
		}

		ctx.Next()
	}
}

func hasRole(roles []model.Role, r model.Role) bool {
	for _, v := range roles {
		if v == r {
			return true
		}
	}
	return false
}
