package utilities

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"campusjobs-backend/internal/apperror"
)

// IntQuery parses an optional positive integer query parameter. It returns 0
// when the parameter is absent and a BadRequest error when it is present but
// not an integer of at least 1.
func IntQuery(c *gin.Context, key string) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.BadRequest("Invalid " + key)
	}
	if n < 1 {
		return 0, apperror.BadRequest(key + " must be greater than or equal to 1")
	}
	return n, nil
}
