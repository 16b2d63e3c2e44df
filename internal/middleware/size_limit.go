package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusjobs-backend/internal/utilities"
)

// SizeLimit rejects requests whose declared body is larger than
// maxBodyBytes with 413 and caps the body reader for the rest, so reading
// past the limit fails with http.MaxBytesError.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBodyBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{
				Error: "Request body too large",
			})
			return
		}

		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
		}

		c.Next()
	}
}
