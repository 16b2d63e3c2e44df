package job

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"campusjobs-backend/internal/apperror"
)

func jobID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, apperror.BadRequest("Invalid job id")
	}
	return uint(id), nil
}
