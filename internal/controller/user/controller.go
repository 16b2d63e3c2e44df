// Package user provides HTTP handlers for the profile of the current user.
package user

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campusjobs-backend/internal/model"
	"campusjobs-backend/internal/skill"
	"campusjobs-backend/internal/utilities"
)

// Store reads and updates user profiles
type Store interface {
	FindUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateUserSkills(ctx context.Context, id uuid.UUID, skills []string) (*model.User, error)
}

// UserController handles user endpoints
type UserController struct {
	Users Store
}

// NewUserController creates a new instance of UserController
func NewUserController(users Store) *UserController {
	return &UserController{
		Users: users,
	}
}

type skillsInfo struct {
	Skills []string `json:"skills" binding:"required"`
}

// Me godoc
// @Summary Get current user
// @Tags User
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.User
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Router /users/me [get]
func (uc *UserController) Me(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateSkills replaces the tracked skills of the current user. Skills are
// trimmed, lowercased and deduplicated before they are stored.
// @Summary Update my skills
// @Tags User
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Skills body skillsInfo true "New skill list"
// @Success 200 {object} model.User
// @Failure 400 {object} utilities.ErrorResponse "Skills not provided"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /users/me/skills [patch]
func (uc *UserController) UpdateSkills(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info skillsInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Skills must be provided"})
		return
	}

	updated, err := uc.Users.UpdateUserSkills(c.Request.Context(), user.ID, skill.NormalizeSet(info.Skills))
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
