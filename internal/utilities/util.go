// Package utilities contain utility code that use across the package
package utilities

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campusjobs-backend/internal/apperror"
	"campusjobs-backend/internal/lifecycle"
	"campusjobs-backend/internal/model"
)

// ErrorResponse type for swagger docs
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Message string `json:"message"`
}

// ExtractUser extracts the user model from Gin context.
// It does not abort the request; instead returns an error when missing/invalid.
func ExtractUser(c *gin.Context) (model.User, error) {
	u, _ := c.Get("user")
	if u == nil {
		return model.User{}, errors.New("User information not provided")
	}

	user, ok := u.(model.User)
	if !ok {
		return model.User{}, errors.New("Failed to assert type")
	}
	return user, nil
}

// ExtractActor returns the actor of the authenticated user, nil when the
// request carries no user.
func ExtractActor(c *gin.Context) *lifecycle.Actor {
	user, err := ExtractUser(c)
	if err != nil {
		return nil
	}
	return lifecycle.ActorFromUser(user)
}

// AbortWithError responds with the status and message of a classified
// error. Unclassified errors are logged and answered with a generic 500.
func AbortWithError(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	msg := apperror.Message(err)
	if apperror.KindOf(err) == apperror.KindInternal {
		if logger, ok := c.Get("logger"); ok {
			if l, ok := logger.(*zap.Logger); ok {
				l.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
			}
		}
		msg = "Internal server error"
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg})
}

// UserCreator stores new users
type UserCreator interface {
	CreateUser(ctx context.Context, u *model.User) error
}

// CreateAdmin creates an admin user with the given username and password.
func CreateAdmin(ctx context.Context, store UserCreator, username, password string) (*model.User, error) {
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &model.User{
		Username: username,
		Password: hashedPassword,
		Role:     model.RoleAdmin,
		Name:     username,
		Skills:   []string{},
	}
	if err := store.CreateUser(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}
