package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campusjobs-backend/internal/apperror"
	"campusjobs-backend/internal/model"
	"campusjobs-backend/internal/skill"
	"campusjobs-backend/internal/utilities"
)

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 8

// UserStore persists accounts for local authentication
type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) error
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)
}

// LocalAuthHandler serves register, login and logout.
type LocalAuthHandler struct {
	Users     UserStore
	Tokens    *TokenManager
	Blacklist Blacklist
	logger    *zap.Logger
}

// NewLocalAuthHandler creates a new instance of LocalAuthHandler.
func NewLocalAuthHandler(users UserStore, tokens *TokenManager, blacklist Blacklist, logger *zap.Logger) *LocalAuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalAuthHandler{
		Users:     users,
		Tokens:    tokens,
		Blacklist: blacklist,
		logger:    logger,
	}
}

type registerInfo struct {
	Username   string   `json:"username" binding:"required"`
	Password   string   `json:"password" binding:"required"`
	Role       string   `json:"role" binding:"required,oneof=student alumni faculty"`
	Name       string   `json:"name"`
	Batch      string   `json:"batch"`
	Department string   `json:"department"`
	Skills     []string `json:"skills"`
}

type loginInfo struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse holds the user and a fresh access token
type AuthResponse struct {
	User        model.User `json:"user"`
	AccessToken string     `json:"access_token"`
}

// Register creates a student, alumni or faculty account. Admin accounts
// are only created by the create-admin command.
// @Summary Register a local account
// @Description Username must be unique and password at least 8 characters long
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body registerInfo true "role can be 'student', 'alumni' or 'faculty'"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 500 {object} utilities.ErrorResponse "Database or password hashing error"
// @Router /auth/register [post]
func (h *LocalAuthHandler) Register(c *gin.Context) {
	var info registerInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Username, password, and role (only 'student', 'alumni' or 'faculty') must be provided",
		})
		return
	}

	info.Username = strings.TrimSpace(info.Username)
	if info.Username == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Username must not be blank"})
		return
	}

	if len(info.Password) < MinPasswordLength {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Password should longer or equal to 8 characters",
		})
		return
	}

	hashedPassword, err := utilities.HashPassword(info.Password)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	name := strings.TrimSpace(info.Name)
	if name == "" {
		name = info.Username
	}

	user := model.User{
		Username:   info.Username,
		Password:   hashedPassword,
		Role:       model.Role(info.Role),
		Name:       name,
		Batch:      strings.TrimSpace(info.Batch),
		Department: strings.TrimSpace(info.Department),
		Skills:     skill.NormalizeSet(info.Skills),
	}
	if err := h.Users.CreateUser(c.Request.Context(), &user); err != nil {
		h.logAttempt("register", false, info.Username, err)
		utilities.AbortWithError(c, err)
		return
	}

	accessToken, _, err := h.Tokens.Generate(user.ID)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	h.logAttempt("register", true, user.Username, nil)
	c.JSON(http.StatusCreated, AuthResponse{
		User:        user,
		AccessToken: accessToken,
	})
}

// Login checks the credentials and issues an access token.
// @Summary Handles local login by receiving username and password
// @Description Username must exist and password match
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Credentials for login"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 401 {object} utilities.ErrorResponse "Username not exist or password incorrect"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /auth/login [post]
func (h *LocalAuthHandler) Login(c *gin.Context) {
	var info loginInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Username or password is not provided",
		})
		return
	}

	user, err := h.Users.FindUserByUsername(c.Request.Context(), strings.TrimSpace(info.Username))
	switch {
	case apperror.Is(err, apperror.KindNotFound):
		h.logAttempt("login", false, info.Username, err)
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Username or password is incorrect",
		})
		return
	case err != nil:
		utilities.AbortWithError(c, err)
		return
	}

	if user.Password == "" || !utilities.CheckPassword(user.Password, info.Password) {
		h.logAttempt("login", false, info.Username, nil)
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Username or password is incorrect",
		})
		return
	}

	accessToken, _, err := h.Tokens.Generate(user.ID)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	h.logAttempt("login", true, user.Username, nil)
	c.JSON(http.StatusOK, AuthResponse{
		User:        *user,
		AccessToken: accessToken,
	})
}
