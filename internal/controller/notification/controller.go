// Package notification provides HTTP handlers for the notification inbox and
// its event stream.
package notification

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campusjobs-backend/internal/apperror"
	"campusjobs-backend/internal/notification"
	"campusjobs-backend/internal/utilities"
)

// DefaultKeepAlive is the interval of ping events on an idle stream
const DefaultKeepAlive = 25 * time.Second

// NotificationController handles notification endpoints
type NotificationController struct {
	Notifications *notification.Service
	Hub           *notification.Hub
	KeepAlive     time.Duration
}

// NewNotificationController creates a new instance of NotificationController
func NewNotificationController(svc *notification.Service, hub *notification.Hub) *NotificationController {
	return &NotificationController{
		Notifications: svc,
		Hub:           hub,
		KeepAlive:     DefaultKeepAlive,
	}
}

// UnreadCountResponse type for swagger docs
type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

// MarkAllReadResponse type for swagger docs
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

func notificationID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperror.BadRequest("Invalid notification id")
	}
	return id, nil
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return uuid.Nil, false
	}
	return user.ID, true
}

// List returns a page of the requester's notifications.
// @Summary Get my notifications
// @Description Newest first. Limit defaults to 20 and is capped at 100
// @Tags Notification
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param page query int false "Page number, default 1"
// @Param limit query int false "Page size, default 20"
// @Success 200 {object} notification.Page
// @Failure 400 {object} utilities.ErrorResponse "Invalid query"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /notifications [get]
func (nc *NotificationController) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, err := utilities.IntQuery(c, "page")
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}
	limit, err := utilities.IntQuery(c, "limit")
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	res, err := nc.Notifications.List(c.Request.Context(), userID, page, limit)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UnreadCount godoc
// @Summary Get the number of unread notifications
// @Tags Notification
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} UnreadCountResponse
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /notifications/unread-count [get]
func (nc *NotificationController) UnreadCount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	n, err := nc.Notifications.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, UnreadCountResponse{UnreadCount: n})
}

// MarkAllRead godoc
// @Summary Mark every notification as read
// @Tags Notification
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} MarkAllReadResponse
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /notifications/mark-all-read [post]
func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	n, err := nc.Notifications.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MarkAllReadResponse{Updated: n})
}

// MarkRead godoc
// @Summary Mark one notification as read
// @Tags Notification
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Notification id"
// @Success 200 {object} model.Notification
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Notification not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /notifications/{id}/mark-read [post]
func (nc *NotificationController) MarkRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, err := notificationID(c)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}
	n, err := nc.Notifications.MarkRead(c.Request.Context(), userID, id)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// Delete godoc
// @Summary Delete one notification
// @Tags Notification
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Notification id"
// @Success 200 {object} utilities.MessageResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Notification not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /notifications/{id} [delete]
func (nc *NotificationController) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, err := notificationID(c)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}
	if err := nc.Notifications.Delete(c.Request.Context(), userID, id); err != nil {
		utilities.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Notification deleted"})
}

// Stream pushes the requester's new notifications as server-sent events
// until the client disconnects.
// @Summary Subscribe to new notifications
// @Description Server-sent events. Each new notification arrives as a "notification:new" event, idle streams get "ping" events. Browsers may pass the token as the access_token query parameter
// @Tags Notification
// @Produce text/event-stream
// @Param Authorization header string false "Insert your access token" default(Bearer <your access token>)
// @Param access_token query string false "Access token, when the Authorization header cannot be set"
// @Success 200 {object} notification.Message
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Router /notifications/stream [get]
func (nc *NotificationController) Stream(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ch := nc.Hub.Subscribe(userID)
	defer nc.Hub.Unsubscribe(userID, ch)

	keepAlive := nc.KeepAlive
	if keepAlive <= 0 {
		keepAlive = DefaultKeepAlive
	}
	ticker := time.NewTicker(keepAlive)
	defer ticker.Stop()

	// The stream outlives the server write timeout.
	_ = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{})

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	// The connected event lets clients know the subscription is live.
	c.SSEvent("connected", gin.H{"user": userID})
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case msg, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(msg.Event, msg.Notification)
			return true
		case t := <-ticker.C:
			c.SSEvent("ping", gin.H{"time": t.Unix()})
			return true
		}
	})
}
