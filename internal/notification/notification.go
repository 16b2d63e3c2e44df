// Package notification stores user notifications and pushes new ones to the
// recipients that are connected to the event stream.
package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"campusjobs-backend/internal/apperror"
	"campusjobs-backend/internal/model"
)

// Paging of notification lists. Limits above MaxLimit are clamped.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Event is a notification to be delivered to one user
type Event struct {
	SenderID    *uuid.UUID
	Type        string
	Title       string
	Message     string
	RedirectURL string
	Metadata    map[string]interface{}
}

// Store persists notifications. Every lookup is scoped to the recipient.
type Store interface {
	CreateNotification(ctx context.Context, n *model.Notification) error
	FindNotifications(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.Notification, error)
	CountNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) (int64, error)
	// MarkNotificationRead returns a NotFound error when the notification
	// does not exist or belongs to someone else.
	MarkNotificationRead(ctx context.Context, userID, id uuid.UUID, at time.Time) (*model.Notification, error)
	MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)
	DeleteNotification(ctx context.Context, userID, id uuid.UUID) error
}

// Dispatcher pushes a stored notification to its recipient.
type Dispatcher interface {
	Dispatch(ctx context.Context, n model.Notification) error
}

// Page is one page of a user's notifications
type Page struct {
	Items       []model.Notification `json:"items"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	UnreadCount int64                `json:"unread_count"`
}

type Service struct {
	store      Store
	dispatcher Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// NewService creates the notification service. dispatcher may be nil, in that
// case notifications are only stored.
func NewService(store Store, dispatcher Dispatcher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, dispatcher: dispatcher, logger: logger, now: time.Now}
}

// Notify stores a notification for userID and pushes it to the user. A
// failed push is logged, the stored notification is kept.
func (s *Service) Notify(ctx context.Context, userID uuid.UUID, e Event) error {
	if userID == uuid.Nil {
		return apperror.BadRequest("Notification recipient is required")
	}
	if e.Title == "" {
		return apperror.BadRequest("Notification title is required")
	}
	if e.Type == "" {
		e.Type = model.NotificationSystem
	}

	n := model.Notification{
		ID:          uuid.New(),
		UserID:      userID,
		SenderID:    e.SenderID,
		Type:        e.Type,
		Title:       e.Title,
		Message:     e.Message,
		RedirectURL: e.RedirectURL,
		Metadata:    e.Metadata,
		CreatedAt:   s.now(),
	}
	if n.Metadata == nil {
		n.Metadata = map[string]interface{}{}
	}

	if err := s.store.CreateNotification(ctx, &n); err != nil {
		return errors.Wrap(err, "create notification")
	}

	if s.dispatcher != nil {
		if err := s.dispatcher.Dispatch(ctx, n); err != nil {
			s.logger.Warn("notification push failed",
				zap.String("notification_id", n.ID.String()),
				zap.String("user_id", userID.String()),
				zap.Error(err),
			)
		}
	}
	return nil
}

// List returns a page of the user's notifications, newest first, together
// with the total and unread counts.
func (s *Service) List(ctx context.Context, userID uuid.UUID, page, limit int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	res := &Page{Page: page, Limit: limit}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.store.FindNotifications(gctx, userID, (page-1)*limit, limit)
		if err != nil {
			return errors.Wrap(err, "find notifications")
		}
		res.Items = items
		return nil
	})
	g.Go(func() error {
		total, err := s.store.CountNotifications(gctx, userID, false)
		if err != nil {
			return errors.Wrap(err, "count notifications")
		}
		res.Total = total
		return nil
	})
	g.Go(func() error {
		unread, err := s.store.CountNotifications(gctx, userID, true)
		if err != nil {
			return errors.Wrap(err, "count unread notifications")
		}
		res.UnreadCount = unread
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if res.Items == nil {
		res.Items = []model.Notification{}
	}
	return res, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.store.CountNotifications(ctx, userID, true)
	if err != nil {
		return 0, errors.Wrap(err, "count unread notifications")
	}
	return n, nil
}

func (s *Service) MarkRead(ctx context.Context, userID, id uuid.UUID) (*model.Notification, error) {
	return s.store.MarkNotificationRead(ctx, userID, id, s.now())
}

func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.store.MarkAllNotificationsRead(ctx, userID, s.now())
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.store.DeleteNotification(ctx, userID, id)
}
