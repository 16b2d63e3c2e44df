package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"campusjobs-backend/internal/apperror"
	"campusjobs-backend/internal/model"
)

func (s *Store) CreateNotification(_ context.Context, n *model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	s.notifications[n.ID] = *n
	return nil
}

func (s *Store) FindNotifications(_ context.Context, userID uuid.UUID, offset, limit int) ([]model.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var inbox []model.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			inbox = append(inbox, n)
		}
	}
	sort.Slice(inbox, func(a, b int) bool {
		return inbox[a].CreatedAt.After(inbox[b].CreatedAt)
	})

	if offset >= len(inbox) {
		return []model.Notification{}, nil
	}
	end := len(inbox)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return inbox[offset:end], nil
}

func (s *Store) CountNotifications(_ context.Context, userID uuid.UUID, unreadOnly bool) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, item := range s.notifications {
		if item.UserID == userID && (!unreadOnly || !item.IsRead) {
			n++
		}
	}
	return n, nil
}

func (s *Store) MarkNotificationRead(_ context.Context, userID, id uuid.UUID, at time.Time) (*model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok || n.UserID != userID {
		return nil, apperror.NotFound("Notification not found")
	}
	n.IsRead = true
	n.ReadAt = &at
	s.notifications[id] = n
	return &n, nil
}

func (s *Store) MarkAllNotificationsRead(_ context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var changed int64
	for id, n := range s.notifications {
		if n.UserID != userID || n.IsRead {
			continue
		}
		n.IsRead = true
		n.ReadAt = &at
		s.notifications[id] = n
		changed++
	}
	return changed, nil
}

func (s *Store) DeleteNotification(_ context.Context, userID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok || n.UserID != userID {
		return apperror.NotFound("Notification not found")
	}
	delete(s.notifications, id)
	return nil
}
