package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusjobs-backend/internal/apperror"
	"campusjobs-backend/internal/memstore"
	"campusjobs-backend/internal/model"
	"campusjobs-backend/internal/notification"
)

type failingDispatcher struct{}

func (failingDispatcher) Dispatch(context.Context, model.Notification) error {
	return errors.New("socket gone")
}

func TestNotify_storesAndPushes(t *testing.T) {
	store := memstore.New()
	hub := notification.NewHub()
	svc := notification.NewService(store, hub, nil)
	user := uuid.New()

	ch := hub.Subscribe(user)
	defer hub.Unsubscribe(user, ch)

	err := svc.Notify(context.Background(), user, notification.Event{
		Type:        model.NotificationJob,
		Title:       "New applicant",
		RedirectURL: "/jobs/1/applicants",
		Metadata:    map[string]interface{}{"job_id": 1},
	})
	require.NoError(t, err)

	select {
	case msg := <-ch:
		assert.Equal(t, notification.EventNew, msg.Event)
		assert.Equal(t, "New applicant", msg.Notification.Title)
		assert.Equal(t, user, msg.Notification.UserID)
	case <-time.After(time.Second):
		t.Fatal("notification was not pushed")
	}

	page, err := svc.List(context.Background(), user, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, int64(1), page.UnreadCount)
	require.Len(t, page.Items, 1)
	assert.Equal(t, model.NotificationJob, page.Items[0].Type)
}

func TestNotify_pushFailureKeepsNotification(t *testing.T) {
	store := memstore.New()
	svc := notification.NewService(store, failingDispatcher{}, nil)
	user := uuid.New()

	require.NoError(t, svc.Notify(context.Background(), user, notification.Event{Title: "hello"}))

	n, err := svc.UnreadCount(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestNotify_validation(t *testing.T) {
	svc := notification.NewService(memstore.New(), nil, nil)

	err := svc.Notify(context.Background(), uuid.Nil, notification.Event{Title: "x"})
	assert.True(t, apperror.Is(err, apperror.KindBadRequest))

	err = svc.Notify(context.Background(), uuid.New(), notification.Event{})
	assert.True(t, apperror.Is(err, apperror.KindBadRequest))
}

func TestList_paging(t *testing.T) {
	store := memstore.New()
	svc := notification.NewService(store, nil, nil)
	user := uuid.New()
	for i := 0; i < 5; i++ {
		require.NoError(t, svc.Notify(context.Background(), user, notification.Event{Title: "n"}))
	}

	page, err := svc.List(context.Background(), user, 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, notification.MaxLimit, page.Limit)
	assert.Len(t, page.Items, 5)

	page, err = svc.List(context.Background(), user, 3, 2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(5), page.Total)

	empty, err := svc.List(context.Background(), uuid.New(), 1, 20)
	require.NoError(t, err)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
}

func TestMarkReadAndDelete(t *testing.T) {
	store := memstore.New()
	svc := notification.NewService(store, nil, nil)
	user, other := uuid.New(), uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.Notify(ctx, user, notification.Event{Title: "a"}))
	require.NoError(t, svc.Notify(ctx, user, notification.Event{Title: "b"}))

	page, err := svc.List(ctx, user, 1, 20)
	require.NoError(t, err)
	id := page.Items[0].ID

	_, err = svc.MarkRead(ctx, other, id)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	n, err := svc.MarkRead(ctx, user, id)
	require.NoError(t, err)
	assert.True(t, n.IsRead)
	assert.NotNil(t, n.ReadAt)

	unread, err := svc.UnreadCount(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	changed, err := svc.MarkAllRead(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	assert.True(t, apperror.Is(svc.Delete(ctx, other, id), apperror.KindNotFound))
	require.NoError(t, svc.Delete(ctx, user, id))

	page, err = svc.List(ctx, user, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
}
