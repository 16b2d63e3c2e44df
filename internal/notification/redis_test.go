package notification

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"campusjobs-backend/internal/model"
)

func startRedis(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis container in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, nat.Port("6379/tcp"))
	require.NoError(t, err)

	return fmt.Sprintf("%s:%s", host, port.Port())
}

func TestRedisRelay_forwardsToHub(t *testing.T) {
	addr := startRedis(t)
	logger := zap.NewNop()

	client, err := NewRedisClient(addr, "", 0, logger)
	require.NoError(t, err)
	defer client.Close()

	hub := NewHub()
	relay := NewRelay(client, "test:notifications", hub, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ready := make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- relay.Run(ctx, ready) }()

	select {
	case <-ready:
	case <-time.After(10 * time.Second):
		t.Fatal("relay did not subscribe")
	}

	user := uuid.New()
	ch := hub.Subscribe(user)
	defer hub.Unsubscribe(user, ch)

	dispatcher := NewRedisDispatcher(client, "test:notifications")
	sent := model.Notification{ID: uuid.New(), UserID: user, Type: model.NotificationJob, Title: "New applicant"}
	require.NoError(t, dispatcher.Dispatch(ctx, sent))

	select {
	case msg := <-ch:
		assert.Equal(t, sent.ID, msg.Notification.ID)
		assert.Equal(t, "New applicant", msg.Notification.Title)
	case <-time.After(5 * time.Second):
		t.Fatal("notification was not relayed")
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestNewRedisClient_unreachable(t *testing.T) {
	_, err := NewRedisClient("127.0.0.1:1", "", 0, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}
