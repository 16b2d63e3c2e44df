package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"campusjobs-backend/internal/model"
)

// DefaultChannel is the pub/sub channel notifications are fanned out on
const DefaultChannel = "campusjobs:notifications"

// NewRedisClient connects to redis and checks the connection.
func NewRedisClient(addr, password string, db int, logger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "failed to connect to redis")
	}

	logger.Info("successfully connected to Redis", zap.String("addr", addr))
	return client, nil
}

// RedisDispatcher publishes notifications on a redis channel so that every
// API instance can push them to its own connected users.
type RedisDispatcher struct {
	client  *redis.Client
	channel string
}

func NewRedisDispatcher(client *redis.Client, channel string) *RedisDispatcher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisDispatcher{client: client, channel: channel}
}

func (d *RedisDispatcher) Dispatch(ctx context.Context, n model.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return errors.Wrap(err, "failed to marshal notification")
	}
	if err := d.client.Publish(ctx, d.channel, data).Err(); err != nil {
		return errors.Wrap(err, "publish notification")
	}
	return nil
}

// Relay forwards notifications published on the channel to a local
// dispatcher, usually a Hub.
type Relay struct {
	client  *redis.Client
	channel string
	target  Dispatcher
	logger  *zap.Logger
}

func NewRelay(client *redis.Client, channel string, target Dispatcher, logger *zap.Logger) *Relay {
	if channel == "" {
		channel = DefaultChannel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Relay{client: client, channel: channel, target: target, logger: logger}
}

// Run subscribes to the channel and forwards messages until ctx is done.
// ready, when not nil, is closed once the subscription is confirmed.
func (r *Relay) Run(ctx context.Context, ready chan<- struct{}) error {
	sub := r.client.Subscribe(ctx, r.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return errors.Wrapf(err, "subscribe %s", r.channel)
	}
	if ready != nil {
		close(ready)
	}
	r.logger.Info("notification relay subscribed", zap.String("channel", r.channel))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var n model.Notification
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
				r.logger.Error("invalid notification payload", zap.Error(err))
				continue
			}
			if err := r.target.Dispatch(ctx, n); err != nil {
				r.logger.Error("failed to relay notification",
					zap.String("notification_id", n.ID.String()),
					zap.Error(err),
				)
			}
		}
	}
}
