package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"campusjobs-backend/internal/auth"
	"campusjobs-backend/internal/config"
	"campusjobs-backend/internal/controller/user"
	"campusjobs-backend/internal/database"
	"campusjobs-backend/internal/jobservice"
	"campusjobs-backend/internal/memstore"
	"campusjobs-backend/internal/middleware"
	"campusjobs-backend/internal/notification"
	"campusjobs-backend/internal/utilities"
)

// BlacklistCleanupInterval is how often revoked tokens that expired are dropped
const BlacklistCleanupInterval = 10 * time.Minute

// Store is everything the API needs from persistence. Both the PostgreSQL
// database and the in-memory store implement it.
type Store interface {
	jobservice.Store
	notification.Store
	auth.UserStore
	user.Store
	middleware.UserFinder
	Health() map[string]string
}

// Server holds the wired services of the API
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	store  Store

	tokens        *auth.TokenManager
	blacklist     *auth.MemoryBlacklist
	hub           *notification.Hub
	notifications *notification.Service
	jobs          *jobservice.Service

	relay   *notification.Relay
	closers []func() error
}

// New wires the services on top of store. When rdb is not nil notifications
// are published on redis and relayed to the local hub, so every instance
// reaches its own connected users.
func New(cfg *config.Config, logger *zap.Logger, store Store, rdb *redis.Client) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		tokens:    auth.NewTokenManager(cfg.SecretKey, cfg.JWTIssuer, cfg.AccessTokenTTL),
		blacklist: auth.NewMemoryBlacklist(),
		hub:       notification.NewHub(),
	}

	var dispatcher notification.Dispatcher = s.hub
	if rdb != nil {
		dispatcher = notification.NewRedisDispatcher(rdb, cfg.NotificationTopic)
		s.relay = notification.NewRelay(rdb, cfg.NotificationTopic, s.hub, logger)
	}

	s.notifications = notification.NewService(store, dispatcher, logger)
	s.jobs = jobservice.New(store, s.notifications, logger)
	return s
}

// Open connects the configured store and, when REDIS_ADDR is set, redis and
// returns the wired server. Close releases both.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	var (
		store   Store
		closers []func() error
	)

	switch cfg.Store {
	case config.StoreMemory:
		mem := memstore.New()
		if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
			if _, err := utilities.CreateAdmin(ctx, mem, cfg.AdminUsername, cfg.AdminPassword); err != nil {
				return nil, errors.Wrap(err, "create admin")
			}
		}
		store = mem
		logger.Warn("using in-memory store, data is lost on restart")
	default:
		db, err := database.NewDBInstance(cfg.DB, logger)
		if err != nil {
			return nil, errors.Wrap(err, "database failed to initialize")
		}
		closers = append(closers, db.Close)
		if err := db.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			_ = db.Close()
			return nil, errors.Wrap(err, "ensure admin")
		}
		store = db
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		client, err := notification.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, logger)
		if err != nil {
			for _, c := range closers {
				_ = c()
			}
			return nil, err
		}
		rdb = client
		closers = append(closers, client.Close)
	}

	s := New(cfg, logger, store, rdb)
	s.closers = closers
	return s, nil
}

// HTTPServer returns the http.Server serving the API on the configured port.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// RunBackground runs the token blacklist cleanup and, with redis, the
// notification relay until ctx is done.
func (s *Server) RunBackground(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.blacklist.Run(gctx, BlacklistCleanupInterval)
		return nil
	})
	if s.relay != nil {
		g.Go(func() error {
			return s.relay.Run(gctx, nil)
		})
	}
	return g.Wait()
}

// Close releases the store and redis connections.
func (s *Server) Close() error {
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
