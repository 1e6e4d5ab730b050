package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/agenda-backend/internal/adapter/notify"
	"github.com/heartmarshall/agenda-backend/internal/adapter/postgres"
	contactrepo "github.com/heartmarshall/agenda-backend/internal/adapter/postgres/contact"
	eventrepo "github.com/heartmarshall/agenda-backend/internal/adapter/postgres/event"
	invitationrepo "github.com/heartmarshall/agenda-backend/internal/adapter/postgres/invitation"
	userrepo "github.com/heartmarshall/agenda-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/agenda-backend/internal/auth"
	"github.com/heartmarshall/agenda-backend/internal/config"
	authsvc "github.com/heartmarshall/agenda-backend/internal/service/auth"
	"github.com/heartmarshall/agenda-backend/internal/service/contact"
	"github.com/heartmarshall/agenda-backend/internal/service/event"
	"github.com/heartmarshall/agenda-backend/internal/service/guard"
	"github.com/heartmarshall/agenda-backend/internal/service/invitation"
	"github.com/heartmarshall/agenda-backend/internal/service/user"
	"github.com/heartmarshall/agenda-backend/internal/transport/middleware"
	"github.com/heartmarshall/agenda-backend/internal/transport/rest"
)

// App holds the wired dependency graph and the resources it owns.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	pool    *pgxpool.Pool
	rdb     *redis.Client
	limiter *middleware.RateLimiter
	handler http.Handler

	// Guard, Users and Contacts are exposed for the admin CLI.
	Guard    *guard.Service
	Users    *userrepo.Repo
	Contacts *contact.Service
}

// Run is the application entry point. It loads configuration, wires
// every dependency and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("redis", cfg.Redis.Enabled()),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}

// New connects to PostgreSQL (and Redis when configured) and builds the
// HTTP handler. The caller must Close the result.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	a := &App{cfg: cfg, log: logger, pool: pool}

	var sink notify.Sink = notify.NewLogSink(logger)
	if cfg.Redis.Enabled() {
		rdb, err := notify.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("app: %w", err)
		}
		a.rdb = rdb
		sink = notify.NewRedisSink(rdb, cfg.Redis)
	}
	dispatcher := notify.NewDispatcher(sink, cfg.Notify.DispatchTimeout, logger)

	// Repositories.
	users := userrepo.New(pool)
	contacts := contactrepo.New(pool)
	events := eventrepo.New(pool)
	invitations := invitationrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Services.
	guardSvc := guard.NewService(logger, users, dispatcher, cfg.Notify.AdminAddress)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	userService := user.NewService(logger, users, dispatcher)
	contactService := contact.NewService(logger, users, contacts, dispatcher, tx, cfg.Notify.AdminAddress)
	eventService := event.NewService(logger, events, guardSvc, tx)
	invitationService := invitation.NewService(logger, events, users, contacts, invitations, guardSvc, dispatcher, tx)

	a.Guard = guardSvc
	a.Users = users
	a.Contacts = contactService

	health := rest.NewHealthHandler(pool, Version)
	if a.rdb != nil {
		rdb := a.rdb
		health.WithComponent("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}

	a.limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	mux := rest.NewRouter(rest.Handlers{
		Health:  health,
		Auth:    rest.NewAuthHandler(authService, logger),
		User:    rest.NewUserHandler(userService, logger),
		Contact: rest.NewContactHandler(contactService, logger),
		Event:   rest.NewEventHandler(eventService, invitationService, logger),
		Admin:   rest.NewAdminHandler(guardSvc, userService, logger),
	}, a.limiter.Limit(cfg.RateLimit.AuthPerMinute))

	a.handler = middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(mux)

	return a, nil
}

// Handler returns the fully wrapped HTTP handler.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Serve listens on the configured address until ctx is cancelled, then
// drains in-flight requests within ShutdownTimeout.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         a.cfg.Server.Addr(),
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		a.log.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Close releases the pool, the Redis client and the rate limiter.
func (a *App) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.log.Warn("close redis", slog.String("error", err.Error()))
		}
	}
	a.pool.Close()
	a.log.Info("application stopped")
}
