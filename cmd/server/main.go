package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/retailnet/pos-admin/internal/api"
	"github.com/retailnet/pos-admin/internal/core/service"
	"github.com/retailnet/pos-admin/internal/infrastructure/config"
	"github.com/retailnet/pos-admin/internal/infrastructure/db/postgres"
	"github.com/retailnet/pos-admin/internal/infrastructure/db/redis"
	httpserver "github.com/retailnet/pos-admin/internal/infrastructure/http"
	"github.com/retailnet/pos-admin/internal/infrastructure/http/handlers"
	"github.com/retailnet/pos-admin/internal/infrastructure/report"
	"github.com/retailnet/pos-admin/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "pos-admin",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL, MaxConns: cfg.Postgres.MaxConns})
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := postgres.Migrate(pool); err != nil {
			return err
		}
		log.Info().Msg("database migrations applied")
	}

	rdb, err := redis.Connect(ctx, redis.Config{URL: cfg.Redis.URL, Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	// --- Dependencies ---
	users := postgres.NewUserRepository(pool)
	tokens := service.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	e, err := httpserver.NewServer(httpserver.ServerOptions{
		CORSOrigins:    cfg.HTTP.CORSOrigins,
		TrustedProxies: cfg.HTTP.TrustedProxies,
		Checks: map[string]handlers.Check{
			"postgres": pool.Ping,
			"redis":    redis.Ping(rdb),
		},
	}, log)
	if err != nil {
		return err
	}

	api.Register(e, api.Deps{
		Auth:         service.NewAuthService(users, tokens, log),
		Users:        service.NewUserService(users, log),
		Stores:       service.NewStoreService(postgres.NewStoreRepository(pool), log),
		Transactions: service.NewTransactionService(postgres.NewTransactionRepository(pool), report.NewExcelRenderer(), log),
		Dashboard:    service.NewDashboardService(postgres.NewDashboardRepository(pool)),
		References:   postgres.NewReferenceRepository(pool),
		Tokens:       tokens,
		Identities:   users,
		Limiter:      redis.NewLoginLimiter(rdb, cfg.Auth.LoginAttempts, cfg.Auth.LoginWindow),
		Log:          log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
