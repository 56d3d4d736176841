package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/delivery-marketplace/internal/audit"
	"github.com/BruksfildServices01/delivery-marketplace/internal/config"
	dbpkg "github.com/BruksfildServices01/delivery-marketplace/internal/db"
	"github.com/BruksfildServices01/delivery-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/delivery-marketplace/internal/infra/storage"
	"github.com/BruksfildServices01/delivery-marketplace/internal/infra/tokenstore"
	"github.com/BruksfildServices01/delivery-marketplace/internal/logging"
	"github.com/BruksfildServices01/delivery-marketplace/internal/middleware"
	"github.com/BruksfildServices01/delivery-marketplace/internal/routes"
	ucauth "github.com/BruksfildServices01/delivery-marketplace/internal/usecase/auth"
)

func main() {
	cfg := config.Load()

	log := logging.NewJSON(os.Stdout, cfg.LogLevel)
	slog.SetDefault(log.Slog())

	if err := run(cfg, log); err != nil {
		log.Error(context.Background(), "server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logging.Logger) error {
	ctx := context.Background()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	// Runs after the audit queue is drained; the worker writes to the DB.
	defer sqlDB.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer rdb.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return err
	}

	if cfg.SeedAdmin() {
		created, err := ucauth.NewEnsureAdmin(repository.NewUserGormRepository(db)).
			Execute(ctx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			return err
		}
		if created {
			log.Info(ctx, "admin account created", "email", cfg.AdminEmail)
		}
	}

	// ======================================================
	// AUDIT
	// ======================================================
	dispatcher := audit.NewDispatcher(
		audit.New(repository.NewAuditGormRepository(db)),
		log,
	)

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Config:  cfg,
		Log:     log,
		Audit:   dispatcher,
		Tokens:  tokenstore.NewRedisStore(rdb),
		Images:  storage.NewProfileImages(storage.NewS3Uploader(cfg)),
		Metrics: middleware.NewMetrics(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	var serveErr error
	select {
	case serveErr = <-errCh:
	case <-stop:
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(ctx, 15*time.Second)
	defer cancelShutdown()

	return errors.Join(serveErr, shutdown(shutdownCtx, srv.Shutdown, dispatcher.Close))
}

// shutdown runs every step even when an earlier one fails.
func shutdown(ctx context.Context, steps ...func(context.Context) error) error {
	var errs []error
	for _, step := range steps {
		if err := step(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
