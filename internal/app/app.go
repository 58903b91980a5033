package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/molcom/timeclock-backend/internal/adapter/photostore"
	"github.com/molcom/timeclock-backend/internal/adapter/postgres"
	auditrepo "github.com/molcom/timeclock-backend/internal/adapter/postgres/audit"
	projectrepo "github.com/molcom/timeclock-backend/internal/adapter/postgres/project"
	settingsrepo "github.com/molcom/timeclock-backend/internal/adapter/postgres/settings"
	taskrepo "github.com/molcom/timeclock-backend/internal/adapter/postgres/task"
	timeentryrepo "github.com/molcom/timeclock-backend/internal/adapter/postgres/timeentry"
	userrepo "github.com/molcom/timeclock-backend/internal/adapter/postgres/user"
	worksiterepo "github.com/molcom/timeclock-backend/internal/adapter/postgres/worksite"
	"github.com/molcom/timeclock-backend/internal/adapter/provider/geocode"
	"github.com/molcom/timeclock-backend/internal/auth"
	"github.com/molcom/timeclock-backend/internal/config"
	authsvc "github.com/molcom/timeclock-backend/internal/service/auth"
	projectsvc "github.com/molcom/timeclock-backend/internal/service/project"
	settingssvc "github.com/molcom/timeclock-backend/internal/service/settings"
	tasksvc "github.com/molcom/timeclock-backend/internal/service/task"
	timeentrysvc "github.com/molcom/timeclock-backend/internal/service/timeentry"
	usersvc "github.com/molcom/timeclock-backend/internal/service/user"
	worksitesvc "github.com/molcom/timeclock-backend/internal/service/worksite"
	"github.com/molcom/timeclock-backend/internal/transport/rest"
)

// Run wires the application together and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	photos, err := photostore.New(cfg.Upload)
	if err != nil {
		return fmt.Errorf("init photo store: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	geocoder := geocode.NewProvider(cfg.Geocode, logger)
	tx := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	entries := timeentryrepo.New(pool)
	worksites := worksiterepo.New(pool)
	projects := projectrepo.New(pool)
	tasks := taskrepo.New(pool)
	settings := settingsrepo.New(pool)
	audit := auditrepo.New(pool)

	services := rest.Services{
		Auth:      authsvc.NewService(logger, users, jwtManager),
		Entries:   timeentrysvc.NewService(logger, entries, photos, audit, tx),
		Users:     usersvc.NewService(logger, users, audit, tx),
		Worksites: worksitesvc.NewService(logger, worksites, geocoder, audit, tx),
		Projects:  projectsvc.NewService(logger, projects, worksites, audit, tx),
		Tasks:     tasksvc.NewService(logger, tasks, audit, tx),
		Settings:  settingssvc.NewService(logger, settings, audit, tx),
	}

	handlers := rest.NewHandlers(logger, services, photos, BuildVersion())
	router, limiter := handlers.Router(cfg.CORS, jwtManager)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
