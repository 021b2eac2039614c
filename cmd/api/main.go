package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/medicore/hospital-api/internal/config"
	"github.com/medicore/hospital-api/internal/email"
	appointmentHandler "github.com/medicore/hospital-api/internal/handler/appointment"
	authHandler "github.com/medicore/hospital-api/internal/handler/auth"
	departmentHandler "github.com/medicore/hospital-api/internal/handler/department"
	doctorHandler "github.com/medicore/hospital-api/internal/handler/doctor"
	patientHandler "github.com/medicore/hospital-api/internal/handler/patient"
	serviceHandler "github.com/medicore/hospital-api/internal/handler/service"
	"github.com/medicore/hospital-api/internal/middleware"
	"github.com/medicore/hospital-api/internal/repository/kvstore"
	"github.com/medicore/hospital-api/internal/repository/session"
	"github.com/medicore/hospital-api/internal/router"
	authService "github.com/medicore/hospital-api/internal/service/auth"
	"github.com/medicore/hospital-api/internal/service/resource"
	"github.com/medicore/hospital-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
		Pretty:     cfg.Log.Pretty,
	})

	store, err := newStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize record store")
	}

	sessions, err := newSessionStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize session store")
	}

	authSvc := authService.NewService(store, sessions, cfg.Auth)
	mailer := email.NewService(cfg.SMTP)

	authMiddleware := middleware.NewAuthMiddleware(authSvc, cfg.Auth.AnonKey)

	r := router.New(
		cfg,
		log,
		authMiddleware,
		authHandler.NewHandler(authSvc, cfg.Auth.AnonKey, authMiddleware),
		patientHandler.NewHandler(resource.NewService(store, resource.Patients)),
		appointmentHandler.NewHandler(resource.NewService(store, resource.Appointments), mailer, log),
		doctorHandler.NewHandler(resource.NewService(store, resource.Doctors)),
		departmentHandler.NewHandler(resource.NewService(store, resource.Departments)),
		serviceHandler.NewHandler(resource.NewService(store, resource.Services)),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Str("base_path", cfg.Server.BasePath).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func newStore(cfg *config.Config, log zerolog.Logger) (kvstore.Store, error) {
	if cfg.Database.Driver == "memory" {
		log.Warn().Msg("using in-memory record store; data will not survive a restart")
		return kvstore.NewMemoryStore(), nil
	}

	db, err := kvstore.NewDB(cfg.Database)
	if err != nil {
		return nil, err
	}
	return kvstore.NewPostgresStore(db), nil
}

func newSessionStore(cfg *config.Config, log zerolog.Logger) (session.Store, error) {
	if cfg.Redis.URL == "" {
		log.Warn().Msg("redis not configured; sessions are in-process only")
		return session.NewMemoryStore(), nil
	}
	return session.NewRedisStore(cfg.Redis.URL)
}
