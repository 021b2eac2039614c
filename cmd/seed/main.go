// Command seed provisions the public catalog (departments, services,
// doctors) and a bootstrap admin account through the API itself, so the
// seed path exercises the same auth and validation the console uses.
// It is safe to re-run: seeding is skipped when departments already exist.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/medicore/hospital-api/internal/config"
	"github.com/medicore/hospital-api/internal/seed"
	"github.com/medicore/hospital-api/pkg/client"
	"github.com/medicore/hospital-api/pkg/logger"
)

func main() {
	log := logger.New(&logger.Config{
		Level:      logger.InfoLevel,
		TimeFormat: time.RFC3339,
		Pretty:     true,
	})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	baseURL := os.Getenv("MEDICORE_SEED_BASE_URL")
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://localhost:%d%s", cfg.Server.Port, cfg.Server.BasePath)
	}
	adminEmail := envOr("MEDICORE_SEED_ADMIN_EMAIL", "admin@medicore.example")
	adminPassword := envOr("MEDICORE_SEED_ADMIN_PASSWORD", "changeme-on-first-login")
	adminName := envOr("MEDICORE_SEED_ADMIN_NAME", "MediCore Admin")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c := client.New(baseURL, cfg.Auth.AnonKey)

	if _, err := c.Signup(ctx, adminEmail, adminPassword, adminName); err != nil {
		var apiErr *client.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != 400 {
			log.Fatal().Err(err).Msg("failed to create admin account")
		}
		log.Info().Str("email", adminEmail).Msg("admin account already exists")
	} else {
		log.Info().Str("email", adminEmail).Msg("admin account created")
	}

	admin, _, err := c.Login(ctx, adminEmail, adminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("admin login failed")
	}

	departments, err := c.ListDepartments(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list departments")
	}
	if len(departments) > 0 {
		log.Info().Int("departments", len(departments)).Msg("catalog already seeded, nothing to do")
		return
	}

	for _, d := range seed.Departments() {
		if _, err := admin.CreateDepartment(ctx, d); err != nil {
			log.Fatal().Err(err).Str("department", d.Name).Msg("failed to seed department")
		}
		log.Info().Str("department", d.Name).Msg("seeded department")
	}
	for _, s := range seed.Services() {
		if _, err := admin.CreateService(ctx, s); err != nil {
			log.Fatal().Err(err).Str("service", s.Title).Msg("failed to seed service")
		}
		log.Info().Str("service", s.Title).Msg("seeded service")
	}
	for _, d := range seed.Doctors() {
		if _, err := admin.CreateDoctor(ctx, d); err != nil {
			log.Fatal().Err(err).Str("doctor", d.Name).Msg("failed to seed doctor")
		}
		log.Info().Str("doctor", d.Name).Msg("seeded doctor")
	}

	log.Info().Msg("seeding complete")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
