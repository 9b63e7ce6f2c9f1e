package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hospital-admin-core/internal/config"
	"hospital-admin-core/internal/logging"
	"hospital-admin-core/internal/session"
	"hospital-admin-core/internal/storage"
	"hospital-admin-core/internal/store"
	"hospital-admin-core/internal/theme"
)

func main() {
	// Load environment variables; a missing .env just means plain env vars.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer logger.Sync()

	// Open the durable mirror
	kv, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Fatal("opening durable storage failed", zap.String("path", cfg.Storage.Path), zap.Error(err))
	}
	defer kv.Close()

	// Hydrate the core
	core := store.New(kv, logger)
	tracker := session.NewTracker(kv, logger)

	var source theme.SystemSchemeSource
	if cfg.ThemeFile != "" {
		source, err = theme.NewFileSource(cfg.ThemeFile)
		if err != nil {
			logger.Warn("watching colour-scheme file failed, system theme is static",
				zap.String("path", cfg.ThemeFile), zap.Error(err))
			source = nil
		}
	}
	themes := theme.NewManager(kv, source, nil, logger)
	defer themes.Close()

	logger.Info("hospital console core ready",
		zap.Int("patients", len(core.Patients())),
		zap.Int("doctors", len(core.Doctors())),
		zap.Int("appointments", len(core.Appointments())),
		zap.Int("rooms", len(core.Rooms())),
		zap.Int("loginHistory", len(tracker.History())),
		zap.String("resolvedTheme", string(themes.ResolvedTheme())),
	)

	// The core is event-driven with no listener of its own; stay up until the
	// hosting session ends.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
}
