package main

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"backend/internal/config"
	"backend/internal/repository"
	"backend/internal/server"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	// Load configuration
	cfgPath := "configs/config.yml"
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Database connection
	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	repository.MigrateDB(db, logger)

	// Repository-layer logger
	repoLog := logrus.New()

	// Initialize and run the server
	srv := server.NewServer(db, cfg, logger, repoLog)
	srv.Run(cfg.Server.Port)
}
