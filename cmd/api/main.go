package main

import (
	"log"

	"customer-service/internal/config"
	"customer-service/internal/server"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env vars")
	}

	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	srv, err := server.New(&cfg, logger)
	if err != nil {
		logger.Fatal("failed to init server", zap.Error(err))
	}

	if err := srv.Run(); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
