package main

import (
	"context"
	"log"
	"net/http"

	"github.com/critmass/availability-bot/internal/config"
	"github.com/critmass/availability-bot/internal/database"
	"github.com/critmass/availability-bot/internal/domain/dates"
	"github.com/critmass/availability-bot/internal/domain/service"
	"github.com/critmass/availability-bot/internal/handlers"
	"github.com/critmass/availability-bot/internal/logger"
	"github.com/critmass/availability-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	zlog.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	slackClient := slack.New(cfg.SlackBotToken)

	dm := database.NewInstance(db)
	services := service.NewInstance(dm, slackClient, dates.NewParser(), zlog)

	// Restore every scope before the transport starts accepting events.
	if err := services.Availability.RestoreScopes(context.Background()); err != nil {
		zlog.Fatal("failed to restore scopes", zap.Error(err))
	}

	handler := handlers.New(slackClient, services.Availability, cfg.SlackSigningSecret, zlog)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/slack/interactions", handler.HandleInteraction)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	zlog.Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
