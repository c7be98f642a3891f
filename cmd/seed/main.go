// cmd/seed/main.go
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go_5_card_catalog/internal/config"
	"go_5_card_catalog/internal/model"
	"go_5_card_catalog/internal/repository"
	"go_5_card_catalog/internal/seed"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	// スキーマを最新化してから初期データを投入する
	if err := db.AutoMigrate(&model.CardType{}, &model.CardSubType{}, &model.Card{}, &model.CardStatistics{}); err != nil {
		slog.Error("Error migrating schema", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := seed.Run(ctx, db, logger); err != nil {
		slog.Error("Seed failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Println("Seed completed successfully")
}
