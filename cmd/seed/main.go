// Command seed applies the schema and adds a test item to an empty catalog.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SergeyBogomolovv/payment-service/internal/config"
	"github.com/SergeyBogomolovv/payment-service/internal/entities"
	"github.com/SergeyBogomolovv/payment-service/internal/postgres"
	"github.com/SergeyBogomolovv/payment-service/internal/repo"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

var testItem = entities.Item{
	Name:        "Test Product",
	Description: "Test product for checking Stripe payments",
	Price:       decimal.NewFromInt(1000),
	Currency:    entities.USD,
}

func main() {
	godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(context.Background(), logger); err != nil {
		logger.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	conf := config.New()
	if err := conf.Postgres.Validate(); err != nil {
		return fmt.Errorf("invalid postgres config: %w", err)
	}

	db, err := postgres.New(conf.Postgres)
	if err != nil {
		return fmt.Errorf("failed to connect to db: %w", err)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		return fmt.Errorf("failed to migrate db: %w", err)
	}

	r := repo.NewPostgresRepo(db)
	count, err := r.CountItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to count items: %w", err)
	}
	if count > 0 {
		logger.Info("catalog is not empty, nothing to seed", slog.Int("items", count))
		return nil
	}

	item, err := r.CreateItem(ctx, testItem)
	if err != nil {
		return fmt.Errorf("failed to create test item: %w", err)
	}
	logger.Info("test item created", slog.Int64("id", item.ID), slog.String("name", item.Name))
	return nil
}
