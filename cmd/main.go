package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/payment-service/docs"
	"github.com/SergeyBogomolovv/payment-service/internal/app"
	"github.com/SergeyBogomolovv/payment-service/internal/config"
	"github.com/SergeyBogomolovv/payment-service/internal/entities"
	"github.com/SergeyBogomolovv/payment-service/internal/gateway"
	"github.com/SergeyBogomolovv/payment-service/internal/handler"
	"github.com/SergeyBogomolovv/payment-service/internal/postgres"
	"github.com/SergeyBogomolovv/payment-service/internal/repo"
	"github.com/SergeyBogomolovv/payment-service/internal/service"
	"github.com/SergeyBogomolovv/payment-service/pkg/cache"
	"github.com/SergeyBogomolovv/payment-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Payment Service API
// @version         1.0
// @description     Документация HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to migrate db", postgres.Migrate(ctx, db))

	pgRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	itemCache := cache.NewLRUCache[int64, entities.Item](conf.Cache.Capacity, conf.Cache.TTL)

	stripe := gateway.NewStripeClient(logger, conf.Stripe.APIURL)
	keyring := gateway.NewKeyring(conf.Stripe)
	if _, err := keyring.Resolve(entities.DefaultCurrency); err != nil {
		logger.Warn("stripe secret key not configured, payments will fail")
	}

	catalogService := service.NewCatalogService(logger, pgRepo, itemCache)
	orderService := service.NewOrderService(logger, txManager, pgRepo)
	paymentService := service.NewPaymentService(logger, stripe, keyring, pgRepo, orderService, pgRepo, conf.Stripe.TaxCountry)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, conf.Http.PublicURL, catalogService, orderService, paymentService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(itemCache, cacheWarmUpAdapter{svc: catalogService, count: conf.Cache.Capacity})

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
