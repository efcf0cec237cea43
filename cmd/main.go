package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/storefront-checkout/docs"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/app"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/auth"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/backend"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/checkout"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/events"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/handler"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/repo"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/widget"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Storefront Checkout API
// @version         1.0
// @description     Документация HTTP API оформления заказа
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	checkout.RegisterMetrics()
	handler.RegisterMetrics()
	events.RegisterMetrics()

	var closers []io.Closer

	var journal attemptJournal = service.NopJournal{}
	if conf.Postgres.Enabled {
		db, err := postgres.New(conf.Postgres)
		panicIfErr("failed to connect to db", err)
		closers = append(closers, db)
		logger.Info("postgres connected")

		journal = service.NewJournalService(logger, trm.NewManager(db), repo.NewPostgresRepo(db))
	}

	opts := []checkout.WorkflowOption{checkout.WithJournal(journal)}
	if conf.Kafka.Enabled {
		publisher := events.NewKafkaPublisher(logger, conf.Kafka)
		closers = append(closers, publisher)
		opts = append(opts, checkout.WithPublisher(publisher))
		logger.Info("kafka publisher enabled", slog.String("topic", conf.Kafka.Topic))
	}

	backends := backend.NewFactory(conf.Backend)
	loader := widget.NewLoader(&http.Client{Timeout: conf.Backend.Timeout}, conf.Gateway.ScriptURL)
	workflow := checkout.NewWorkflow(logger, widget.NewInvoker(loader, conf.Gateway), conf.Gateway.Currency, opts...)

	sessions := cache.NewLRUCache(conf.Session.Capacity, conf.Session.TTL, cache.WithEvictHook(service.CloseSession))
	orders := cache.NewLRUCache[entities.Order](conf.OrderCache.Capacity, conf.OrderCache.TTL)

	checkoutService := service.NewCheckoutService(logger, func(creds auth.CredentialProvider) service.Backend {
		return backends.For(creds)
	}, workflow, sessions)
	orderService := service.NewOrderService(logger, func(creds auth.CredentialProvider) service.OrderBackend {
		return backends.For(creds)
	}, orders)
	addressService := service.NewAddressService(logger, func(creds auth.CredentialProvider) service.AddressBackend {
		return backends.For(creds)
	})

	httpHandler := handler.NewHTTPHandler(logger, checkoutService, orderService, addressService, journal, loader.ScriptURL())

	app := app.New(logger, conf)
	app.SetStarters(sessions, orders)

	if rl := conf.RateLimit; rl.Enabled {
		general := middleware.NewRateLimiter(logger, "general", rl.RPS, rl.Burst, rl.TTL, rl.MaxKeys)
		app.SetMiddlewares(general.Handler)
		app.SetStarters(general)

		if rl.Submit.RPS > 0 && rl.Submit.Burst > 0 {
			submit := middleware.NewRateLimiter(logger, "submit", rl.Submit.RPS, rl.Submit.Burst, rl.TTL, rl.MaxKeys)
			httpHandler.SetSubmitLimiter(submit.Handler)
			app.SetStarters(submit)
		}
	}

	app.SetHTTPHandlers(httpHandler)
	app.SetClosers(closers...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

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

// attemptJournal журнал попыток: пишет workflow, читает http handler.
type attemptJournal interface {
	checkout.Journal
	handler.AttemptService
}
