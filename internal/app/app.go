package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/auth"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"
)

type application struct {
	logger   *slog.Logger
	verifier *auth.Verifier

	router      chi.Router
	httpSrv     *http.Server
	middlewares []func(http.Handler) http.Handler
	starters    []Starter
	closers  []io.Closer
}

func New(logger *slog.Logger, cfg config.Config) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(chimw.Recoverer)
	router.Use(middleware.Metrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Cors.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.Handler())

	httpSrv := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &application{
		logger:   logger,
		verifier: auth.NewVerifier(cfg.Auth.JWTSecret),
		httpSrv:  httpSrv,
		router:   router,
	}
}

type HTTPHandler interface {
	Init(r chi.Router)
}

// SetMiddlewares middleware для маршрутов API, выполняются после аутентификации.
// Вызывать до SetHTTPHandlers.
func (a *application) SetMiddlewares(mws ...func(http.Handler) http.Handler) {
	a.middlewares = append(a.middlewares, mws...)
}

// SetHTTPHandlers регистрирует маршруты API, все они требуют Bearer токен.
func (a *application) SetHTTPHandlers(handlers ...HTTPHandler) {
	a.router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(a.logger, a.verifier))
		r.Use(a.middlewares...)
		for _, h := range handlers {
			h.Init(r)
		}
	})
}

// Starter фоновая задача, которую нужно запустить вместе с приложением.
type Starter interface {
	Start(ctx context.Context) error
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = append(a.starters, starters...)
}

// SetClosers ресурсы, которые закрываются при остановке после http сервера.
func (a *application) SetClosers(closers ...io.Closer) {
	a.closers = append(a.closers, closers...)
}

// Start запускает starters параллельно и ждет их. ctx должен жить до остановки приложения:
// janitor кеша работает, пока он не отменен.
func (a *application) Start(ctx context.Context) error {
	var eg errgroup.Group
	for _, s := range a.starters {
		eg.Go(func() error {
			return s.Start(ctx)
		})
	}
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("failed to run starters: %w", err)
	}

	go a.startServer()

	a.logger.Info("application started")
	return nil
}

func (a *application) startServer() {
	a.logger.Info("starting http server", slog.String("addr", a.httpSrv.Addr))
	if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Error("http server stopped", slog.Any("error", err))
	}
}

const gracefulShutdownTimeout = 5 * time.Second

func (a *application) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}

	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}
