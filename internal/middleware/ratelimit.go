package middleware

import (
	"context"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/auth"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"
)

var httpRateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "checkout_service",
	Subsystem: "http",
	Name:      "rate_limited_total",
	Help:      "Total number of requests rejected by rate limiters.",
}, []string{"limiter"})

// RateLimiter token bucket на каждого пользователя, для запросов без
// учетных данных ключом служит IP. Неактивные бакеты вытесняются по TTL.
type RateLimiter struct {
	name   string
	logger *slog.Logger
	limit  rate.Limit
	burst  int

	mu       sync.Mutex
	limiters *cache.LRUCache[*rate.Limiter]
}

func NewRateLimiter(logger *slog.Logger, name string, rps float64, burst int, ttl time.Duration, maxKeys int) *RateLimiter {
	return &RateLimiter{
		name:     name,
		logger:   logger.With(slog.String("limiter", name)),
		limit:    rate.Limit(rps),
		burst:    burst,
		limiters: cache.NewLRUCache[*rate.Limiter](maxKeys, ttl),
	}
}

// Start запускает очистку неактивных бакетов.
func (l *RateLimiter) Start(ctx context.Context) error {
	return l.limiters.Start(ctx)
}

func (l *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := limiterKey(r)
		lim := l.limiter(key)

		res := lim.Reserve()
		if delay := res.Delay(); delay > 0 {
			res.Cancel()
			httpRateLimited.WithLabelValues(l.name).Inc()
			l.logger.Debug("rate limited", slog.String("key", key), slog.String("path", r.URL.Path))

			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			utils.WriteError(w, "Too many requests. Please try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters.Get(key)
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
	}
	// Set продлевает TTL активного бакета
	l.limiters.Set(key, lim)
	return lim
}

func limiterKey(r *http.Request) string {
	if creds, ok := auth.FromContext(r.Context()); ok {
		return "sub:" + creds.Subject()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
