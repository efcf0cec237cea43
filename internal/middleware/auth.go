package middleware

import (
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/auth"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
)

// Authenticate проверяет подпись токена из заголовка Authorization
// и кладет провайдера учетных данных в контекст.
func Authenticate(logger *slog.Logger, verifier *auth.Verifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			creds, err := verifier.Provider(auth.BearerToken(r))
			if err == nil {
				_, err = creds.Token(r.Context())
			}
			if err != nil {
				logger.DebugContext(r.Context(), "unauthenticated request", slog.Any("error", err), slog.String("path", r.URL.Path))
				utils.WriteError(w, "Your session has expired. Please log in again.", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithProvider(r.Context(), creds)))
		})
	}
}
