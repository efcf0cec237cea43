package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/auth"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	signWith := func(key string, exp time.Time) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(exp),
		}).SignedString([]byte(key))
		require.NoError(t, err)
		return token
	}
	sign := func(exp time.Time) string {
		return signWith("secret", exp)
	}

	testCases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid token", header: "Bearer " + sign(time.Now().Add(time.Hour)), wantStatus: http.StatusOK},
		{name: "expired token", header: "Bearer " + sign(time.Now().Add(-time.Hour)), wantStatus: http.StatusUnauthorized},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "forged signature", header: "Bearer " + signWith("attacker-key", time.Now().Add(time.Hour)), wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var subject string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				creds, ok := auth.FromContext(r.Context())
				require.True(t, ok)
				subject = creds.Subject()
			})
			h := middleware.Authenticate(slog.New(slog.NewTextHandler(io.Discard, nil)), auth.NewVerifier("secret"))(next)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, "alice", subject)
			}
		})
	}
}
