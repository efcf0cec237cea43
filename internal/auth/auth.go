package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/golang-jwt/jwt/v5"
)

// CredentialProvider отдает токен для очередного запроса в бекенд.
// Если токена нет или он протух, возвращается entities.ErrUnauthenticated.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Verifier проверяет подпись токена ключом, общим с бекендом.
// Subject берется только из токена с верной подписью.
type Verifier struct {
	key    []byte
	parser *jwt.Parser
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{
		key:    []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

func (v *Verifier) Parse(token string) (Claims, error) {
	if token == "" {
		return Claims{}, entities.ErrUnauthenticated
	}

	var claims jwt.RegisteredClaims
	_, err := v.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", entities.ErrUnauthenticated, err)
	}
	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("%w: token without subject", entities.ErrUnauthenticated)
	}

	c := Claims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		c.ExpiresAt = claims.ExpiresAt.Time
	}
	return c, nil
}

// Provider проверяет токен и оборачивает его в JWTProvider.
func (v *Verifier) Provider(token string) (*JWTProvider, error) {
	claims, err := v.Parse(token)
	if err != nil {
		return nil, err
	}
	return &JWTProvider{verifier: v, token: token, claims: claims, now: time.Now}, nil
}

type JWTProvider struct {
	verifier *Verifier

	mu     sync.RWMutex
	token  string
	claims Claims
	now    func() time.Time
}

func (p *JWTProvider) Token(ctx context.Context) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.expired() {
		return "", entities.ErrUnauthenticated
	}
	return p.token, nil
}

// Clone копия провайдера, которая обновляется независимо от исходного.
func (p *JWTProvider) Clone() *JWTProvider {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &JWTProvider{verifier: p.verifier, token: p.token, claims: p.claims, now: p.now}
}

// Refresh заменяет токен, если он подписан верно и принадлежит тому же subject.
func (p *JWTProvider) Refresh(token string) error {
	claims, err := p.verifier.Parse(token)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if claims.Subject != p.claims.Subject {
		return fmt.Errorf("%w: subject mismatch", entities.ErrUnauthenticated)
	}
	p.token = token
	p.claims = claims
	return nil
}

func (p *JWTProvider) Subject() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.claims.Subject
}

func (p *JWTProvider) expired() bool {
	// токен без exp считаем бессрочным
	if p.claims.ExpiresAt.IsZero() {
		return false
	}
	return !p.now().Before(p.claims.ExpiresAt)
}

// BearerToken достает токен из заголовка Authorization.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(h, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

type ctxKey struct{}

func WithProvider(ctx context.Context, p *JWTProvider) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func FromContext(ctx context.Context) (*JWTProvider, bool) {
	p, ok := ctx.Value(ctxKey{}).(*JWTProvider)
	return p, ok
}
