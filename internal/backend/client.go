package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/auth"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/shopspring/decimal"
)

const maxErrorBody = 4 << 10

// StatusError неуспешный ответ бекенда, который не сводится к известной ошибке.
type StatusError struct {
	Method  string
	Path    string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: backend responded %d", e.Method, e.Path, e.Code)
	}
	return fmt.Sprintf("%s %s: backend responded %d: %s", e.Method, e.Path, e.Code, e.Message)
}

// Factory создает клиентов, привязанных к учетным данным конкретного пользователя.
type Factory struct {
	http    *http.Client
	baseURL string
}

func NewFactory(cfg config.Backend) *Factory {
	return &Factory{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

func (f *Factory) For(creds auth.CredentialProvider) *Client {
	return NewClient(f.http, f.baseURL, creds)
}

type Client struct {
	http    *http.Client
	baseURL string
	creds   auth.CredentialProvider
}

func NewClient(httpClient *http.Client, baseURL string, creds auth.CredentialProvider) *Client {
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
	}
}

func (c *Client) GetAddress(ctx context.Context) (entities.Address, error) {
	var a Address
	if err := c.do(ctx, http.MethodGet, "/api/address", nil, nil, &a, entities.ErrAddressNotFound); err != nil {
		return entities.Address{}, err
	}
	return AddressJSONToEntity(a), nil
}

func (c *Client) SaveAddress(ctx context.Context, a entities.Address) error {
	body, err := AddressEntityToJSON(a)
	if err != nil {
		return err
	}
	err = c.do(ctx, http.MethodPost, "/api/address", nil, body, nil, nil)

	var se *StatusError
	if errors.As(err, &se) && se.Code == http.StatusConflict {
		return entities.ErrAddressConflict
	}
	return err
}

func (c *Client) UpdateAddress(ctx context.Context, a entities.Address) error {
	body, err := AddressEntityToJSON(a)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, "/api/address", nil, body, nil, entities.ErrAddressNotFound)
}

func (c *Client) DeleteAddress(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/address", nil, nil, nil, entities.ErrAddressNotFound)
}

func (c *Client) GetCart(ctx context.Context) ([]entities.CartItem, error) {
	var cart Cart
	if err := c.do(ctx, http.MethodGet, "/cart", nil, nil, &cart, entities.ErrCartEmpty); err != nil {
		return nil, err
	}
	return CartJSONToEntity(cart), nil
}

func (c *Client) GetProfile(ctx context.Context) (entities.Profile, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, &u, nil); err != nil {
		return entities.Profile{}, err
	}
	return entities.Profile{Username: u.Username, Email: u.Email, Phone: u.Phone}, nil
}

func (c *Client) CreateGatewayOrder(ctx context.Context, amount decimal.Decimal, currency string) (entities.GatewayOrder, error) {
	q := url.Values{}
	q.Set("amount", amount.StringFixed(2))
	q.Set("currency", currency)

	var g GatewayOrder
	if err := c.do(ctx, http.MethodPost, "/payments", q, nil, &g, nil); err != nil {
		return entities.GatewayOrder{}, err
	}
	return GatewayOrderJSONToEntity(g), nil
}

func (c *Client) VerifyPayment(ctx context.Context, p entities.PaymentCompleted) (bool, error) {
	q := url.Values{}
	q.Set("orderId", p.OrderID)
	q.Set("paymentId", p.PaymentID)
	q.Set("signature", p.Signature)

	var ok bool
	if err := c.do(ctx, http.MethodPost, "/payments/verify", q, nil, &ok, nil); err != nil {
		return false, err
	}
	return ok, nil
}

func (c *Client) PlaceOrder(ctx context.Context, r entities.PlaceOrderRequest) (entities.Order, error) {
	body, err := CheckoutEntityToJSON(r)
	if err != nil {
		return entities.Order{}, err
	}
	var o Order
	if err := c.do(ctx, http.MethodPost, "/checkout", nil, body, &o, nil); err != nil {
		return entities.Order{}, err
	}
	return OrderJSONToEntity(o), nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (entities.Order, error) {
	var o Order
	path := "/api/order/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &o, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}
	return OrderJSONToEntity(o), nil
}

func (c *Client) ListOrders(ctx context.Context) ([]entities.Order, error) {
	var list []Order
	if err := c.do(ctx, http.MethodGet, "/api/order", nil, nil, &list, nil); err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(list))
	for _, o := range list {
		orders = append(orders, OrderJSONToEntity(o))
	}
	return orders, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, notFound error) error {
	token, err := c.creds.Token(ctx)
	if err != nil {
		return err
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return entities.ErrUnauthenticated
	case res.StatusCode == http.StatusNotFound && notFound != nil:
		return notFound
	case res.StatusCode < 200 || res.StatusCode >= 300:
		msg, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return &StatusError{Method: method, Path: path, Code: res.StatusCode, Message: strings.TrimSpace(string(msg))}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}
