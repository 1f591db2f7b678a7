// Package api is the stateless client for the tienda backend. It performs
// transport and header injection only: no business validation, no retries.
// Every request reads the bearer token from its TokenSource at send time, so
// a login or logout between requests takes effect immediately without
// recreating the client.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tiendartesanal/tienda-cli/internal/models"
)

// TokenSource yields the current bearer token, if any. It is consulted on
// every request, never cached.
type TokenSource interface {
	Token() (string, bool)
}

// Config holds the client's transport settings.
type Config struct {
	BaseURL  string
	CacheDir string
	Timeout  time.Duration
}

// Client talks to the tienda backend over REST.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient creates a backend client. tokens may be nil for flows that never
// authenticate (register, login).
func NewClient(cfg Config, tokens TokenSource) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: newHTTPClient(cfg.CacheDir, timeout),
		tokens:     tokens,
	}
}

// ============ AUTHENTICATION ============

// Register creates a new account.
func (c *Client) Register(ctx context.Context, user models.UserRegister) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/register", user, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a token. The backend's token endpoint
// expects form-url-encoded fields, not JSON.
func (c *Client) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := c.newRequest(ctx, http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var out models.AuthResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============ PRODUCTOS ============

// ListProductos returns the full catalog.
func (c *Client) ListProductos(ctx context.Context) ([]models.Producto, error) {
	var out []models.Producto
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/productos/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProducto returns one product by id.
func (c *Client) GetProducto(ctx context.Context, id int64) (*models.Producto, error) {
	var out models.Producto
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/v1/productos/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProducto creates a product.
func (c *Client) CreateProducto(ctx context.Context, producto models.ProductoCreate) (*models.Producto, error) {
	var out models.Producto
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/productos/", producto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProducto applies a partial update to a product.
func (c *Client) UpdateProducto(ctx context.Context, id int64, producto models.ProductoUpdate) (*models.Producto, error) {
	var out models.Producto
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/v1/productos/%d", id), producto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProducto deletes a product.
func (c *Client) DeleteProducto(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/productos/%d", id), nil, nil)
}

// ============ PEDIDOS ============

// ListPedidos returns the order history visible to the caller.
func (c *Client) ListPedidos(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/pedidos/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPedido returns one order by id.
func (c *Client) GetPedido(ctx context.Context, id int64) (*models.Order, error) {
	var out models.Order
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/v1/pedidos/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePedido creates an order. Unit prices are resolved by the backend.
func (c *Client) CreatePedido(ctx context.Context, pedido models.OrderCreate) (*models.Order, error) {
	var out models.Order
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/pedidos/", pedido, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePedido applies a partial update to an order.
func (c *Client) UpdatePedido(ctx context.Context, id int64, pedido models.OrderUpdate) (*models.Order, error) {
	var out models.Order
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/v1/pedidos/%d", id), pedido, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePedido deletes an order.
func (c *Client) DeletePedido(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/pedidos/%d", id), nil, nil)
}

// ============ PAGOS ============

// ListPagos returns payments, optionally filtered by estado
// (e.g. "pending").
func (c *Client) ListPagos(ctx context.Context, estado string) ([]models.Payment, error) {
	path := "/api/v1/pagos/"
	if estado != "" {
		path += "?estado=" + url.QueryEscape(estado)
	}

	var out []models.Payment
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPago returns one payment by id.
func (c *Client) GetPago(ctx context.Context, id int64) (*models.Payment, error) {
	var out models.Payment
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/v1/pagos/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePago creates a payment.
func (c *Client) CreatePago(ctx context.Context, pago models.PaymentCreate) (*models.Payment, error) {
	var out models.Payment
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/pagos/", pago, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePago applies a partial update to a payment. Settling a pending
// payment sends monto plus metodo_pago.
func (c *Client) UpdatePago(ctx context.Context, id int64, pago models.PaymentUpdate) (*models.Payment, error) {
	var out models.Payment
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/v1/pagos/%d", id), pago, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePago deletes a payment.
func (c *Client) DeletePago(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/pagos/%d", id), nil, nil)
}

// ============ TRANSPORT ============

// doJSON sends a request with an optional JSON body and decodes a JSON
// response into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// newRequest builds a request with the standard headers. The bearer token is
// read from the token source here, at send time.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	requestID := req.Header.Get("X-Request-ID")
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Str("requestID", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(started)).
		Msg("backend call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp, body, requestID)
	}

	if out == nil || len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
