package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-balance-keeper/internal/config"
	"github.com/MKhiriev/go-balance-keeper/internal/logger"
	"github.com/MKhiriev/go-balance-keeper/internal/utils"
	"github.com/MKhiriev/go-balance-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		// the credential lives in h.token only, so signing out locally
		// cannot leave a copy behind in a cookie jar
		SetCookieJar(nil)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register posts to /api/users/register and keeps the auth_token cookie the
// server sets.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error) {
	return h.authenticate(ctx, "/api/users/register", req)
}

// Login posts to /api/users/login and keeps the auth_token cookie the server
// sets.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.UserProfile, error) {
	return h.authenticate(ctx, "/api/users/login", req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.UserProfile, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	token := sessionCookie(resp)
	if token == "" {
		return models.UserProfile{}, ErrNoSessionCookie
	}

	h.SetToken(token)
	return result.User, nil
}

// Logout posts to /api/users/logout with the current credential.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/users/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetUserSummary(ctx context.Context, userID string) (models.UserSummary, error) {
	var summary models.UserSummary

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", userID).
		SetResult(&summary).
		Get("/api/users/{id}")
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("user summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserSummary{}, err
	}

	return summary, nil
}

func (h *httpServerAdapter) CreateTransaction(ctx context.Context, input models.TransactionInput) (models.TransactionResult, error) {
	var result models.TransactionResult

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&result).
		Post("/api/transactions")
	if err != nil {
		return models.TransactionResult{}, fmt.Errorf("create transaction request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TransactionResult{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetCookie(&http.Cookie{Name: models.SessionCookieName, Value: token})
	}
	return req
}

func sessionCookie(resp *resty.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == models.SessionCookieName {
			return c.Value
		}
	}
	return ""
}
