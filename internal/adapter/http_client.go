package adapter

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
)

type httpGateway struct {
	client *resty.Client
	log    *logger.Logger

	mu             sync.RWMutex
	token          string
	onUnauthorized func()
}

// NewHTTPGateway constructs the REST implementation of [Gateway] on top of a
// shared resty client configured with the base URL and request timeout from
// cfg.
func NewHTTPGateway(cfg config.ClientAdapter, log *logger.Logger) Gateway {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8088"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpGateway{client: cli, log: log}
}

func (h *httpGateway) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpGateway) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpGateway) OnUnauthorized(hook func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUnauthorized = hook
}

func (h *httpGateway) Get(ctx context.Context, path string) ([]byte, error) {
	return h.execute(ctx, http.MethodGet, path, nil)
}

func (h *httpGateway) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return h.execute(ctx, http.MethodPost, path, body)
}

func (h *httpGateway) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return h.execute(ctx, http.MethodPut, path, body)
}

func (h *httpGateway) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	return h.execute(ctx, http.MethodPatch, path, body)
}

func (h *httpGateway) Delete(ctx context.Context, path string) ([]byte, error) {
	return h.execute(ctx, http.MethodDelete, path, nil)
}

// execute runs a single request: attaches the bearer token when present,
// stamps a request id, sends, and normalizes every failure through the error
// mappers. A 401 response resets the token and fires the unauthorized hook
// before the error is reported, whichever operation triggered it.
func (h *httpGateway) execute(ctx context.Context, method, path string, body any) ([]byte, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString())

	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.log.Error().Err(err).Str("method", method).Str("path", path).Msg("transport failure")
		return nil, mapTransportError(err)
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		h.forceSessionReset(method, path)
	}

	if err = mapHTTPError(resp); err != nil {
		h.log.Error().Err(err).
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("request rejected")
		return nil, err
	}

	return resp.Body(), nil
}

// forceSessionReset clears the gateway token and invokes the registered
// unauthorized hook. Invariant: any 401 anywhere invalidates the local
// session immediately, even when the triggering call was not auth-related.
func (h *httpGateway) forceSessionReset(method, path string) {
	h.mu.Lock()
	h.token = ""
	hook := h.onUnauthorized
	h.mu.Unlock()

	h.log.Warn().Str("method", method).Str("path", path).Msg("unauthorized response, resetting session")

	if hook != nil {
		hook()
	}
}
