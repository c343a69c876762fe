package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"bookstore/internal/pkg/log"
)

// envelope is the JSON shape every backend service answers with.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Err     *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// httpClient is the shared transport for one downstream service. Every
// request is a single attempt: failures surface immediately, never retried.
type httpClient struct {
	service string
	baseURL string
	client  *http.Client
	logger  log.Logger
}

func newHTTPClient(service, baseURL string, timeout time.Duration, logger log.Logger) *httpClient {
	return &httpClient{
		service: service,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With().Str("downstream", service).Logger(),
	}
}

func (c *httpClient) get(ctx context.Context, path, bearer string, out any) error {
	return c.do(ctx, http.MethodGet, path, bearer, nil, out)
}

func (c *httpClient) post(ctx context.Context, path, bearer string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, bearer, body, out)
}

func (c *httpClient) delete(ctx context.Context, path, bearer string, out any) error {
	return c.do(ctx, http.MethodDelete, path, bearer, nil, out)
}

func (c *httpClient) do(ctx context.Context, method, path, bearer string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindInternal, Service: c.service, Message: err.Error()}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: KindInternal, Service: c.service, Message: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("downstream unreachable")
		return &Error{Kind: KindNoResponse, Service: c.service, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindInternal, Service: c.service, Message: err.Error()}
	}

	var env envelope
	if len(raw) > 0 {
		// Tolerate non-envelope bodies; the status code still decides.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		message := http.StatusText(resp.StatusCode)
		if env.Err != nil && env.Err.Message != "" {
			message = env.Err.Message
		}
		c.logger.Warn().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Str("message", message).Msg("downstream error response")
		return &Error{Kind: KindStatus, Service: c.service, StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}

	payload := env.Data
	if payload == nil {
		payload = raw
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &Error{Kind: KindInternal, Service: c.service, Message: err.Error()}
	}
	return nil
}
