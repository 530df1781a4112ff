package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"monitor-srv/pkg/log"
)

const maxErrorBody = 512

// Config holds the settings shared by all collaborator HTTP clients.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

type client struct {
	l       log.Logger
	baseURL string
	http    *http.Client
}

func newClient(l log.Logger, cfg Config) client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return client{
		l:       l,
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// postJSON posts the request body and decodes the response into out.
// Pass a nil out to discard the response body.
func (c client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%s %s: status %d: %s", http.MethodPost, path, resp.StatusCode, snippet)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// getJSON fetches path and decodes the response into out.
func (c client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%s %s: status %d: %s", http.MethodGet, path, resp.StatusCode, snippet)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
