package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ivangarzab/bookclub-admin/internal/models"
)

// Config holds configuration for the HTTP server gateway
type Config struct {
	// BaseURL is the root of the remote API
	BaseURL string

	// HTTPClient is the client to issue requests with; http.DefaultClient
	// is used when nil
	HTTPClient *http.Client
}

// httpGateway implements the Gateway interface over HTTP
type httpGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTP creates a new HTTP-backed server gateway
func NewHTTP(cfg *Config) (*httpGateway, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &httpGateway{
		baseURL: cfg.BaseURL,
		client:  client,
	}, nil
}

// ListServers retrieves the full server list from the remote endpoint
func (g *httpGateway) ListServers(ctx context.Context, input *ListServersInput) (*ListServersOutput, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/server", g.baseURL), nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Servers []*models.Server `json:"servers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode server list: %w", err)
	}

	return &ListServersOutput{
		Servers: payload.Servers,
	}, nil
}
