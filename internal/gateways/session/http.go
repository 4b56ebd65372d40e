package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ivangarzab/bookclub-admin/internal/models"
)

// Config holds configuration for the HTTP session gateway
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

// NewHTTP creates a new HTTP-backed session gateway
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

// CreateSession starts a new session for a club
func (g *httpGateway) CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error) {
	if input == nil || input.ClubID == "" {
		return nil, errors.New("input and club ID cannot be empty")
	}

	payload := struct {
		ClubID  string      `json:"club_id"`
		Book    models.Book `json:"book"`
		DueDate time.Time   `json:"due_date"`
	}{
		ClubID:  input.ClubID,
		Book:    input.Book,
		DueDate: input.DueDate,
	}

	return g.writeSession(ctx, http.MethodPost, payload)
}

// UpdateSession updates a session, replacing any supplied fields whole
func (g *httpGateway) UpdateSession(ctx context.Context, input *UpdateSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	payload := struct {
		ID                    string               `json:"id"`
		Book                  *models.Book         `json:"book,omitempty"`
		DueDate               *time.Time           `json:"due_date,omitempty"`
		Discussions           *[]models.Discussion `json:"discussions,omitempty"`
		DiscussionIDsToDelete []string             `json:"discussion_ids_to_delete,omitempty"`
	}{
		ID:                    input.SessionID,
		Book:                  input.Book,
		DueDate:               input.DueDate,
		DiscussionIDsToDelete: input.DiscussionIDsToDelete,
	}

	// A non-nil empty array is a meaningful value here (all discussions
	// removed), so the nil check decides presence, not the length.
	if input.Discussions != nil {
		payload.Discussions = &input.Discussions
	}

	return g.writeSession(ctx, http.MethodPut, payload)
}

// writeSession issues a session write and decodes the returned session
func (g *httpGateway) writeSession(ctx context.Context, method string, payload any) (*models.Session, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s/session", g.baseURL), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to write session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, respBody)
	}

	var s models.Session
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	return &s, nil
}
