package member

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ivangarzab/bookclub-admin/internal/models"
)

// Config holds configuration for the HTTP member gateway
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

// NewHTTP creates a new HTTP-backed member gateway
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

// CreateMember creates a new member; the backend assigns the ID
func (g *httpGateway) CreateMember(ctx context.Context, input *CreateMemberInput) (*models.Member, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and member name cannot be empty")
	}

	clubs := input.Clubs
	if clubs == nil {
		clubs = []string{}
	}

	payload := struct {
		Name      string   `json:"name"`
		Points    int      `json:"points"`
		BooksRead int      `json:"books_read"`
		Clubs     []string `json:"clubs"`
	}{
		Name:      input.Name,
		Points:    input.Points,
		BooksRead: input.BooksRead,
		Clubs:     clubs,
	}

	return g.writeMember(ctx, http.MethodPost, payload)
}

// UpdateMember updates an existing member's own fields
func (g *httpGateway) UpdateMember(ctx context.Context, input *UpdateMemberInput) (*models.Member, error) {
	if input == nil || input.MemberID == 0 {
		return nil, errors.New("input and member ID cannot be empty")
	}

	payload := struct {
		ID        int    `json:"id"`
		Name      string `json:"name"`
		Points    int    `json:"points"`
		BooksRead int    `json:"books_read"`
	}{
		ID:        input.MemberID,
		Name:      input.Name,
		Points:    input.Points,
		BooksRead: input.BooksRead,
	}

	return g.writeMember(ctx, http.MethodPut, payload)
}

// writeMember issues a member write and decodes the returned member
func (g *httpGateway) writeMember(ctx context.Context, method string, payload any) (*models.Member, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal member payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s/member", g.baseURL), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to write member: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, respBody)
	}

	var m models.Member
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode member: %w", err)
	}

	return &m, nil
}
