package club

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/ivangarzab/bookclub-admin/internal/models"
)

// ErrClubNotFound is returned when the remote endpoint has no such club
var ErrClubNotFound = errors.New("club not found")

// Config holds configuration for the HTTP club gateway
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

// NewHTTP creates a new HTTP-backed club gateway
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

// GetClub retrieves the fully nested club record
func (g *httpGateway) GetClub(ctx context.Context, input *GetClubInput) (*models.Club, error) {
	if input == nil || input.ClubID == "" {
		return nil, errors.New("input and club ID cannot be empty")
	}

	query := url.Values{}
	query.Set("id", input.ClubID)
	query.Set("server_id", input.ServerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/club?%s", g.baseURL, query.Encode()), nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get club: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrClubNotFound
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, body)
	}

	var c models.Club
	if err := json.NewDecoder(resp.Body).Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode club: %w", err)
	}

	return &c, nil
}

// CreateClub creates a new club under a server
func (g *httpGateway) CreateClub(ctx context.Context, input *CreateClubInput) (*models.Club, error) {
	if input == nil || input.ClubID == "" || input.ServerID == "" {
		return nil, errors.New("input, club ID and server ID cannot be empty")
	}

	payload := struct {
		ID             string `json:"id"`
		Name           string `json:"name"`
		ServerID       string `json:"server_id"`
		DiscordChannel string `json:"discord_channel,omitempty"`
	}{
		ID:             input.ClubID,
		Name:           input.Name,
		ServerID:       input.ServerID,
		DiscordChannel: input.DiscordChannel,
	}

	return g.writeClub(ctx, http.MethodPost, payload)
}

// UpdateShameList replaces the club's shame list with the supplied set
func (g *httpGateway) UpdateShameList(ctx context.Context, input *UpdateShameListInput) (*models.Club, error) {
	if input == nil || input.ClubID == "" {
		return nil, errors.New("input and club ID cannot be empty")
	}

	// The shame list is always sent, even when empty: a nil slice would
	// serialize as null and the endpoint treats absent fields as unchanged.
	shameList := input.ShameList
	if shameList == nil {
		shameList = []int{}
	}

	payload := struct {
		ID        string `json:"id"`
		ServerID  string `json:"server_id"`
		ShameList []int  `json:"shame_list"`
	}{
		ID:        input.ClubID,
		ServerID:  input.ServerID,
		ShameList: shameList,
	}

	return g.writeClub(ctx, http.MethodPut, payload)
}

// DeleteClub removes a club
func (g *httpGateway) DeleteClub(ctx context.Context, input *DeleteClubInput) error {
	if input == nil || input.ClubID == "" {
		return errors.New("input and club ID cannot be empty")
	}

	query := url.Values{}
	query.Set("id", input.ClubID)
	query.Set("server_id", input.ServerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/club?%s", g.baseURL, query.Encode()), nil)
	if err != nil {
		return err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete club: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrClubNotFound
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, body)
	}

	return nil
}

// writeClub issues a club write and decodes the returned club
func (g *httpGateway) writeClub(ctx context.Context, method string, payload any) (*models.Club, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal club payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s/club", g.baseURL), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to write club: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrClubNotFound
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, respBody)
	}

	var c models.Club
	if err := json.NewDecoder(resp.Body).Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode club: %w", err)
	}

	return &c, nil
}
