package admin

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ivangarzab/bookclub-admin/internal/common/clock"
	"github.com/ivangarzab/bookclub-admin/internal/common/uuid"
	clubGateway "github.com/ivangarzab/bookclub-admin/internal/gateways/club"
	memberGateway "github.com/ivangarzab/bookclub-admin/internal/gateways/member"
	serverGateway "github.com/ivangarzab/bookclub-admin/internal/gateways/server"
	sessionGateway "github.com/ivangarzab/bookclub-admin/internal/gateways/session"
	"github.com/ivangarzab/bookclub-admin/internal/models"
)

// service implements the Service interface
type service struct {
	serverGateway  serverGateway.Gateway
	clubGateway    clubGateway.Gateway
	memberGateway  memberGateway.Gateway
	sessionGateway sessionGateway.Gateway
	clock          clock.Clock
	uuidGenerator  uuid.UUID
	logger         *zap.Logger

	state *selectionState
}

// New creates a new admin service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ServerGateway == nil {
		return nil, ErrNilServerGateway
	}

	if cfg.ClubGateway == nil {
		return nil, ErrNilClubGateway
	}

	if cfg.MemberGateway == nil {
		return nil, ErrNilMemberGateway
	}

	if cfg.SessionGateway == nil {
		return nil, ErrNilSessionGateway
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	uuidGen := cfg.UUIDGenerator
	if uuidGen == nil {
		uuidGen = uuid.New()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		serverGateway:  cfg.ServerGateway,
		clubGateway:    cfg.ClubGateway,
		memberGateway:  cfg.MemberGateway,
		sessionGateway: cfg.SessionGateway,
		clock:          clk,
		uuidGenerator:  uuidGen,
		logger:         logger,
		state:          &selectionState{},
	}, nil
}

// RefreshServers re-fetches the full server list and reconciles the active
// selection against it. When the previously active server is gone, the first
// server in the returned list becomes active; list order is assumed stable
// enough for that to be a reasonable default.
func (s *service) RefreshServers(ctx context.Context, input *RefreshServersInput) (*RefreshServersOutput, error) {
	if input == nil {
		input = &RefreshServersInput{}
	}

	listed, err := s.serverGateway.ListServers(ctx, &serverGateway.ListServersInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to refresh servers: %w", err)
	}

	servers := listed.Servers
	previous := s.state.ActiveServerID

	preserved := false
	active := ""
	if input.PreserveSelection && previous != "" && findServer(servers, previous) != nil {
		active = previous
		preserved = true
	} else if len(servers) > 0 {
		active = servers[0].ID
	}

	// Losing the server selection invalidates any club selection with it
	if !preserved {
		s.state.ActiveClub = nil
	}

	s.state.Servers = servers
	s.state.ActiveServerID = active

	s.logger.Debug("refreshed server list",
		zap.Int("servers", len(servers)),
		zap.String("active_server", active),
		zap.Bool("preserved", preserved))

	return &RefreshServersOutput{
		Servers:            servers,
		ActiveServerID:     active,
		SelectionPreserved: preserved,
	}, nil
}

// SelectServer makes a server the active one and clears any club selection
func (s *service) SelectServer(ctx context.Context, input *SelectServerInput) (*SelectServerOutput, error) {
	if input == nil || input.ServerID == "" {
		return nil, ErrEmptyServerID
	}

	srv := findServer(s.state.Servers, input.ServerID)
	if srv == nil {
		return nil, ErrServerNotFound
	}

	s.state.ActiveServerID = srv.ID
	s.state.ActiveClub = nil

	return &SelectServerOutput{
		Server: srv,
	}, nil
}

// SelectClub fetches a club's full nested detail and makes it active. On
// failure the previous club state is left intact; there is no partial
// overwrite.
func (s *service) SelectClub(ctx context.Context, input *SelectClubInput) (*SelectClubOutput, error) {
	if input == nil || input.ClubID == "" {
		return nil, ErrEmptyClubID
	}

	if s.state.ActiveServerID == "" {
		return nil, ErrNoActiveServer
	}

	detail, err := s.clubGateway.GetClub(ctx, &clubGateway.GetClubInput{
		ClubID:   input.ClubID,
		ServerID: s.state.ActiveServerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch club detail: %w", err)
	}

	s.state.ActiveClub = detail

	return &SelectClubOutput{
		Club: detail,
	}, nil
}

// CreateClub creates a club under the active server, then re-fetches the
// server list rather than patching it locally.
func (s *service) CreateClub(ctx context.Context, input *CreateClubInput) (*CreateClubOutput, error) {
	if input == nil || input.Name == "" {
		return nil, ErrEmptyClubName
	}

	if s.state.ActiveServerID == "" {
		return nil, ErrNoActiveServer
	}

	created, err := s.clubGateway.CreateClub(ctx, &clubGateway.CreateClubInput{
		ClubID:         s.uuidGenerator.NewUUID(),
		Name:           input.Name,
		ServerID:       s.state.ActiveServerID,
		DiscordChannel: input.DiscordChannel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create club: %w", err)
	}

	refreshed, err := s.RefreshServers(ctx, &RefreshServersInput{PreserveSelection: true})
	if err != nil {
		s.logger.Warn("club created but server list refresh failed", zap.Error(err))
		return &CreateClubOutput{Club: created}, &PartialWriteError{
			Completed: StepClubCreate,
			Failed:    StepServerRefresh,
			Cause:     err,
		}
	}

	return &CreateClubOutput{
		Club:    created,
		Servers: refreshed.Servers,
	}, nil
}

// DeleteClub deletes a club, clears the club selection if it pointed at the
// deleted club, and refreshes the server list with the server selection
// preserved. A failed delete applies no local mutation at all.
func (s *service) DeleteClub(ctx context.Context, input *DeleteClubInput) (*DeleteClubOutput, error) {
	if input == nil || input.ClubID == "" {
		return nil, ErrEmptyClubID
	}

	if s.state.ActiveServerID == "" {
		return nil, ErrNoActiveServer
	}

	err := s.clubGateway.DeleteClub(ctx, &clubGateway.DeleteClubInput{
		ClubID:   input.ClubID,
		ServerID: s.state.ActiveServerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete club: %w", err)
	}

	// Clear before the refresh so a stale selected-club pane never renders
	cleared := false
	if s.state.ActiveClub != nil && s.state.ActiveClub.ID == input.ClubID {
		s.state.ActiveClub = nil
		cleared = true
	}

	refreshed, err := s.RefreshServers(ctx, &RefreshServersInput{PreserveSelection: true})
	if err != nil {
		s.logger.Warn("club deleted but server list refresh failed", zap.Error(err))
		return &DeleteClubOutput{ClubCleared: cleared}, &PartialWriteError{
			Completed: StepClubDelete,
			Failed:    StepServerRefresh,
			Cause:     err,
		}
	}

	return &DeleteClubOutput{
		ClubCleared:    cleared,
		ActiveServerID: refreshed.ActiveServerID,
	}, nil
}

// ActiveSelection reports the current selection without touching any gateway
func (s *service) ActiveSelection() *Selection {
	sel := &Selection{
		ServerID: s.state.ActiveServerID,
	}
	if s.state.ActiveClub != nil {
		sel.ClubID = s.state.ActiveClub.ID
	}
	return sel
}

// refreshActiveClub re-fetches the active club from its gateway and replaces
// the local state with server truth
func (s *service) refreshActiveClub(ctx context.Context, clubID, serverID string) (*models.Club, error) {
	detail, err := s.clubGateway.GetClub(ctx, &clubGateway.GetClubInput{
		ClubID:   clubID,
		ServerID: serverID,
	})
	if err != nil {
		return nil, err
	}

	s.state.ActiveClub = detail
	return detail, nil
}

// findServer returns the server with the given ID, or nil
func findServer(servers []*models.Server, serverID string) *models.Server {
	for _, srv := range servers {
		if srv != nil && srv.ID == serverID {
			return srv
		}
	}
	return nil
}
