package club

//go:generate mockgen -package=mocks -destination=mocks/mock_gateway.go github.com/ivangarzab/bookclub-admin/internal/gateways/club Gateway

import (
	"context"

	"github.com/ivangarzab/bookclub-admin/internal/models"
)

// Gateway defines the interface for the remote club endpoint
type Gateway interface {
	// GetClub retrieves the fully nested club record
	GetClub(ctx context.Context, input *GetClubInput) (*models.Club, error)

	// CreateClub creates a new club under a server
	CreateClub(ctx context.Context, input *CreateClubInput) (*models.Club, error)

	// UpdateShameList replaces the club's shame list with the supplied set
	UpdateShameList(ctx context.Context, input *UpdateShameListInput) (*models.Club, error)

	// DeleteClub removes a club
	DeleteClub(ctx context.Context, input *DeleteClubInput) error
}
