package session

//go:generate mockgen -package=mocks -destination=mocks/mock_gateway.go github.com/ivangarzab/bookclub-admin/internal/gateways/session Gateway

import (
	"context"

	"github.com/ivangarzab/bookclub-admin/internal/models"
)

// Gateway defines the interface for the remote session endpoint. Discussions
// have no endpoint of their own; they change only through a whole-array
// session write.
type Gateway interface {
	// CreateSession starts a new session for a club
	CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error)

	// UpdateSession updates a session, replacing any supplied fields whole
	UpdateSession(ctx context.Context, input *UpdateSessionInput) (*models.Session, error)
}
