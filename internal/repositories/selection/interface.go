package selection

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/ivangarzab/bookclub-admin/internal/repositories/selection Repository

import (
	"context"
)

// Repository defines the interface for persisting the admin's active
// selection between invocations. Entity state lives behind the remote
// gateways; this is the one piece of client-owned state worth keeping.
type Repository interface {
	// SaveSelection persists a selection record
	SaveSelection(ctx context.Context, input *SaveSelectionInput) error

	// GetSelection retrieves the stored selection record
	GetSelection(ctx context.Context, input *GetSelectionInput) (*Record, error)

	// ClearSelection removes the stored selection record
	ClearSelection(ctx context.Context, input *ClearSelectionInput) error
}
