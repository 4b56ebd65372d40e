package server

//go:generate mockgen -package=mocks -destination=mocks/mock_gateway.go github.com/ivangarzab/bookclub-admin/internal/gateways/server Gateway

import (
	"context"
)

// Gateway defines the interface for the remote server endpoint. The server
// resource is read-only from this core's perspective.
type Gateway interface {
	// ListServers retrieves the full server list, clubs included
	ListServers(ctx context.Context, input *ListServersInput) (*ListServersOutput, error)
}
