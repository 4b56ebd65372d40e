package member

//go:generate mockgen -package=mocks -destination=mocks/mock_gateway.go github.com/ivangarzab/bookclub-admin/internal/gateways/member Gateway

import (
	"context"

	"github.com/ivangarzab/bookclub-admin/internal/models"
)

// Gateway defines the interface for the remote member endpoint. Member
// writes never carry shame-list data; that flag lives on the club.
type Gateway interface {
	// CreateMember creates a new member; the backend assigns the ID
	CreateMember(ctx context.Context, input *CreateMemberInput) (*models.Member, error)

	// UpdateMember updates an existing member's own fields
	UpdateMember(ctx context.Context, input *UpdateMemberInput) (*models.Member, error)
}
