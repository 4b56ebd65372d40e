package admin

import "context"

// Service defines the interface for book club administration. All operations
// issue their gateway calls sequentially and re-fetch authoritative state
// after every mutation instead of trusting a write's echoed response. The
// service is meant for a single logical thread of control; it is not safe
// for concurrent use.
type Service interface {
	// RefreshServers re-fetches the full server list and reconciles the
	// active selection against it
	RefreshServers(ctx context.Context, input *RefreshServersInput) (*RefreshServersOutput, error)

	// SelectServer makes a server the active one and clears any club
	// selection, since no club is valid across server boundaries
	SelectServer(ctx context.Context, input *SelectServerInput) (*SelectServerOutput, error)

	// SelectClub fetches a club's full nested detail and makes it active
	SelectClub(ctx context.Context, input *SelectClubInput) (*SelectClubOutput, error)

	// CreateClub creates a club under the active server
	CreateClub(ctx context.Context, input *CreateClubInput) (*CreateClubOutput, error)

	// DeleteClub deletes a club and reconciles the local selection
	DeleteClub(ctx context.Context, input *DeleteClubInput) (*DeleteClubOutput, error)

	// SaveMember writes a member's own fields and, when needed, the club's
	// shame list in a second independent write
	SaveMember(ctx context.Context, input *SaveMemberInput) (*SaveMemberOutput, error)

	// StartSession starts a new reading session for the active club
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// AddDiscussion appends a discussion to the active session
	AddDiscussion(ctx context.Context, input *AddDiscussionInput) (*AddDiscussionOutput, error)

	// UpdateDiscussion replaces a discussion in place within the active session
	UpdateDiscussion(ctx context.Context, input *UpdateDiscussionInput) (*UpdateDiscussionOutput, error)

	// DeleteDiscussion removes a discussion from the active session
	DeleteDiscussion(ctx context.Context, input *DeleteDiscussionInput) (*DeleteDiscussionOutput, error)

	// ActiveSelection reports the current selection without touching any gateway
	ActiveSelection() *Selection
}
