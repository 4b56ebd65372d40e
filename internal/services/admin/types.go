package admin

import (
	"time"

	"go.uber.org/zap"

	"github.com/ivangarzab/bookclub-admin/internal/common/clock"
	"github.com/ivangarzab/bookclub-admin/internal/common/uuid"
	clubGateway "github.com/ivangarzab/bookclub-admin/internal/gateways/club"
	memberGateway "github.com/ivangarzab/bookclub-admin/internal/gateways/member"
	serverGateway "github.com/ivangarzab/bookclub-admin/internal/gateways/server"
	sessionGateway "github.com/ivangarzab/bookclub-admin/internal/gateways/session"
	"github.com/ivangarzab/bookclub-admin/internal/models"
)

// Config holds configuration for the admin service
type Config struct {
	// Gateway dependencies
	ServerGateway  serverGateway.Gateway
	ClubGateway    clubGateway.Gateway
	MemberGateway  memberGateway.Gateway
	SessionGateway sessionGateway.Gateway

	// Helper dependencies; real implementations are used when nil
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger defaults to a no-op logger when nil
	Logger *zap.Logger
}

// selectionState is the explicit, owned UI state: which server and club are
// active, and the last fetched server list. It only changes through the
// service's operations.
type selectionState struct {
	// Servers is the server list as of the last refresh
	Servers []*models.Server

	// ActiveServerID is the selected server, empty when none
	ActiveServerID string

	// ActiveClub is the selected club's full nested detail, nil when none
	ActiveClub *models.Club
}

// Selection reports the current selection identifiers
type Selection struct {
	// ServerID is the active server, empty when none
	ServerID string

	// ClubID is the active club, empty when none
	ClubID string
}

// RefreshServersInput contains parameters for refreshing the server list
type RefreshServersInput struct {
	// PreserveSelection keeps the previously active server when it is
	// still present in the fresh list
	PreserveSelection bool
}

// RefreshServersOutput contains the result of refreshing the server list
type RefreshServersOutput struct {
	// Servers is the freshly fetched list
	Servers []*models.Server

	// ActiveServerID is the server selected after reconciliation, empty
	// when the list came back empty
	ActiveServerID string

	// SelectionPreserved indicates the prior selection survived the refresh
	SelectionPreserved bool
}

// SelectServerInput contains parameters for selecting a server
type SelectServerInput struct {
	ServerID string
}

// SelectServerOutput contains the result of selecting a server
type SelectServerOutput struct {
	// Server is the newly active server
	Server *models.Server
}

// SelectClubInput contains parameters for selecting a club
type SelectClubInput struct {
	ClubID string
}

// SelectClubOutput contains the result of selecting a club
type SelectClubOutput struct {
	// Club is the fully nested club detail
	Club *models.Club
}

// CreateClubInput contains parameters for creating a club
type CreateClubInput struct {
	Name           string
	DiscordChannel string
}

// CreateClubOutput contains the result of creating a club
type CreateClubOutput struct {
	// Club is the created club as returned by the gateway
	Club *models.Club

	// Servers is the refreshed server list
	Servers []*models.Server
}

// DeleteClubInput contains parameters for deleting a club
type DeleteClubInput struct {
	ClubID string
}

// DeleteClubOutput contains the result of deleting a club
type DeleteClubOutput struct {
	// ClubCleared indicates the deleted club was the active selection and
	// got cleared
	ClubCleared bool

	// ActiveServerID is the server selected after the follow-up refresh
	ActiveServerID string
}

// SaveMemberInput contains parameters for saving a member. A zero MemberID
// creates a new member; anything else updates an existing one.
type SaveMemberInput struct {
	MemberID  int
	Name      string
	Points    int
	BooksRead int

	// OnShameList is the desired shame-list membership in the active club
	OnShameList bool
}

// SaveMemberOutput contains the result of saving a member. On a partial
// failure the output is still returned alongside the error and carries
// whatever actually persisted.
type SaveMemberOutput struct {
	// Member is the member as persisted by the member gateway
	Member *models.Member

	// Club is the re-fetched club detail, nil when the refresh itself failed
	Club *models.Club

	// ShameListUpdated indicates the second write was issued and succeeded
	ShameListUpdated bool
}

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	Book    models.Book
	DueDate time.Time
}

// StartSessionOutput contains the result of starting a session
type StartSessionOutput struct {
	// Session is the created session as returned by the gateway
	Session *models.Session

	// Club is the re-fetched club detail
	Club *models.Club
}

// AddDiscussionInput contains parameters for adding a discussion
type AddDiscussionInput struct {
	Title    string
	Date     time.Time
	Location string
}

// AddDiscussionOutput contains the result of adding a discussion
type AddDiscussionOutput struct {
	// Discussion is the new discussion with its client-generated ID
	Discussion *models.Discussion

	// Club is the re-fetched club detail
	Club *models.Club

	// Discussions is the refreshed collection sorted by date ascending
	// for display; storage order is insertion order
	Discussions []models.Discussion
}

// UpdateDiscussionInput contains parameters for editing a discussion
type UpdateDiscussionInput struct {
	DiscussionID string
	Title        string
	Date         time.Time
	Location     string
}

// UpdateDiscussionOutput contains the result of editing a discussion
type UpdateDiscussionOutput struct {
	// Club is the re-fetched club detail
	Club *models.Club

	// Discussions is the refreshed collection sorted by date ascending
	Discussions []models.Discussion
}

// DeleteDiscussionInput contains parameters for deleting a discussion
type DeleteDiscussionInput struct {
	DiscussionID string
}

// DeleteDiscussionOutput contains the result of deleting a discussion
type DeleteDiscussionOutput struct {
	// Club is the re-fetched club detail
	Club *models.Club

	// Discussions is the refreshed collection sorted by date ascending
	Discussions []models.Discussion
}
