package selection

import "time"

// Record is the selection state that survives between invocations. Only the
// identifiers are stored; the entities themselves are re-fetched from their
// gateways on restore so state always reflects server truth.
type Record struct {
	// ActiveServerID is the server that was selected
	ActiveServerID string `json:"active_server_id"`

	// ActiveClubID is the club that was selected, if any
	ActiveClubID string `json:"active_club_id,omitempty"`

	// UpdatedAt is when the selection was last saved
	UpdatedAt time.Time `json:"updated_at"`
}

type SaveSelectionInput struct {
	// Profile distinguishes selections of different admins sharing a store
	Profile string

	Record *Record
}

type GetSelectionInput struct {
	Profile string
}

type ClearSelectionInput struct {
	Profile string
}
