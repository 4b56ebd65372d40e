package admin

import "fmt"

// AdminError is a custom error type for admin orchestration errors
type AdminError string

// Error implements the error interface
func (e AdminError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         AdminError = "config cannot be nil"
	ErrNilServerGateway  AdminError = "server gateway cannot be nil"
	ErrNilClubGateway    AdminError = "club gateway cannot be nil"
	ErrNilMemberGateway  AdminError = "member gateway cannot be nil"
	ErrNilSessionGateway AdminError = "session gateway cannot be nil"

	ErrNoActiveServer      AdminError = "no server is selected"
	ErrNoActiveClub        AdminError = "no club is selected"
	ErrNoActiveSession     AdminError = "selected club has no active session"
	ErrActiveSessionExists AdminError = "selected club already has an active session"
	ErrServerNotFound      AdminError = "server not found in the fetched list"
	ErrDiscussionNotFound  AdminError = "discussion not found in the active session"

	ErrEmptyServerID         AdminError = "server ID cannot be empty"
	ErrEmptyClubID           AdminError = "club ID cannot be empty"
	ErrEmptyDiscussionID     AdminError = "discussion ID cannot be empty"
	ErrEmptyClubName         AdminError = "club name cannot be empty"
	ErrEmptyMemberName       AdminError = "member name cannot be empty"
	ErrNegativePoints        AdminError = "points cannot be negative"
	ErrNegativeBooksRead     AdminError = "books read cannot be negative"
	ErrEmptyBookTitle        AdminError = "book title cannot be empty"
	ErrEmptyBookAuthor       AdminError = "book author cannot be empty"
	ErrPastDueDate           AdminError = "due date cannot be in the past"
	ErrEmptyDiscussionTitle  AdminError = "discussion title cannot be empty"
	ErrMissingDiscussionDate AdminError = "discussion date is required"
)

// Step names for PartialWriteError
const (
	StepMemberWrite    = "member write"
	StepShameListWrite = "shame list write"
	StepClubCreate     = "club create"
	StepClubDelete     = "club delete"
	StepSessionCreate  = "session create"
	StepSessionWrite   = "session write"
	StepClubRefresh    = "club refresh"
	StepServerRefresh  = "server list refresh"
)

// PartialWriteError reports that an orchestration chain failed after one or
// more of its writes had already persisted. There are no compensating
// transactions: what completed stays completed, and callers need to know
// which half that was. A nil output with a plain error means nothing was
// written; a non-nil output with a PartialWriteError names the surviving
// step.
type PartialWriteError struct {
	// Completed names the step (or steps) that persisted
	Completed string

	// Failed names the step that did not
	Failed string

	// Cause is the underlying failure
	Cause error
}

// Error implements the error interface
func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("%s succeeded but %s failed: %v", e.Completed, e.Failed, e.Cause)
}

// Unwrap exposes the underlying failure
func (e *PartialWriteError) Unwrap() error {
	return e.Cause
}
