package session

import (
	"time"

	"github.com/ivangarzab/bookclub-admin/internal/models"
)

type CreateSessionInput struct {
	ClubID  string
	Book    models.Book
	DueDate time.Time
}

// UpdateSessionInput carries whole-value replacements; nil fields are left
// unchanged by the endpoint. Discussion deletion is expressed twice by
// contract: DiscussionIDsToDelete is the deletion signal the endpoint acts
// on, and Discussions is the authoritative post-state, already filtered by
// the caller so the two always agree.
type UpdateSessionInput struct {
	SessionID             string
	Book                  *models.Book
	DueDate               *time.Time
	Discussions           []models.Discussion
	DiscussionIDsToDelete []string
}
