package models

import (
	"time"
)

// Discussion represents a single meeting within a session. Discussions are
// owned by their session and have no gateway of their own: they only change
// as part of a whole-array session write. IDs are generated client-side
// before the first write.
type Discussion struct {
	// ID is the unique identifier for the discussion
	ID string `json:"id"`

	// Title is what the discussion covers
	Title string `json:"title"`

	// Date is when the discussion takes place
	Date time.Time `json:"date"`

	// Location is where the discussion happens, if known
	Location string `json:"location,omitempty"`
}
