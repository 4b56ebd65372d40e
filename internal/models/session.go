package models

import (
	"time"
)

// Book describes what a session is reading
type Book struct {
	// Title is the book's title
	Title string `json:"title"`

	// Author is the book's author
	Author string `json:"author"`

	// Edition is the specific edition being read, if it matters
	Edition string `json:"edition,omitempty"`

	// Year is the publication year
	Year int `json:"year,omitempty"`

	// ISBN identifies the exact printing
	ISBN string `json:"isbn,omitempty"`
}

// Session represents a club's reading session
type Session struct {
	// ID is the unique identifier for the session
	ID string `json:"id"`

	// Book is what the session is reading
	Book Book `json:"book"`

	// DueDate is when the book should be finished
	DueDate time.Time `json:"due_date"`

	// Discussions contains the session's scheduled discussions, in
	// insertion order
	Discussions []Discussion `json:"discussions"`
}

// SessionRef is a lightweight reference to a completed session
type SessionRef struct {
	// ID is the unique identifier for the session
	ID string `json:"id"`

	// Book is the title of the book that was read
	Book string `json:"book"`
}
