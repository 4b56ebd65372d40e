package models

// Member represents a reader who belongs to zero or more clubs
type Member struct {
	// ID is the unique identifier for the member, assigned by the backend
	ID int `json:"id"`

	// Name is the display name of the member
	Name string `json:"name"`

	// Points is the member's accumulated score
	Points int `json:"points"`

	// BooksRead is how many books the member has finished
	BooksRead int `json:"books_read"`

	// Clubs contains the IDs of the clubs the member belongs to
	Clubs []string `json:"clubs"`
}
