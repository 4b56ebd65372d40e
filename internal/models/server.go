package models

// Server represents a Discord server that hosts book clubs
type Server struct {
	// ID is the unique identifier for the server
	ID string `json:"id"`

	// Name is the display name of the server
	Name string `json:"name"`

	// Clubs contains the clubs hosted by this server, as returned by the
	// server list endpoint. Full club detail is fetched separately.
	Clubs []Club `json:"clubs"`
}
