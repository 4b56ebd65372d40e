package club

type GetClubInput struct {
	ClubID   string
	ServerID string
}

type CreateClubInput struct {
	// ClubID is generated client-side before the write
	ClubID         string
	Name           string
	ServerID       string
	DiscordChannel string
}

// UpdateShameListInput carries a full replacement shame list. The club PUT
// patches only the fields it is sent, and the shame list is the one field
// this core ever patches.
type UpdateShameListInput struct {
	ClubID    string
	ServerID  string
	ShameList []int
}

type DeleteClubInput struct {
	ClubID   string
	ServerID string
}
