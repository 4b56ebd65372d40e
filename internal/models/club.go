package models

// Club represents a book club hosted by a server
type Club struct {
	// ID is the unique identifier for the club
	ID string `json:"id"`

	// Name is the display name of the club
	Name string `json:"name"`

	// DiscordChannel is the channel the club talks in, if any
	DiscordChannel string `json:"discord_channel,omitempty"`

	// ServerID is the ID of the server that hosts this club
	ServerID string `json:"server_id"`

	// Members contains the members currently associated with the club
	Members []Member `json:"members"`

	// ActiveSession is the club's current reading session, or nil
	ActiveSession *Session `json:"active_session"`

	// PastSessions references the club's completed sessions
	PastSessions []SessionRef `json:"past_sessions"`

	// ShameList contains the member IDs considered delinquent on reading
	// progress. It is a set: duplicates are forbidden, order is irrelevant.
	// The club is the master record for this flag, not the member.
	ShameList []int `json:"shame_list"`
}

// OnShameList reports whether the member is on the club's shame list.
func (c *Club) OnShameList(memberID int) bool {
	for _, id := range c.ShameList {
		if id == memberID {
			return true
		}
	}
	return false
}
