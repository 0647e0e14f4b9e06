package dank

import "github.com/diamondburned/arikawa/v3/discord"

// MemberStats is the full aggregate record for one member in one guild.
// Records are created lazily, read whole and written whole; this struct is
// the jsonb shape stored per (guild, member).
type MemberStats struct {
	// total currency shared by / received by this member
	Shared   int64 `json:"shared"`
	Received int64 `json:"received"`

	// per-item quantities given away / received
	Gifted        map[string]int64 `json:"gifted"`
	ReceivedItems map[string]int64 `json:"received_items"`

	// per-target event counts
	SharedUsers map[discord.UserID]int64 `json:"shared_users"`
	GiftedUsers map[discord.UserID]int64 `json:"gifted_users"`

	// append-only, chronological event descriptions
	Logs []string `json:"logs"`

	// last free-text name resolved to this member, overwritten on each
	// successful resolution
	StoredName string `json:"stored_name,omitempty"`
}

// NewMemberStats returns an empty record with all maps initialized.
func NewMemberStats() MemberStats {
	return MemberStats{
		Gifted:        map[string]int64{},
		ReceivedItems: map[string]int64{},
		SharedUsers:   map[discord.UserID]int64{},
		GiftedUsers:   map[discord.UserID]int64{},
	}
}

func (s *MemberStats) ensureMaps() {
	if s.Gifted == nil {
		s.Gifted = map[string]int64{}
	}
	if s.ReceivedItems == nil {
		s.ReceivedItems = map[string]int64{}
	}
	if s.SharedUsers == nil {
		s.SharedUsers = map[discord.UserID]int64{}
	}
	if s.GiftedUsers == nil {
		s.GiftedUsers = map[discord.UserID]int64{}
	}
}
