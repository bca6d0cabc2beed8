package models

// Friend is a locally added peer shown on the leaderboard.
//
// Friends are not linked to any remote identity: their stats are fabricated
// when they are added, for demo purposes.
type Friend struct {
	// ID is the unique identifier for the friend (UUID format).
	ID string `json:"id"`

	Username string `json:"username"`

	// TotalHours is the self-reported total study time.
	TotalHours int `json:"totalHours"`

	IsOnline bool `json:"isOnline"`
}

// LeaderboardEntry is one row of the ranking shown on the friends view.
type LeaderboardEntry struct {
	Name  string `json:"name"`
	Hours int    `json:"hours"`

	// IsMe marks the row built from the local profile.
	IsMe bool `json:"isMe"`

	// Rank starts at 1 for the entry with the most hours.
	Rank int `json:"rank"`
}
