package v1model

import "time"

// The only two sides a pick can take.
const (
	SideHome = "home"
	SideAway = "away"
)

// Pick records a user's call on one game. Spread is a snapshot taken at
// submission time; grading uses it, not whatever the game's line moved to.
type Pick struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	GameID    int64     `db:"game_id"`
	Side      string    `db:"side"`
	Spread    float64   `db:"spread"`
	Week      int       `db:"week"`
	Season    int       `db:"season"`
	CreatedAt time.Time `db:"created_at"`
}
