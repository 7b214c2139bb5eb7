package v1model

import "time"

// Game is a scheduled or completed matchup. StartDate is nil for games the
// upstream provider has not dated yet (TBD kickoffs).
type Game struct {
	ID             int64      `db:"id"`
	Season         int        `db:"season"`
	Week           int        `db:"week"`
	HomeTeam       string     `db:"home_team"`
	AwayTeam       string     `db:"away_team"`
	HomeConference string     `db:"home_conference"`
	AwayConference string     `db:"away_conference"`
	HomePoints     *int       `db:"home_points"`
	AwayPoints     *int       `db:"away_points"`
	Spread         *float64   `db:"spread"`
	OverUnder      *float64   `db:"over_under"`
	StartDate      *time.Time `db:"start_date"`
	Venue          string     `db:"venue"`
}

// Final reports whether both final scores have been recorded.
func (g Game) Final() bool {
	return g.HomePoints != nil && g.AwayPoints != nil
}
