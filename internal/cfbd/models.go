package cfbd

// Wire shapes for api.collegefootballdata.com.

type Game struct {
	ID             int64    `json:"id"`
	Season         int      `json:"season"`
	Week           int      `json:"week"`
	StartDate      string   `json:"startDate"`
	HomeTeam       string   `json:"homeTeam"`
	AwayTeam       string   `json:"awayTeam"`
	HomeConference string   `json:"homeConference"`
	AwayConference string   `json:"awayConference"`
	HomePoints     *int     `json:"homePoints"`
	AwayPoints     *int     `json:"awayPoints"`
	Venue          string   `json:"venue"`
}

type GameLines struct {
	ID    int64  `json:"id"`
	Lines []Line `json:"lines"`
}

type Line struct {
	Provider  string   `json:"provider"`
	Spread    *float64 `json:"spread"`
	OverUnder *float64 `json:"overUnder"`
}
