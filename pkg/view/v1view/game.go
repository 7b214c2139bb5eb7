package v1view

type Game struct {
	ID             int64    `json:"id"`
	Season         int      `json:"season"`
	Week           int      `json:"week"`
	HomeTeam       string   `json:"homeTeam"`
	AwayTeam       string   `json:"awayTeam"`
	HomeConference string   `json:"homeConference,omitempty"`
	AwayConference string   `json:"awayConference,omitempty"`
	HomePoints     *int     `json:"homePoints"`
	AwayPoints     *int     `json:"awayPoints"`
	Spread         *float64 `json:"spread"`
	OverUnder      *float64 `json:"overUnder"`
	StartDate      string   `json:"startDate"`
	Venue          string   `json:"venue,omitempty"`
}
