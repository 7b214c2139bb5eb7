package v1view

type Pick struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	GameID    int64   `json:"gameId"`
	Side      string  `json:"pick"`
	Spread    float64 `json:"spread"`
	Week      int     `json:"week"`
	Season    int     `json:"season"`
	CreatedAt string  `json:"createdAt"`
}
