package v1view

// User is the safe shape returned to clients. The password hash never
// appears here.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	FavoriteTeam string `json:"favoriteTeam,omitempty"`
}
