package v1model

import "time"

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	FavoriteTeam string    `db:"favorite_team"`
	CreatedAt    time.Time `db:"created_at"`
}

// DisplayName falls back to the email address when no name was set.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
