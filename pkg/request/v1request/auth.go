package v1request

import "errors"

type Signup struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	FavoriteTeam string `json:"favoriteTeam"`
}

func (s Signup) Validate() error {
	if s.Name == "" || s.Email == "" || s.Password == "" {
		return errors.New("name, email and password are required")
	}
	return nil
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (l Login) Validate() error {
	if l.Email == "" || l.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}
