package v1request

import "errors"

type Subscribe struct {
	Email string `json:"email"`
}

func (s Subscribe) Validate() error {
	if s.Email == "" {
		return errors.New("email is required")
	}
	return nil
}
