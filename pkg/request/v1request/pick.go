package v1request

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nextgenscores/ngsapi/pkg/model/v1model"
)

type Pick struct {
	GameID int64   `json:"gameId"`
	Side   string  `json:"pick"`
	Spread float64 `json:"spread"`
	Week   int     `json:"week"`
	Season int     `json:"season"`
}

func (p Pick) Validate() error {
	if p.GameID == 0 {
		return errors.New("gameId is required")
	}
	if p.Side != v1model.SideHome && p.Side != v1model.SideAway {
		return errors.New(`pick must be "home" or "away"`)
	}
	return nil
}

func (p Pick) ToModel(userID string) (v1model.Pick, error) {
	if err := p.Validate(); err != nil {
		return v1model.Pick{}, err
	}
	return v1model.Pick{
		ID:        uuid.NewString(),
		UserID:    userID,
		GameID:    p.GameID,
		Side:      p.Side,
		Spread:    p.Spread,
		Week:      p.Week,
		Season:    p.Season,
		CreatedAt: time.Now().UTC(),
	}, nil
}
