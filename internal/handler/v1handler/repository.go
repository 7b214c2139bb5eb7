package v1handler

import (
	"context"

	"github.com/nextgenscores/ngsapi/pkg/model/v1model"
)

// Repository interfaces the handlers depend on. store.Mysql satisfies all of
// them; tests substitute in-memory fakes.

type GameRepository interface {
	GetGame(ctx context.Context, id int64) (v1model.Game, error)
	GetGames(ctx context.Context, season, week int) ([]v1model.Game, error)
	GetGamesByConference(ctx context.Context, conference string) ([]v1model.Game, error)
	ReplaceSeasonGames(ctx context.Context, season int, games []v1model.Game) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user v1model.User) error
	GetUserByEmail(ctx context.Context, email string) (v1model.User, error)
	GetUserByID(ctx context.Context, id string) (v1model.User, error)
	GetUsers(ctx context.Context) ([]v1model.User, error)
}

type PickRepository interface {
	SavePick(ctx context.Context, pick v1model.Pick) error
	GetPicksByUser(ctx context.Context, userID string) ([]v1model.Pick, error)
	GetPicks(ctx context.Context) ([]v1model.Pick, error)
}

type SubscriberRepository interface {
	CreateSubscriber(ctx context.Context, sub v1model.Subscriber) error
	GetSubscribers(ctx context.Context) ([]v1model.Subscriber, error)
}

type Store interface {
	GameRepository
	UserRepository
	PickRepository
	SubscriberRepository
}

// GameFetcher pulls a season's games from the upstream provider.
type GameFetcher interface {
	FetchSeason(ctx context.Context, year int) ([]v1model.Game, error)
}

// Sender delivers email to a list of recipients.
type Sender interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
}
