package cfbd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nextgenscores/ngsapi/pkg/model/v1model"
)

type GameFetcher struct {
	client *Client
}

func NewGameFetcher(client *Client) *GameFetcher {
	return &GameFetcher{client: client}
}

// FetchSeason pulls a season's games and betting lines and merges them into
// local game rows. A lines failure is logged and skipped so a refresh still
// lands the scores; rows without teams on both sides are dropped.
func (f *GameFetcher) FetchSeason(ctx context.Context, year int) ([]v1model.Game, error) {
	upstream, err := f.client.GetGames(ctx, year, 0)
	if err != nil {
		return nil, fmt.Errorf("get games: %w", err)
	}

	linesByGame := map[int64]Line{}
	gameLines, err := f.client.GetLines(ctx, year, 0)
	if err != nil {
		slog.Warn("fetching betting lines failed, refreshing games without them", "year", year, "error", err)
	} else {
		for _, gl := range gameLines {
			for _, line := range gl.Lines {
				if line.Spread != nil {
					linesByGame[gl.ID] = line
					break
				}
			}
		}
	}

	games := make([]v1model.Game, 0, len(upstream))
	for _, g := range upstream {
		if g.HomeTeam == "" || g.AwayTeam == "" {
			continue
		}
		games = append(games, f.convertToGame(g, linesByGame))
	}
	return games, nil
}

func (f *GameFetcher) convertToGame(g Game, linesByGame map[int64]Line) v1model.Game {
	game := v1model.Game{
		ID:             g.ID,
		Season:         g.Season,
		Week:           g.Week,
		HomeTeam:       g.HomeTeam,
		AwayTeam:       g.AwayTeam,
		HomeConference: g.HomeConference,
		AwayConference: g.AwayConference,
		HomePoints:     g.HomePoints,
		AwayPoints:     g.AwayPoints,
		Venue:          g.Venue,
	}

	// TBD kickoffs come through with no date; keep the game, leave the
	// date unset.
	if g.StartDate != "" {
		startDate, err := time.Parse(time.RFC3339, g.StartDate)
		if err != nil {
			slog.Warn("unparseable start date, keeping game without one", "game", g.ID, "startDate", g.StartDate)
		} else {
			utc := startDate.UTC()
			game.StartDate = &utc
		}
	}

	if line, ok := linesByGame[g.ID]; ok {
		game.Spread = line.Spread
		game.OverUnder = line.OverUnder
	}

	return game
}
