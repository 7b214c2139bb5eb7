// Package jobs runs the background refresh and digest schedules.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/nextgenscores/ngsapi/internal/config"
	"github.com/nextgenscores/ngsapi/internal/mailer"
	"github.com/nextgenscores/ngsapi/pkg/model/v1model"
)

type Store interface {
	ReplaceSeasonGames(ctx context.Context, season int, games []v1model.Game) error
	GetGamesByConference(ctx context.Context, conference string) ([]v1model.Game, error)
	GetSubscribers(ctx context.Context) ([]v1model.Subscriber, error)
}

type Fetcher interface {
	FetchSeason(ctx context.Context, year int) ([]v1model.Game, error)
}

type Sender interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
}

// Runner holds the task bodies the scheduler fires. Keeping them as plain
// methods lets tests drive them directly.
type Runner struct {
	store      Store
	fetcher    Fetcher
	sender     Sender
	season     int
	conference string
}

func NewRunner(cfg *config.Config, st Store, fetcher Fetcher, sender Sender) *Runner {
	season := cfg.Jobs.RefreshSeason
	if season == 0 {
		season = time.Now().Year()
	}
	return &Runner{
		store:      st,
		fetcher:    fetcher,
		sender:     sender,
		season:     season,
		conference: cfg.Smtp.DigestConference,
	}
}

// RefreshSeason pulls the configured season from upstream and replaces the
// stored rows.
func (r *Runner) RefreshSeason(ctx context.Context) error {
	games, err := r.fetcher.FetchSeason(ctx, r.season)
	if err != nil {
		return fmt.Errorf("fetch season %d: %w", r.season, err)
	}
	if err := r.store.ReplaceSeasonGames(ctx, r.season, games); err != nil {
		return fmt.Errorf("store season %d: %w", r.season, err)
	}
	slog.Info("scheduled refresh complete", "season", r.season, "games", len(games))
	return nil
}

// SendDigest mails the conference schedule to every subscriber. Having no
// games or no subscribers is not an error; the send is skipped.
func (r *Runner) SendDigest(ctx context.Context) error {
	games, err := r.store.GetGamesByConference(ctx, r.conference)
	if err != nil {
		return fmt.Errorf("get games: %w", err)
	}
	if len(games) == 0 {
		slog.Info("scheduled digest: no games to send", "conference", r.conference)
		return nil
	}

	subs, err := r.store.GetSubscribers(ctx)
	if err != nil {
		return fmt.Errorf("get subscribers: %w", err)
	}
	if len(subs) == 0 {
		slog.Info("scheduled digest: no subscribers")
		return nil
	}

	to := make([]string, 0, len(subs))
	for _, sub := range subs {
		to = append(to, sub.Email)
	}

	html := mailer.BuildScheduleHTML(r.conference, games)
	if err := r.sender.Send(ctx, to, "Weekly "+r.conference+" Schedule", html); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	slog.Info("scheduled digest sent", "recipients", len(to))
	return nil
}

// Start schedules the periodic season refresh and the subscriber digest.
// The returned scheduler should be shut down on exit.
func Start(cfg *config.Config, st Store, fetcher Fetcher, sender Sender) (gocron.Scheduler, error) {
	refreshEvery, err := time.ParseDuration(cfg.Jobs.RefreshEvery)
	if err != nil {
		return nil, err
	}
	digestEvery, err := time.ParseDuration(cfg.Jobs.DigestEvery)
	if err != nil {
		return nil, err
	}

	runner := NewRunner(cfg, st, fetcher, sender)

	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(refreshEvery),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			if err := runner.RefreshSeason(ctx); err != nil {
				slog.Error("scheduled refresh failed", "error", err)
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(digestEvery),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			if err := runner.SendDigest(ctx); err != nil {
				slog.Error("scheduled digest failed", "error", err)
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}
