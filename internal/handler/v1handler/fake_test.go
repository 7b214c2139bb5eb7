package v1handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nextgenscores/ngsapi/internal/config"
	"github.com/nextgenscores/ngsapi/internal/store"
	"github.com/nextgenscores/ngsapi/pkg/model/v1model"
)

// fakeStore is an in-memory Store with the same uniqueness rules as the
// MySQL schema.
type fakeStore struct {
	games []v1model.Game
	users []v1model.User
	picks []v1model.Pick
	subs  []v1model.Subscriber

	err error // when set, every method fails with it
}

func (f *fakeStore) GetGame(ctx context.Context, id int64) (v1model.Game, error) {
	if f.err != nil {
		return v1model.Game{}, f.err
	}
	for _, g := range f.games {
		if g.ID == id {
			return g, nil
		}
	}
	return v1model.Game{}, store.ErrNotFound
}

func (f *fakeStore) GetGames(ctx context.Context, season, week int) ([]v1model.Game, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []v1model.Game
	for _, g := range f.games {
		if season != 0 && g.Season != season {
			continue
		}
		if week != 0 && g.Week != week {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeStore) GetGamesByConference(ctx context.Context, conference string) ([]v1model.Game, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []v1model.Game
	for _, g := range f.games {
		if g.HomeConference == conference || g.AwayConference == conference {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeStore) ReplaceSeasonGames(ctx context.Context, season int, games []v1model.Game) error {
	if f.err != nil {
		return f.err
	}
	var kept []v1model.Game
	for _, g := range f.games {
		if g.Season != season {
			kept = append(kept, g)
		}
	}
	f.games = append(kept, games...)
	return nil
}

func (f *fakeStore) CreateUser(ctx context.Context, user v1model.User) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return store.ErrDuplicateEmail
		}
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeStore) GetUserByEmail(ctx context.Context, email string) (v1model.User, error) {
	if f.err != nil {
		return v1model.User{}, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return v1model.User{}, store.ErrNotFound
}

func (f *fakeStore) GetUserByID(ctx context.Context, id string) (v1model.User, error) {
	if f.err != nil {
		return v1model.User{}, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return v1model.User{}, store.ErrNotFound
}

func (f *fakeStore) GetUsers(ctx context.Context) ([]v1model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

func (f *fakeStore) SavePick(ctx context.Context, pick v1model.Pick) error {
	if f.err != nil {
		return f.err
	}
	for _, p := range f.picks {
		if p.UserID == pick.UserID && p.GameID == pick.GameID {
			return store.ErrDuplicatePick
		}
	}
	f.picks = append(f.picks, pick)
	return nil
}

func (f *fakeStore) GetPicksByUser(ctx context.Context, userID string) ([]v1model.Pick, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []v1model.Pick
	for _, p := range f.picks {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) GetPicks(ctx context.Context) ([]v1model.Pick, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.picks, nil
}

func (f *fakeStore) CreateSubscriber(ctx context.Context, sub v1model.Subscriber) error {
	if f.err != nil {
		return f.err
	}
	for _, s := range f.subs {
		if s.Email == sub.Email {
			return store.ErrDuplicateSubscriber
		}
	}
	f.subs = append(f.subs, sub)
	return nil
}

func (f *fakeStore) GetSubscribers(ctx context.Context) ([]v1model.Subscriber, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.subs, nil
}

type fakeFetcher struct {
	games []v1model.Game
	err   error
	calls int
}

func (f *fakeFetcher) FetchSeason(ctx context.Context, year int) ([]v1model.Game, error) {
	f.calls++
	return f.games, f.err
}

type sentMail struct {
	to      []string
	subject string
	body    string
}

type fakeSender struct {
	sent []sentMail
	err  error
}

func (f *fakeSender) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Jwt:    config.JwtConfig{Secret: "test-secret", ExpiryHours: 1},
		Cookie: config.CookieConfig{Name: "ngs_token"},
		Smtp:   config.SmtpConfig{DigestConference: "SEC"},
	}
}

func newTestHandler(st *fakeStore, fetcher *fakeFetcher, sender *fakeSender) *HttpHandler {
	if st == nil {
		st = &fakeStore{}
	}
	if fetcher == nil {
		fetcher = &fakeFetcher{}
	}
	if sender == nil {
		sender = &fakeSender{}
	}
	return New(testConfig(), st, fetcher, sender)
}

// sessionCookie issues a signed session cookie for userID.
func sessionCookie(t *testing.T, h *HttpHandler, userID string) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	if err := h.issueSession(w, userID); err != nil {
		t.Fatalf("issueSession: %v", err)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	return cookies[0]
}
