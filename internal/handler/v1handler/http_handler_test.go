package v1handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nextgenscores/ngsapi/pkg/model/v1model"
	"github.com/nextgenscores/ngsapi/pkg/view/v1view"
)

func intPtr(i int) *int { return &i }

func TestGetGames(t *testing.T) {
	st := &fakeStore{games: []v1model.Game{
		{ID: 1, Season: 2025, Week: 1, HomeTeam: "Alabama", AwayTeam: "Auburn"},
		{ID: 2, Season: 2025, Week: 2, HomeTeam: "Georgia", AwayTeam: "Florida"},
		{ID: 3, Season: 2024, Week: 1, HomeTeam: "LSU", AwayTeam: "Ole Miss"},
	}}
	h := newTestHandler(st, nil, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/api/games?year=2025&week=2", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var games []v1view.Game
	if err := json.NewDecoder(w.Body).Decode(&games); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(games) != 1 || games[0].HomeTeam != "Georgia" {
		t.Errorf("expected only 2025 week 2, got %+v", games)
	}
}

func TestGetGamesEmptyIsAList(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/api/games", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("expected empty JSON array, got %q", got)
	}
}

func TestRefreshGamesRequiresYear(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("POST", "/api/games/refresh", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without year, got %d", w.Code)
	}
}

func TestRefreshGamesIsIdempotent(t *testing.T) {
	fetched := []v1model.Game{
		{ID: 1, Season: 2025, Week: 1, HomeTeam: "Alabama", AwayTeam: "Auburn"},
		{ID: 2, Season: 2025, Week: 1, HomeTeam: "Georgia", AwayTeam: "Florida"},
	}
	st := &fakeStore{}
	fetcher := &fakeFetcher{games: fetched}
	h := newTestHandler(st, fetcher, nil)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("POST", "/api/games/refresh?year=2025", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("run %d: expected 200, got %d: %s", i, w.Code, w.Body.String())
		}
	}

	if len(st.games) != 2 {
		t.Errorf("re-running the refresh must not duplicate rows, got %d", len(st.games))
	}
	if fetcher.calls != 2 {
		t.Errorf("expected 2 upstream fetches, got %d", fetcher.calls)
	}
}

func TestRefreshGamesUpstreamFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: http.ErrHandlerTimeout}
	h := newTestHandler(nil, fetcher, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("POST", "/api/games/refresh?year=2025", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "timeout") {
		t.Errorf("upstream detail must not leak to clients: %s", w.Body.String())
	}
}

func TestLeaderboard(t *testing.T) {
	st := &fakeStore{
		users: []v1model.User{
			{ID: "u1", Name: "Bryan", Email: "bryan@example.com"},
			{ID: "u2", Email: "anon@example.com"},
		},
		games: []v1model.Game{
			{ID: 1, Season: 2025, Week: 1, HomePoints: intPtr(24), AwayPoints: intPtr(20)},
			{ID: 2, Season: 2025, Week: 1}, // not final
		},
		picks: []v1model.Pick{
			{UserID: "u1", GameID: 1, Side: "home", Spread: -3},
			{UserID: "u1", GameID: 2, Side: "home", Spread: -3},
			{UserID: "u2", GameID: 1, Side: "away", Spread: -3},
		},
	}
	h := newTestHandler(st, nil, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/api/leaderboard", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var rows []v1view.LeaderboardRow
	if err := json.NewDecoder(w.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "Bryan" || rows[0].Correct != 1 || rows[0].Total != 1 || rows[0].Percentage != 1.0 {
		t.Errorf("unexpected top row: %+v", rows[0])
	}
	if rows[1].Name != "anon@example.com" || rows[1].Percentage != 0 {
		t.Errorf("expected email fallback for second row: %+v", rows[1])
	}
}

func TestSubscribe(t *testing.T) {
	st := &fakeStore{}
	h := newTestHandler(st, nil, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, jsonRequest(t, "POST", "/api/subscribe", map[string]string{"email": "fan@example.com"}))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Same email again.
	w = httptest.NewRecorder()
	h.ServeHTTP(w, jsonRequest(t, "POST", "/api/subscribe", map[string]string{"email": "fan@example.com"}))
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 on duplicate subscription, got %d", w.Code)
	}

	// Missing email.
	w = httptest.NewRecorder()
	h.ServeHTTP(w, jsonRequest(t, "POST", "/api/subscribe", map[string]string{}))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without email, got %d", w.Code)
	}

	if len(st.subs) != 1 {
		t.Errorf("expected exactly 1 subscriber, got %d", len(st.subs))
	}
}

func TestScheduleDigest(t *testing.T) {
	games := []v1model.Game{
		{ID: 1, Week: 1, HomeTeam: "Alabama", AwayTeam: "Georgia", HomeConference: "SEC"},
	}

	t.Run("sends to all subscribers", func(t *testing.T) {
		st := &fakeStore{
			games: games,
			subs: []v1model.Subscriber{
				{ID: "s1", Email: "a@example.com"},
				{ID: "s2", Email: "b@example.com"},
			},
		}
		sender := &fakeSender{}
		h := newTestHandler(st, nil, sender)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("POST", "/api/email/schedule-digest", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if len(sender.sent) != 1 || len(sender.sent[0].to) != 2 {
			t.Fatalf("expected one send to 2 recipients, got %+v", sender.sent)
		}
		if !strings.Contains(sender.sent[0].body, "Alabama") {
			t.Errorf("digest body missing schedule: %s", sender.sent[0].body)
		}
	})

	t.Run("no games", func(t *testing.T) {
		h := newTestHandler(&fakeStore{}, nil, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("POST", "/api/email/schedule-digest", nil))
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404 with no games, got %d", w.Code)
		}
	})

	t.Run("no subscribers", func(t *testing.T) {
		sender := &fakeSender{}
		h := newTestHandler(&fakeStore{games: games}, nil, sender)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("POST", "/api/email/schedule-digest", nil))
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		if len(sender.sent) != 0 {
			t.Errorf("nothing should be sent without subscribers: %+v", sender.sent)
		}
	})
}
