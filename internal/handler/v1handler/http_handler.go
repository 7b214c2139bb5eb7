package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/nextgenscores/ngsapi/internal/config"
	"github.com/nextgenscores/ngsapi/internal/grader"
	"github.com/nextgenscores/ngsapi/internal/mailer"
	"github.com/nextgenscores/ngsapi/internal/store"
	"github.com/nextgenscores/ngsapi/pkg/model/v1model"
	"github.com/nextgenscores/ngsapi/pkg/request/v1request"
	"github.com/nextgenscores/ngsapi/pkg/view/v1view"
)

func New(cfg *config.Config, st Store, fetcher GameFetcher, sender Sender) *HttpHandler {
	h := &HttpHandler{
		config:  cfg,
		store:   st,
		fetcher: fetcher,
		sender:  sender,
		auth:    NewAuthMiddleware(cfg),
	}
	h.init()
	return h
}

type HttpHandler struct {
	config  *config.Config
	r       *mux.Router
	store   Store
	fetcher GameFetcher
	sender  Sender
	auth    *AuthMiddleware
}

func (h *HttpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.r.ServeHTTP(w, r)
}

func (h *HttpHandler) init() {
	h.r = mux.NewRouter()
	authed := h.r.NewRoute().Subrouter()

	h.r.HandleFunc("/", h.healthHandler).Methods("GET")
	h.r.HandleFunc("/api/games", h.getGamesHandler).Methods("GET")
	h.r.HandleFunc("/api/games/refresh", h.refreshGamesHandler).Methods("POST")
	h.r.HandleFunc("/api/leaderboard", h.leaderboardHandler).Methods("GET")
	h.r.HandleFunc("/api/auth/signup", h.signupHandler).Methods("POST")
	h.r.HandleFunc("/api/auth/login", h.loginHandler).Methods("POST")
	h.r.HandleFunc("/api/auth/logout", h.logoutHandler).Methods("POST")
	h.r.HandleFunc("/api/subscribe", h.subscribeHandler).Methods("POST")
	h.r.HandleFunc("/api/email/schedule-digest", h.scheduleDigestHandler).Methods("POST")

	authed.HandleFunc("/api/auth/me", h.meHandler).Methods("GET")
	authed.HandleFunc("/api/picks", h.savePickHandler).Methods("POST")
	authed.HandleFunc("/api/picks/{userId}", h.getUserPicksHandler).Methods("GET")

	authed.Use(h.auth.Auth)
}

func (h *HttpHandler) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("NextGenScores API is live!"))
}

func (h *HttpHandler) getGamesHandler(w http.ResponseWriter, r *http.Request) {
	season := queryInt(r, "year")
	week := queryInt(r, "week")

	games, err := h.store.GetGames(r.Context(), season, week)
	if err != nil {
		serverError(w, "failed to get games", err)
		return
	}

	vGames := make([]v1view.Game, 0, len(games))
	for _, game := range games {
		vGames = append(vGames, gameView(game))
	}
	writeJSON(w, http.StatusOK, vGames)
}

// refreshGamesHandler clears the season and repopulates it from the upstream
// provider. Re-running on unchanged upstream data is a no-op row-wise: rows
// are upserted by their upstream id.
func (h *HttpHandler) refreshGamesHandler(w http.ResponseWriter, r *http.Request) {
	year := queryInt(r, "year")
	if year == 0 {
		writeError(w, http.StatusBadRequest, "year query parameter is required")
		return
	}

	games, err := h.fetcher.FetchSeason(r.Context(), year)
	if err != nil {
		serverError(w, "failed to fetch games from upstream", err)
		return
	}

	if err := h.store.ReplaceSeasonGames(r.Context(), year, games); err != nil {
		serverError(w, "failed to store games", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "games refreshed",
		"inserted": len(games),
	})
}

func (h *HttpHandler) leaderboardHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.GetUsers(r.Context())
	if err != nil {
		serverError(w, "failed to get users", err)
		return
	}
	picks, err := h.store.GetPicks(r.Context())
	if err != nil {
		serverError(w, "failed to get picks", err)
		return
	}
	games, err := h.store.GetGames(r.Context(), 0, 0)
	if err != nil {
		serverError(w, "failed to get games", err)
		return
	}

	gamesByID := make(map[int64]v1model.Game, len(games))
	for _, game := range games {
		gamesByID[game.ID] = game
	}

	rows := grader.Standings(users, picks, gamesByID)
	vRows := make([]v1view.LeaderboardRow, 0, len(rows))
	for _, row := range rows {
		vRows = append(vRows, v1view.LeaderboardRow{
			Name:       row.Name,
			Correct:    row.Correct,
			Total:      row.Total,
			Percentage: row.Percentage,
		})
	}
	writeJSON(w, http.StatusOK, vRows)
}

func (h *HttpHandler) subscribeHandler(w http.ResponseWriter, r *http.Request) {
	var payload v1request.Subscribe
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse request")
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sub := v1model.Subscriber{
		ID:        uuid.NewString(),
		Email:     payload.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.CreateSubscriber(r.Context(), sub); err != nil {
		if errors.Is(err, store.ErrDuplicateSubscriber) {
			writeError(w, http.StatusConflict, "email already subscribed")
			return
		}
		serverError(w, "failed to subscribe", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "subscribed"})
}

func (h *HttpHandler) scheduleDigestHandler(w http.ResponseWriter, r *http.Request) {
	conference := h.config.Smtp.DigestConference

	games, err := h.store.GetGamesByConference(r.Context(), conference)
	if err != nil {
		serverError(w, "failed to get games", err)
		return
	}
	if len(games) == 0 {
		writeError(w, http.StatusNotFound, "no games found for "+conference)
		return
	}

	subs, err := h.store.GetSubscribers(r.Context())
	if err != nil {
		serverError(w, "failed to get subscribers", err)
		return
	}
	if len(subs) == 0 {
		writeJSON(w, http.StatusOK, map[string]string{"status": "no subscribers"})
		return
	}

	to := make([]string, 0, len(subs))
	for _, sub := range subs {
		to = append(to, sub.Email)
	}

	html := mailer.BuildScheduleHTML(conference, games)
	if err := h.sender.Send(r.Context(), to, "Weekly "+conference+" Schedule", html); err != nil {
		serverError(w, "failed to send digest", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "digest sent",
		"recipients": len(to),
	})
}

func gameView(g v1model.Game) v1view.Game {
	startDate := ""
	if g.StartDate != nil {
		startDate = g.StartDate.Format(time.RFC3339)
	}
	return v1view.Game{
		ID:             g.ID,
		Season:         g.Season,
		Week:           g.Week,
		HomeTeam:       g.HomeTeam,
		AwayTeam:       g.AwayTeam,
		HomeConference: g.HomeConference,
		AwayConference: g.AwayConference,
		HomePoints:     g.HomePoints,
		AwayPoints:     g.AwayPoints,
		Spread:         g.Spread,
		OverUnder:      g.OverUnder,
		StartDate:      startDate,
		Venue:          g.Venue,
	}
}

func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}
