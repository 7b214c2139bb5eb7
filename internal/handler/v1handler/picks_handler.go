package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/nextgenscores/ngsapi/internal/store"
	"github.com/nextgenscores/ngsapi/pkg/model/v1model"
	"github.com/nextgenscores/ngsapi/pkg/request/v1request"
	"github.com/nextgenscores/ngsapi/pkg/view/v1view"
)

func (h *HttpHandler) savePickHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var payload v1request.Pick
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse request")
		return
	}

	pick, err := payload.ToModel(userID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.store.GetGame(r.Context(), pick.GameID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}
		serverError(w, "failed to look up game", err)
		return
	}

	if err := h.store.SavePick(r.Context(), pick); err != nil {
		if errors.Is(err, store.ErrDuplicatePick) {
			writeError(w, http.StatusBadRequest, "pick already submitted for this game")
			return
		}
		serverError(w, "failed to save pick", err)
		return
	}

	writeJSON(w, http.StatusCreated, pickView(pick))
}

func (h *HttpHandler) getUserPicksHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	picks, err := h.store.GetPicksByUser(r.Context(), userID)
	if err != nil {
		serverError(w, "failed to get picks", err)
		return
	}

	vPicks := make([]v1view.Pick, 0, len(picks))
	for _, pick := range picks {
		vPicks = append(vPicks, pickView(pick))
	}
	writeJSON(w, http.StatusOK, vPicks)
}

func pickView(p v1model.Pick) v1view.Pick {
	return v1view.Pick{
		ID:        p.ID,
		UserID:    p.UserID,
		GameID:    p.GameID,
		Side:      p.Side,
		Spread:    p.Spread,
		Week:      p.Week,
		Season:    p.Season,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
