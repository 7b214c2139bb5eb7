package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nextgenscores/ngsapi/internal/store"
	"github.com/nextgenscores/ngsapi/pkg/model/v1model"
	"github.com/nextgenscores/ngsapi/pkg/request/v1request"
	"github.com/nextgenscores/ngsapi/pkg/view/v1view"
)

func (h *HttpHandler) signupHandler(w http.ResponseWriter, r *http.Request) {
	var creds v1request.Signup
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse request")
		return
	}
	if err := creds.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		serverError(w, "failed to hash password", err)
		return
	}

	user := v1model.User{
		ID:           uuid.NewString(),
		Email:        creds.Email,
		PasswordHash: string(hash),
		Name:         creds.Name,
		FavoriteTeam: creds.FavoriteTeam,
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "email already in use")
			return
		}
		serverError(w, "failed to create user", err)
		return
	}

	if err := h.issueSession(w, user.ID); err != nil {
		serverError(w, "failed to issue session", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]v1view.User{"user": userView(user)})
}

func (h *HttpHandler) loginHandler(w http.ResponseWriter, r *http.Request) {
	var creds v1request.Login
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse request")
		return
	}
	if err := creds.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), creds.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		serverError(w, "failed to look up user", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := h.issueSession(w, user.ID); err != nil {
		serverError(w, "failed to issue session", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]v1view.User{"user": userView(user)})
}

func (h *HttpHandler) logoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.config.Cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.config.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *HttpHandler) meHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	user, err := h.store.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		serverError(w, "failed to look up user", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]v1view.User{"user": userView(user)})
}

// issueSession signs a JWT for the user and sets it as the session cookie.
func (h *HttpHandler) issueSession(w http.ResponseWriter, userID string) error {
	expiry := time.Duration(h.config.Jwt.ExpiryHours) * time.Hour
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
	})

	signed, err := token.SignedString([]byte(h.config.Jwt.Secret))
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.config.Cookie.Name,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(expiry.Seconds()),
		HttpOnly: true,
		Secure:   h.config.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func userView(u v1model.User) v1view.User {
	return v1view.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		FavoriteTeam: u.FavoriteTeam,
	}
}
