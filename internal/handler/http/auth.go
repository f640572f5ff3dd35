package http

import (
	"encoding/json"
	"net/http"

	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/utils"
	"github.com/rta-cma/camtrack/models"
)

type loginRequest struct {
	// Login accepts either the username or the email address.
	Login    string `json:"login"`
	Password string `json:"password"`
}

// login authenticates a login/password pair and returns a bearer token plus
// the account it belongs to.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds loginRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, creds.Login, creds.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.ID).Str("username", user.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
		ExpiresIn:   int64(token.ExpiresAt.Time.Sub(token.IssuedAt.Time).Seconds()),
		User:        user,
	}, http.StatusOK)
}

// me returns the account behind the presented token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
