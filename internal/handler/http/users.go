package http

import (
	"encoding/json"
	"net/http"

	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/utils"
	"github.com/rta-cma/camtrack/models"
)

// createUserRequest pairs the public account fields with the one-time
// plaintext password; the password never appears in stored or returned
// representations.
type createUserRequest struct {
	models.User
	Password string `json:"password"`
}

type changePasswordRequest struct {
	Password string `json:"password"`
}

// listUsers returns a page of accounts. Accepts equality filters on role,
// is_active and assigned_location_id on top of the shared listing parameters.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := currentUser(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	spec, err := h.listSpec(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	q := r.URL.Query()
	equalsParam(spec, q, "role", "role")
	if err = equalsBoolParam(spec, q, "is_active", "is_active"); err != nil {
		respondError(w, r, err)
		return
	}
	if err = equalsInt64Param(spec, q, "assigned_location_id", "assigned_location_id"); err != nil {
		respondError(w, r, err)
		return
	}

	page, err := h.services.UserService.ListUsers(ctx, user, spec)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := currentUser(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req createUserRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.UserService.CreateUser(ctx, user, req.User, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := currentUser(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	account, err := h.services.UserService.GetUser(ctx, user, id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := currentUser(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var account models.User
	if err = json.NewDecoder(r.Body).Decode(&account); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	account.ID = id

	saved, err := h.services.UserService.UpdateUser(ctx, user, account)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) updateUserPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := currentUser(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req changePasswordRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err = h.services.UserService.UpdateUserPassword(ctx, user, id, req.Password); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := currentUser(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err = h.services.UserService.DeleteUser(ctx, user, id); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
