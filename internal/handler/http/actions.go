package http

import (
	"encoding/json"
	"net/http"

	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/utils"
	"github.com/rta-cma/camtrack/models"
)

// listActions returns a page of audit records across all cameras. Accepts
// equality filters on camera_id and action_type, and the shared date-range
// parameters bound the action_date column.
func (h *Handler) listActions(w http.ResponseWriter, r *http.Request) {
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
	equalsParam(spec, q, "action_type", "action_type")
	if err = equalsInt64Param(spec, q, "camera_id", "camera_id"); err != nil {
		respondError(w, r, err)
		return
	}

	page, err := h.services.ActionService.ListActions(ctx, user, spec)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// listCameraActions returns the audit trail of one camera, newest first by
// default when the caller does not pick a sort.
func (h *Handler) listCameraActions(w http.ResponseWriter, r *http.Request) {
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

	// 404 for a camera that does not exist rather than an empty page.
	if _, err = h.services.CameraService.GetCamera(ctx, user, id); err != nil {
		respondError(w, r, err)
		return
	}

	spec, err := h.listSpec(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	spec.Equals["camera_id"] = id
	if spec.SortBy == "" {
		spec.SortBy = "action_date"
		spec.Order = "desc"
	}

	page, err := h.services.ActionService.ListActions(ctx, user, spec)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// recordCameraAction appends a manual audit entry to one camera's trail.
func (h *Handler) recordCameraAction(w http.ResponseWriter, r *http.Request) {
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

	var action models.CameraAction
	if err = json.NewDecoder(r.Body).Decode(&action); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	action.CameraID = id

	saved, err := h.services.ActionService.RecordAction(ctx, user, action)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}
