package http

import (
	"encoding/json"
	"net/http"

	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/utils"
	"github.com/rta-cma/camtrack/models"
)

// listCameras returns a page of cameras. On top of the shared listing
// parameters it accepts equality filters on status, camera_status, brand,
// location_id, nvr_id and is_asset.
func (h *Handler) listCameras(w http.ResponseWriter, r *http.Request) {
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
	equalsParam(spec, q, "status", "status")
	equalsParam(spec, q, "camera_status", "camera_status")
	equalsParam(spec, q, "brand", "brand")
	if err = equalsInt64Param(spec, q, "location_id", "location_id"); err != nil {
		respondError(w, r, err)
		return
	}
	if err = equalsInt64Param(spec, q, "nvr_id", "nvr_id"); err != nil {
		respondError(w, r, err)
		return
	}
	if err = equalsBoolParam(spec, q, "is_asset", "is_asset"); err != nil {
		respondError(w, r, err)
		return
	}

	page, err := h.services.CameraService.ListCameras(ctx, user, spec)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) createCamera(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := currentUser(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var camera models.Camera
	if err = json.NewDecoder(r.Body).Decode(&camera); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.CameraService.CreateCamera(ctx, user, camera)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) getCamera(w http.ResponseWriter, r *http.Request) {
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

	camera, err := h.services.CameraService.GetCamera(ctx, user, id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, camera, http.StatusOK)
}

func (h *Handler) updateCamera(w http.ResponseWriter, r *http.Request) {
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

	var camera models.Camera
	if err = json.NewDecoder(r.Body).Decode(&camera); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	// The path, not the body, names the record being updated.
	camera.ID = id

	saved, err := h.services.CameraService.UpdateCamera(ctx, user, camera)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) deleteCamera(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.CameraService.DeleteCamera(ctx, user, id); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
