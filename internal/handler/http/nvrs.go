package http

import (
	"encoding/json"
	"net/http"

	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/utils"
	"github.com/rta-cma/camtrack/models"
)

func (h *Handler) listNVRs(w http.ResponseWriter, r *http.Request) {
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
	equalsParam(spec, r.URL.Query(), "ip_address", "ip_address")

	page, err := h.services.NVRService.ListNVRs(ctx, user, spec)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) createNVR(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := currentUser(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var nvr models.NVRDevice
	if err = json.NewDecoder(r.Body).Decode(&nvr); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.NVRService.CreateNVR(ctx, user, nvr)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) getNVR(w http.ResponseWriter, r *http.Request) {
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

	nvr, err := h.services.NVRService.GetNVR(ctx, user, id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, nvr, http.StatusOK)
}

func (h *Handler) updateNVR(w http.ResponseWriter, r *http.Request) {
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

	var nvr models.NVRDevice
	if err = json.NewDecoder(r.Body).Decode(&nvr); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	nvr.ID = id

	saved, err := h.services.NVRService.UpdateNVR(ctx, user, nvr)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) deleteNVR(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.NVRService.DeleteNVR(ctx, user, id); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
