package http

import (
	"encoding/json"
	"net/http"

	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/utils"
	"github.com/rta-cma/camtrack/models"
)

// listLocations returns a page of sites. Accepts an equality filter on
// location_type on top of the shared listing parameters.
func (h *Handler) listLocations(w http.ResponseWriter, r *http.Request) {
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
	equalsParam(spec, r.URL.Query(), "location_type", "location_type")

	page, err := h.services.LocationService.ListLocations(ctx, user, spec)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// accessibleLocations returns the ids of the sites the caller may act on,
// already narrowed by role and location assignment. An optional ids
// parameter (comma-separated) restricts the candidate set; without it every
// known site is considered.
func (h *Handler) accessibleLocations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := currentUser(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	candidates, err := idListParam(r.URL.Query(), "ids")
	if err != nil {
		respondError(w, r, err)
		return
	}

	ids, err := h.services.LocationService.AccessibleLocationIDs(ctx, user, candidates)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string][]int64{"location_ids": ids}, http.StatusOK)
}

func (h *Handler) createLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := currentUser(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var location models.Location
	if err = json.NewDecoder(r.Body).Decode(&location); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.LocationService.CreateLocation(ctx, user, location)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) getLocation(w http.ResponseWriter, r *http.Request) {
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

	location, err := h.services.LocationService.GetLocation(ctx, user, id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, location, http.StatusOK)
}

func (h *Handler) updateLocation(w http.ResponseWriter, r *http.Request) {
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

	var location models.Location
	if err = json.NewDecoder(r.Body).Decode(&location); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	location.ID = id

	saved, err := h.services.LocationService.UpdateLocation(ctx, user, location)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) deleteLocation(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.LocationService.DeleteLocation(ctx, user, id); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
