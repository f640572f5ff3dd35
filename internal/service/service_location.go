package service

import (
	"context"
	"fmt"

	"github.com/rta-cma/camtrack/internal/authz"
	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/query"
	"github.com/rta-cma/camtrack/internal/store"
	"github.com/rta-cma/camtrack/models"
)

// locationService implements [LocationService]. A location is itself the
// scope unit of the access model, so mutations authorize against the
// location's own id.
type locationService struct {
	logger    *logger.Logger
	locations store.LocationRepository
	evaluator *authz.Evaluator
}

// NewLocationService constructs a [LocationService].
func NewLocationService(locations store.LocationRepository, evaluator *authz.Evaluator, logger *logger.Logger) LocationService {
	logger.Debug().Msg("creating location service")
	return &locationService{
		locations: locations,
		evaluator: evaluator,
		logger:    logger,
	}
}

// CreateLocation registers a new site. Creating a location is not tied to
// any existing one, so the evaluator rules on a location-less create, which
// admits administrators and unrestricted operators.
func (s *locationService) CreateLocation(ctx context.Context, principal models.User, location models.Location) (models.Location, error) {
	log := logger.FromContext(ctx)

	if location.LocationName == "" {
		return models.Location{}, fmt.Errorf("%w: location_name is required", ErrInvalidDataProvided)
	}
	if err := authorize(s.evaluator, principal, authz.ActionCreate, nil); err != nil {
		return models.Location{}, err
	}

	saved, err := s.locations.CreateLocation(ctx, location)
	if err != nil {
		log.Err(err).Str("func", "*locationService.CreateLocation").Msg("error creating location")
		return models.Location{}, fmt.Errorf("error creating location: %w", err)
	}

	return saved, nil
}

// GetLocation returns one site; every authenticated role may view.
func (s *locationService) GetLocation(ctx context.Context, principal models.User, id int64) (models.Location, error) {
	if err := authorize(s.evaluator, principal, authz.ActionView, nil); err != nil {
		return models.Location{}, err
	}
	return s.locations.GetLocationByID(ctx, id)
}

// ListLocations returns the page of sites matching spec.
func (s *locationService) ListLocations(ctx context.Context, principal models.User, spec query.Spec) (models.Page[models.Location], error) {
	if err := authorize(s.evaluator, principal, authz.ActionView, nil); err != nil {
		return models.Page[models.Location]{}, err
	}
	if err := spec.Validate(); err != nil {
		return models.Page[models.Location]{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	locations, total, err := s.locations.ListLocations(ctx, spec)
	if err != nil {
		return models.Page[models.Location]{}, fmt.Errorf("error listing locations: %w", err)
	}

	return models.NewPage(locations, total, spec.Skip, spec.Limit), nil
}

// UpdateLocation overwrites the site; the edit is authorized against the
// site's own id, confining assigned operators to their location.
func (s *locationService) UpdateLocation(ctx context.Context, principal models.User, location models.Location) (models.Location, error) {
	log := logger.FromContext(ctx)

	if location.LocationName == "" {
		return models.Location{}, fmt.Errorf("%w: location_name is required", ErrInvalidDataProvided)
	}

	existing, err := s.locations.GetLocationByID(ctx, location.ID)
	if err != nil {
		return models.Location{}, err
	}
	if err = authorize(s.evaluator, principal, authz.ActionEdit, &existing.ID); err != nil {
		return models.Location{}, err
	}

	saved, err := s.locations.UpdateLocation(ctx, location)
	if err != nil {
		log.Err(err).Str("func", "*locationService.UpdateLocation").Msg("error updating location")
		return models.Location{}, fmt.Errorf("error updating location: %w", err)
	}

	return saved, nil
}

// DeleteLocation removes the site; administrator-only per the evaluator.
// Cameras pointing at the site are detached by the schema, not deleted.
func (s *locationService) DeleteLocation(ctx context.Context, principal models.User, id int64) error {
	existing, err := s.locations.GetLocationByID(ctx, id)
	if err != nil {
		return err
	}
	if err = authorize(s.evaluator, principal, authz.ActionDelete, &existing.ID); err != nil {
		return err
	}
	return s.locations.DeleteLocation(ctx, id)
}

// AccessibleLocationIDs narrows a candidate id set to the sites visible to
// the principal. A nil candidates slice means "all known locations" and is
// resolved against the store first.
func (s *locationService) AccessibleLocationIDs(ctx context.Context, principal models.User, candidates []int64) ([]int64, error) {
	if candidates == nil {
		ids, err := s.locations.GetLocationIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("error listing location ids: %w", err)
		}
		candidates = ids
	}

	visible, err := s.evaluator.FilterLocations(authz.PrincipalOf(principal), candidates)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return visible, nil
}
