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

// nvrService implements [NVRService]. NVR devices carry no location of their
// own, so mutations authorize as location-less create/edit/delete.
type nvrService struct {
	logger    *logger.Logger
	nvrs      store.NVRRepository
	evaluator *authz.Evaluator
}

// NewNVRService constructs an [NVRService].
func NewNVRService(nvrs store.NVRRepository, evaluator *authz.Evaluator, logger *logger.Logger) NVRService {
	logger.Debug().Msg("creating nvr service")
	return &nvrService{
		nvrs:      nvrs,
		evaluator: evaluator,
		logger:    logger,
	}
}

// CreateNVR registers a new recorder.
func (s *nvrService) CreateNVR(ctx context.Context, principal models.User, nvr models.NVRDevice) (models.NVRDevice, error) {
	log := logger.FromContext(ctx)

	if nvr.NVRName == "" {
		return models.NVRDevice{}, fmt.Errorf("%w: nvr_name is required", ErrInvalidDataProvided)
	}
	if err := authorize(s.evaluator, principal, authz.ActionCreate, nil); err != nil {
		return models.NVRDevice{}, err
	}

	saved, err := s.nvrs.CreateNVR(ctx, nvr)
	if err != nil {
		log.Err(err).Str("func", "*nvrService.CreateNVR").Msg("error creating nvr")
		return models.NVRDevice{}, fmt.Errorf("error creating nvr: %w", err)
	}

	return saved, nil
}

// GetNVR returns one recorder; every authenticated role may view.
func (s *nvrService) GetNVR(ctx context.Context, principal models.User, id int64) (models.NVRDevice, error) {
	if err := authorize(s.evaluator, principal, authz.ActionView, nil); err != nil {
		return models.NVRDevice{}, err
	}
	return s.nvrs.GetNVRByID(ctx, id)
}

// ListNVRs returns the page of recorders matching spec.
func (s *nvrService) ListNVRs(ctx context.Context, principal models.User, spec query.Spec) (models.Page[models.NVRDevice], error) {
	if err := authorize(s.evaluator, principal, authz.ActionView, nil); err != nil {
		return models.Page[models.NVRDevice]{}, err
	}
	if err := spec.Validate(); err != nil {
		return models.Page[models.NVRDevice]{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	nvrs, total, err := s.nvrs.ListNVRs(ctx, spec)
	if err != nil {
		return models.Page[models.NVRDevice]{}, fmt.Errorf("error listing nvrs: %w", err)
	}

	return models.NewPage(nvrs, total, spec.Skip, spec.Limit), nil
}

// UpdateNVR overwrites the recorder.
func (s *nvrService) UpdateNVR(ctx context.Context, principal models.User, nvr models.NVRDevice) (models.NVRDevice, error) {
	log := logger.FromContext(ctx)

	if nvr.NVRName == "" {
		return models.NVRDevice{}, fmt.Errorf("%w: nvr_name is required", ErrInvalidDataProvided)
	}
	if err := authorize(s.evaluator, principal, authz.ActionEdit, nil); err != nil {
		return models.NVRDevice{}, err
	}

	saved, err := s.nvrs.UpdateNVR(ctx, nvr)
	if err != nil {
		log.Err(err).Str("func", "*nvrService.UpdateNVR").Msg("error updating nvr")
		return models.NVRDevice{}, fmt.Errorf("error updating nvr: %w", err)
	}

	return saved, nil
}

// DeleteNVR removes the recorder; administrator-only per the evaluator.
// Cameras recording to it are detached by the schema.
func (s *nvrService) DeleteNVR(ctx context.Context, principal models.User, id int64) error {
	if err := authorize(s.evaluator, principal, authz.ActionDelete, nil); err != nil {
		return err
	}
	return s.nvrs.DeleteNVR(ctx, id)
}
