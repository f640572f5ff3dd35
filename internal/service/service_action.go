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

// actionService implements [ActionService]. Manual audit entries authorize
// as an edit of the camera they describe, so operators can only annotate
// cameras at their own site.
type actionService struct {
	logger    *logger.Logger
	actions   store.ActionRepository
	cameras   store.CameraRepository
	evaluator *authz.Evaluator
}

// NewActionService constructs an [ActionService].
func NewActionService(actions store.ActionRepository, cameras store.CameraRepository, evaluator *authz.Evaluator, logger *logger.Logger) ActionService {
	logger.Debug().Msg("creating camera action service")
	return &actionService{
		actions:   actions,
		cameras:   cameras,
		evaluator: evaluator,
		logger:    logger,
	}
}

// RecordAction appends a manual audit entry for a camera. The camera must
// exist; its location scopes the authorization.
func (s *actionService) RecordAction(ctx context.Context, principal models.User, action models.CameraAction) (models.CameraAction, error) {
	log := logger.FromContext(ctx)

	if action.CameraID == 0 || action.ActionType == "" {
		return models.CameraAction{}, fmt.Errorf("%w: camera_id and action_type are required", ErrInvalidDataProvided)
	}

	camera, err := s.cameras.GetCameraByID(ctx, action.CameraID)
	if err != nil {
		return models.CameraAction{}, err
	}
	if err = authorize(s.evaluator, principal, authz.ActionEdit, camera.LocationID); err != nil {
		return models.CameraAction{}, err
	}

	saved, err := s.actions.CreateAction(ctx, action)
	if err != nil {
		log.Err(err).Str("func", "*actionService.RecordAction").Msg("error recording camera action")
		return models.CameraAction{}, fmt.Errorf("error recording camera action: %w", err)
	}

	return saved, nil
}

// ListActions returns the page of audit records matching spec, optionally
// narrowed to one camera via an equality filter.
func (s *actionService) ListActions(ctx context.Context, principal models.User, spec query.Spec) (models.Page[models.CameraAction], error) {
	if err := authorize(s.evaluator, principal, authz.ActionView, nil); err != nil {
		return models.Page[models.CameraAction]{}, err
	}
	if err := spec.Validate(); err != nil {
		return models.Page[models.CameraAction]{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	actions, total, err := s.actions.ListActions(ctx, spec)
	if err != nil {
		return models.Page[models.CameraAction]{}, fmt.Errorf("error listing camera actions: %w", err)
	}

	return models.NewPage(actions, total, spec.Skip, spec.Limit), nil
}
