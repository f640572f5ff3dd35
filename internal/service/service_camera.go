package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rta-cma/camtrack/internal/authz"
	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/query"
	"github.com/rta-cma/camtrack/internal/store"
	"github.com/rta-cma/camtrack/models"
)

// Lifecycle and operational states accepted for cameras. Postgres enforces
// nothing here; the service is the single gatekeeper for these sets.
var (
	cameraStatuses       = map[string]bool{"Active": true, "Inactive": true, "Decommissioned": true}
	cameraLiveStatuses   = map[string]bool{"Online": true, "Offline": true}
	defaultStatus        = "Inactive"
	defaultCameraStatus  = "Offline"
	actionStatusChange   = "Status Change"
	actionLocationChange = "Location Change"
)

// cameraService implements [CameraService]. Mutations are authorized against
// the camera's location and leave an audit trail for status and location
// changes.
type cameraService struct {
	logger    *logger.Logger
	cameras   store.CameraRepository
	actions   store.ActionRepository
	evaluator *authz.Evaluator
}

// NewCameraService constructs a [CameraService].
func NewCameraService(cameras store.CameraRepository, actions store.ActionRepository, evaluator *authz.Evaluator, logger *logger.Logger) CameraService {
	logger.Debug().Msg("creating camera service")
	return &cameraService{
		cameras:   cameras,
		actions:   actions,
		evaluator: evaluator,
		logger:    logger,
	}
}

func validateCamera(camera models.Camera) error {
	if camera.SerialNo == "" {
		return fmt.Errorf("%w: serial_no is required", ErrInvalidDataProvided)
	}
	if camera.Status != "" && !cameraStatuses[camera.Status] {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidDataProvided, camera.Status)
	}
	if camera.CameraStatus != "" && !cameraLiveStatuses[camera.CameraStatus] {
		return fmt.Errorf("%w: unknown camera_status %q", ErrInvalidDataProvided, camera.CameraStatus)
	}
	return nil
}

// CreateCamera registers a new camera after authorizing the create action
// against the target location. Empty lifecycle fields fall back to
// "Inactive"/"Offline".
func (s *cameraService) CreateCamera(ctx context.Context, principal models.User, camera models.Camera) (models.Camera, error) {
	log := logger.FromContext(ctx)

	if err := validateCamera(camera); err != nil {
		return models.Camera{}, err
	}
	if err := authorize(s.evaluator, principal, authz.ActionCreate, camera.LocationID); err != nil {
		return models.Camera{}, err
	}

	if camera.Status == "" {
		camera.Status = defaultStatus
	}
	if camera.CameraStatus == "" {
		camera.CameraStatus = defaultCameraStatus
	}

	saved, err := s.cameras.CreateCamera(ctx, camera)
	if err != nil {
		log.Err(err).Str("func", "*cameraService.CreateCamera").Msg("error creating camera")
		return models.Camera{}, fmt.Errorf("error creating camera: %w", err)
	}

	return saved, nil
}

// GetCamera returns one camera; every authenticated role may view.
func (s *cameraService) GetCamera(ctx context.Context, principal models.User, id int64) (models.Camera, error) {
	if err := authorize(s.evaluator, principal, authz.ActionView, nil); err != nil {
		return models.Camera{}, err
	}
	return s.cameras.GetCameraByID(ctx, id)
}

// ListCameras returns the page of cameras matching spec.
func (s *cameraService) ListCameras(ctx context.Context, principal models.User, spec query.Spec) (models.Page[models.Camera], error) {
	if err := authorize(s.evaluator, principal, authz.ActionView, nil); err != nil {
		return models.Page[models.Camera]{}, err
	}
	if err := spec.Validate(); err != nil {
		return models.Page[models.Camera]{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	cameras, total, err := s.cameras.ListCameras(ctx, spec)
	if err != nil {
		return models.Page[models.Camera]{}, fmt.Errorf("error listing cameras: %w", err)
	}

	return models.NewPage(cameras, total, spec.Skip, spec.Limit), nil
}

// UpdateCamera overwrites the camera after authorizing the edit against both
// its current location and, when the camera is being moved, the destination.
// Status and location changes are recorded in the audit trail.
func (s *cameraService) UpdateCamera(ctx context.Context, principal models.User, camera models.Camera) (models.Camera, error) {
	log := logger.FromContext(ctx)

	if err := validateCamera(camera); err != nil {
		return models.Camera{}, err
	}

	existing, err := s.cameras.GetCameraByID(ctx, camera.ID)
	if err != nil {
		return models.Camera{}, err
	}

	if err = authorize(s.evaluator, principal, authz.ActionEdit, existing.LocationID); err != nil {
		return models.Camera{}, err
	}
	if !sameLocation(existing.LocationID, camera.LocationID) {
		if err = authorize(s.evaluator, principal, authz.ActionEdit, camera.LocationID); err != nil {
			return models.Camera{}, err
		}
	}

	if camera.Status == "" {
		camera.Status = existing.Status
	}
	if camera.CameraStatus == "" {
		camera.CameraStatus = existing.CameraStatus
	}

	saved, err := s.cameras.UpdateCamera(ctx, camera)
	if err != nil {
		log.Err(err).Str("func", "*cameraService.UpdateCamera").Msg("error updating camera")
		return models.Camera{}, fmt.Errorf("error updating camera: %w", err)
	}

	s.recordChanges(ctx, existing, saved)

	return saved, nil
}

// DeleteCamera removes the camera; the evaluator restricts deletion to
// administrators.
func (s *cameraService) DeleteCamera(ctx context.Context, principal models.User, id int64) error {
	existing, err := s.cameras.GetCameraByID(ctx, id)
	if err != nil {
		return err
	}
	if err = authorize(s.evaluator, principal, authz.ActionDelete, existing.LocationID); err != nil {
		return err
	}
	return s.cameras.DeleteCamera(ctx, id)
}

// recordChanges appends audit records for the status and location deltas
// between the previous and the updated camera. Failures are logged and do
// not roll back the update itself.
func (s *cameraService) recordChanges(ctx context.Context, before, after models.Camera) {
	log := logger.FromContext(ctx)

	if before.Status != after.Status {
		_, err := s.actions.CreateAction(ctx, models.CameraAction{
			CameraID:   after.ID,
			ActionType: actionStatusChange,
			OldValue:   before.Status,
			NewValue:   after.Status,
		})
		if err != nil {
			log.Warn().Err(err).Int64("camera_id", after.ID).Msg("failed to record status change")
		}
	}

	if !sameLocation(before.LocationID, after.LocationID) {
		_, err := s.actions.CreateAction(ctx, models.CameraAction{
			CameraID:   after.ID,
			ActionType: actionLocationChange,
			OldValue:   formatLocation(before.LocationID),
			NewValue:   formatLocation(after.LocationID),
		})
		if err != nil {
			log.Warn().Err(err).Int64("camera_id", after.ID).Msg("failed to record location change")
		}
	}
}

func sameLocation(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func formatLocation(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
