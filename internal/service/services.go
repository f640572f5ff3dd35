package service

import (
	"fmt"

	"github.com/rta-cma/camtrack/internal/authz"
	"github.com/rta-cma/camtrack/internal/config"
	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/store"
	"github.com/rta-cma/camtrack/models"
)

// Services bundles every service implementation behind its interface for
// wiring into the transport layer.
type Services struct {
	AuthService     AuthService
	UserService     UserService
	CameraService   CameraService
	LocationService LocationService
	NVRService      NVRService
	ActionService   ActionService
}

// NewServices constructs the full service layer over the repositories and a
// shared access control evaluator.
func NewServices(repos *store.Repositories, evaluator *authz.Evaluator, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(repos.UserRepository, cfg, logger),
		UserService:     NewUserService(repos.UserRepository, evaluator, logger),
		CameraService:   NewCameraService(repos.CameraRepository, repos.ActionRepository, evaluator, logger),
		LocationService: NewLocationService(repos.LocationRepository, evaluator, logger),
		NVRService:      NewNVRService(repos.NVRRepository, evaluator, logger),
		ActionService:   NewActionService(repos.ActionRepository, repos.CameraRepository, evaluator, logger),
	}
}

// authorize runs the evaluator for the calling user and converts its verdict
// into the service error vocabulary: a denial becomes [ErrPermissionDenied],
// malformed role/action input becomes [ErrInvalidDataProvided].
func authorize(e *authz.Evaluator, user models.User, action authz.Action, resourceLocationID *int64) error {
	ok, err := e.Authorize(authz.PrincipalOf(user), action, resourceLocationID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if !ok {
		return ErrPermissionDenied
	}
	return nil
}
