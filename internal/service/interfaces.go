package service

import (
	"context"

	"github.com/rta-cma/camtrack/internal/query"
	"github.com/rta-cma/camtrack/models"
)

// AuthService authenticates accounts and manages JWT lifecycle.
type AuthService interface {
	Login(ctx context.Context, login, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	CurrentUser(ctx context.Context, tokenString string) (models.User, error)
}

// UserService manages accounts; every method except Get-self is gated by
// the manage_users action.
type UserService interface {
	CreateUser(ctx context.Context, principal models.User, user models.User, password string) (models.User, error)
	GetUser(ctx context.Context, principal models.User, id int64) (models.User, error)
	ListUsers(ctx context.Context, principal models.User, spec query.Spec) (models.Page[models.User], error)
	UpdateUser(ctx context.Context, principal models.User, user models.User) (models.User, error)
	UpdateUserPassword(ctx context.Context, principal models.User, id int64, password string) error
	DeleteUser(ctx context.Context, principal models.User, id int64) error
}

// CameraService manages the camera inventory.
type CameraService interface {
	CreateCamera(ctx context.Context, principal models.User, camera models.Camera) (models.Camera, error)
	GetCamera(ctx context.Context, principal models.User, id int64) (models.Camera, error)
	ListCameras(ctx context.Context, principal models.User, spec query.Spec) (models.Page[models.Camera], error)
	UpdateCamera(ctx context.Context, principal models.User, camera models.Camera) (models.Camera, error)
	DeleteCamera(ctx context.Context, principal models.User, id int64) error
}

// LocationService manages sites and exposes the location visibility filter
// used by listing endpoints.
type LocationService interface {
	CreateLocation(ctx context.Context, principal models.User, location models.Location) (models.Location, error)
	GetLocation(ctx context.Context, principal models.User, id int64) (models.Location, error)
	ListLocations(ctx context.Context, principal models.User, spec query.Spec) (models.Page[models.Location], error)
	UpdateLocation(ctx context.Context, principal models.User, location models.Location) (models.Location, error)
	DeleteLocation(ctx context.Context, principal models.User, id int64) error
	AccessibleLocationIDs(ctx context.Context, principal models.User, candidates []int64) ([]int64, error)
}

// NVRService manages NVR host devices.
type NVRService interface {
	CreateNVR(ctx context.Context, principal models.User, nvr models.NVRDevice) (models.NVRDevice, error)
	GetNVR(ctx context.Context, principal models.User, id int64) (models.NVRDevice, error)
	ListNVRs(ctx context.Context, principal models.User, spec query.Spec) (models.Page[models.NVRDevice], error)
	UpdateNVR(ctx context.Context, principal models.User, nvr models.NVRDevice) (models.NVRDevice, error)
	DeleteNVR(ctx context.Context, principal models.User, id int64) error
}

// ActionService manages the camera audit trail.
type ActionService interface {
	RecordAction(ctx context.Context, principal models.User, action models.CameraAction) (models.CameraAction, error)
	ListActions(ctx context.Context, principal models.User, spec query.Spec) (models.Page[models.CameraAction], error)
}
