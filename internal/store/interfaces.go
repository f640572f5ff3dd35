package store

import (
	"context"

	"github.com/rta-cma/camtrack/internal/query"
	"github.com/rta-cma/camtrack/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByLoginOrEmail(ctx context.Context, login string) (models.User, error)
	ListUsers(ctx context.Context, spec query.Spec) ([]models.User, int64, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUserPassword(ctx context.Context, id int64, hashedPassword string) error
	TouchLastLogin(ctx context.Context, id int64) error
	DeleteUser(ctx context.Context, id int64) error
}

// CameraRepository persists cameras.
type CameraRepository interface {
	CreateCamera(ctx context.Context, camera models.Camera) (models.Camera, error)
	GetCameraByID(ctx context.Context, id int64) (models.Camera, error)
	ListCameras(ctx context.Context, spec query.Spec) ([]models.Camera, int64, error)
	UpdateCamera(ctx context.Context, camera models.Camera) (models.Camera, error)
	DeleteCamera(ctx context.Context, id int64) error
}

// LocationRepository persists locations.
type LocationRepository interface {
	CreateLocation(ctx context.Context, location models.Location) (models.Location, error)
	GetLocationByID(ctx context.Context, id int64) (models.Location, error)
	GetLocationIDs(ctx context.Context) ([]int64, error)
	ListLocations(ctx context.Context, spec query.Spec) ([]models.Location, int64, error)
	UpdateLocation(ctx context.Context, location models.Location) (models.Location, error)
	DeleteLocation(ctx context.Context, id int64) error
}

// NVRRepository persists NVR host devices.
type NVRRepository interface {
	CreateNVR(ctx context.Context, nvr models.NVRDevice) (models.NVRDevice, error)
	GetNVRByID(ctx context.Context, id int64) (models.NVRDevice, error)
	ListNVRs(ctx context.Context, spec query.Spec) ([]models.NVRDevice, int64, error)
	UpdateNVR(ctx context.Context, nvr models.NVRDevice) (models.NVRDevice, error)
	DeleteNVR(ctx context.Context, id int64) error
}

// ActionRepository persists the append-only camera audit trail.
type ActionRepository interface {
	CreateAction(ctx context.Context, action models.CameraAction) (models.CameraAction, error)
	ListActions(ctx context.Context, spec query.Spec) ([]models.CameraAction, int64, error)
}
