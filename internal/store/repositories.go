package store

import "github.com/rta-cma/camtrack/internal/logger"

// Repositories bundles every repository implementation behind its interface
// for wiring into the service layer.
type Repositories struct {
	UserRepository     UserRepository
	CameraRepository   CameraRepository
	LocationRepository LocationRepository
	NVRRepository      NVRRepository
	ActionRepository   ActionRepository
}

// NewRepositories constructs all repositories over a shared database handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, logger),
		CameraRepository:   NewCameraRepository(db, logger),
		LocationRepository: NewLocationRepository(db, logger),
		NVRRepository:      NewNVRRepository(db, logger),
		ActionRepository:   NewActionRepository(db, logger),
	}
}
