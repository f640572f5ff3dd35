package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/query"
	"github.com/rta-cma/camtrack/models"
)

// cameraRepository is the PostgreSQL-backed implementation of
// [CameraRepository] over the "cameras" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type cameraRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCameraRepository constructs a [CameraRepository] backed by the provided
// database connection and logger.
func NewCameraRepository(db *DB, logger *logger.Logger) CameraRepository {
	logger.Debug().Msg("creating camera repository")
	return &cameraRepository{
		db:     db,
		logger: logger,
	}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCamera(row scanner) (models.Camera, error) {
	var c models.Camera
	err := row.Scan(
		&c.ID, &c.SerialNo, &c.ItemDescription, &c.ModelNo, &c.Brand,
		&c.RTATag, &c.CameraName, &c.IPAddress, &c.MACAddress,
		&c.FirmwareVersion, &c.Protocol, &c.SDCard, &c.SDCapacity,
		&c.Status, &c.CameraStatus, &c.Details, &c.Comments, &c.IsAsset,
		&c.LocationID, &c.NVRID,
	)
	return c, err
}

// CreateCamera persists a new camera and returns the fully populated record
// with its server-assigned id.
//
// Error handling:
//   - unique_violation (duplicate serial_no, ip_address or mac_address)
//     → [ErrAlreadyExists].
//   - foreign_key_violation (unknown location_id or nvr_id)
//     → [ErrReferencedRowMissing].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *cameraRepository) CreateCamera(ctx context.Context, camera models.Camera) (models.Camera, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCamera,
		camera.SerialNo, camera.ItemDescription, camera.ModelNo, camera.Brand,
		camera.RTATag, camera.CameraName, camera.IPAddress, camera.MACAddress,
		camera.FirmwareVersion, camera.Protocol, camera.SDCard,
		camera.SDCapacity, camera.Status, camera.CameraStatus, camera.Details,
		camera.Comments, camera.IsAsset, camera.LocationID, camera.NVRID,
	)

	saved, err := scanCamera(row)
	if err != nil {
		log.Err(err).Str("func", "*cameraRepository.CreateCamera").Msg("error creating camera")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Camera{}, ErrAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return models.Camera{}, ErrReferencedRowMissing
		default:
			return models.Camera{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// GetCameraByID retrieves one camera or [ErrNotFound].
func (r *cameraRepository) GetCameraByID(ctx context.Context, id int64) (models.Camera, error) {
	log := logger.FromContext(ctx)

	camera, err := scanCamera(r.db.QueryRowContext(ctx, getCameraByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Camera{}, ErrNotFound
		}
		log.Err(err).Str("func", "*cameraRepository.GetCameraByID").Msg("error fetching camera")
		return models.Camera{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return camera, nil
}

// ListCameras returns the page of cameras matching spec plus the total
// match count, both computed within one read-only transaction.
func (r *cameraRepository) ListCameras(ctx context.Context, spec query.Spec) ([]models.Camera, int64, error) {
	return listInTx(ctx, r.db, camerasEntity, spec, func(rows *sql.Rows) (models.Camera, error) {
		return scanCamera(rows)
	})
}

// UpdateCamera overwrites every mutable column of the identified camera and
// returns the stored record. Missing id → [ErrNotFound]; constraint
// violations map the same way as in CreateCamera.
func (r *cameraRepository) UpdateCamera(ctx context.Context, camera models.Camera) (models.Camera, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateCamera,
		camera.SerialNo, camera.ItemDescription, camera.ModelNo, camera.Brand,
		camera.RTATag, camera.CameraName, camera.IPAddress, camera.MACAddress,
		camera.FirmwareVersion, camera.Protocol, camera.SDCard,
		camera.SDCapacity, camera.Status, camera.CameraStatus, camera.Details,
		camera.Comments, camera.IsAsset, camera.LocationID, camera.NVRID,
		camera.ID,
	)

	saved, err := scanCamera(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Camera{}, ErrNotFound
		}
		log.Err(err).Str("func", "*cameraRepository.UpdateCamera").Msg("error updating camera")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Camera{}, ErrAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return models.Camera{}, ErrReferencedRowMissing
		default:
			return models.Camera{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// DeleteCamera removes the camera and, through the schema's cascade, its
// audit trail. Missing id → [ErrNotFound].
func (r *cameraRepository) DeleteCamera(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCamera, id)
	if err != nil {
		log.Err(err).Str("func", "*cameraRepository.DeleteCamera").Msg("error deleting camera")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
