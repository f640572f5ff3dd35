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

// nvrRepository is the PostgreSQL-backed implementation of [NVRRepository]
// over the "nvr_devices" table.
type nvrRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNVRRepository constructs an [NVRRepository] backed by the provided
// database connection and logger.
func NewNVRRepository(db *DB, logger *logger.Logger) NVRRepository {
	logger.Debug().Msg("creating nvr repository")
	return &nvrRepository{
		db:     db,
		logger: logger,
	}
}

func scanNVR(row scanner) (models.NVRDevice, error) {
	var n models.NVRDevice
	err := row.Scan(&n.ID, &n.NVRName, &n.IPAddress, &n.ChannelNumber, &n.SwitchPort)
	return n, err
}

// CreateNVR persists a new NVR device. Duplicate nvr_name →
// [ErrAlreadyExists].
func (r *nvrRepository) CreateNVR(ctx context.Context, nvr models.NVRDevice) (models.NVRDevice, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNVR,
		nvr.NVRName, nvr.IPAddress, nvr.ChannelNumber, nvr.SwitchPort)

	saved, err := scanNVR(row)
	if err != nil {
		log.Err(err).Str("func", "*nvrRepository.CreateNVR").Msg("error creating nvr")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.NVRDevice{}, ErrAlreadyExists
		default:
			return models.NVRDevice{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// GetNVRByID retrieves one NVR device or [ErrNotFound].
func (r *nvrRepository) GetNVRByID(ctx context.Context, id int64) (models.NVRDevice, error) {
	log := logger.FromContext(ctx)

	nvr, err := scanNVR(r.db.QueryRowContext(ctx, getNVRByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.NVRDevice{}, ErrNotFound
		}
		log.Err(err).Str("func", "*nvrRepository.GetNVRByID").Msg("error fetching nvr")
		return models.NVRDevice{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return nvr, nil
}

// ListNVRs returns the page of NVR devices matching spec plus the total
// match count.
func (r *nvrRepository) ListNVRs(ctx context.Context, spec query.Spec) ([]models.NVRDevice, int64, error) {
	return listInTx(ctx, r.db, nvrsEntity, spec, func(rows *sql.Rows) (models.NVRDevice, error) {
		return scanNVR(rows)
	})
}

// UpdateNVR overwrites the identified NVR device. Missing id →
// [ErrNotFound]; duplicate nvr_name → [ErrAlreadyExists].
func (r *nvrRepository) UpdateNVR(ctx context.Context, nvr models.NVRDevice) (models.NVRDevice, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateNVR,
		nvr.NVRName, nvr.IPAddress, nvr.ChannelNumber, nvr.SwitchPort, nvr.ID)

	saved, err := scanNVR(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.NVRDevice{}, ErrNotFound
		}
		log.Err(err).Str("func", "*nvrRepository.UpdateNVR").Msg("error updating nvr")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.NVRDevice{}, ErrAlreadyExists
		default:
			return models.NVRDevice{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// DeleteNVR removes the device. Cameras referencing it keep running with
// their nvr_id cleared by the schema's ON DELETE SET NULL.
func (r *nvrRepository) DeleteNVR(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteNVR, id)
	if err != nil {
		log.Err(err).Str("func", "*nvrRepository.DeleteNVR").Msg("error deleting nvr")
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
