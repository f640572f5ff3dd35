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

// locationRepository is the PostgreSQL-backed implementation of
// [LocationRepository] over the "locations" table.
type locationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLocationRepository constructs a [LocationRepository] backed by the
// provided database connection and logger.
func NewLocationRepository(db *DB, logger *logger.Logger) LocationRepository {
	logger.Debug().Msg("creating location repository")
	return &locationRepository{
		db:     db,
		logger: logger,
	}
}

func scanLocation(row scanner) (models.Location, error) {
	var l models.Location
	err := row.Scan(&l.ID, &l.LocationName, &l.LocationType, &l.ItemLocation, &l.OldLocation)
	return l, err
}

// CreateLocation persists a new location. Duplicate location_name →
// [ErrAlreadyExists].
func (r *locationRepository) CreateLocation(ctx context.Context, location models.Location) (models.Location, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createLocation,
		location.LocationName, location.LocationType, location.ItemLocation, location.OldLocation)

	saved, err := scanLocation(row)
	if err != nil {
		log.Err(err).Str("func", "*locationRepository.CreateLocation").Msg("error creating location")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Location{}, ErrAlreadyExists
		default:
			return models.Location{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// GetLocationByID retrieves one location or [ErrNotFound].
func (r *locationRepository) GetLocationByID(ctx context.Context, id int64) (models.Location, error) {
	log := logger.FromContext(ctx)

	location, err := scanLocation(r.db.QueryRowContext(ctx, getLocationByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Location{}, ErrNotFound
		}
		log.Err(err).Str("func", "*locationRepository.GetLocationByID").Msg("error fetching location")
		return models.Location{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return location, nil
}

// GetLocationIDs returns the ids of every location, ordered ascending.
// Listing endpoints use it as the candidate set for access filtering.
func (r *locationRepository) GetLocationIDs(ctx context.Context) ([]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getLocationIDs)
	if err != nil {
		log.Err(err).Str("func", "*locationRepository.GetLocationIDs").Msg("error listing location ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

// ListLocations returns the page of locations matching spec plus the total
// match count.
func (r *locationRepository) ListLocations(ctx context.Context, spec query.Spec) ([]models.Location, int64, error) {
	return listInTx(ctx, r.db, locationsEntity, spec, func(rows *sql.Rows) (models.Location, error) {
		return scanLocation(rows)
	})
}

// UpdateLocation overwrites the identified location. Missing id →
// [ErrNotFound]; duplicate location_name → [ErrAlreadyExists].
func (r *locationRepository) UpdateLocation(ctx context.Context, location models.Location) (models.Location, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateLocation,
		location.LocationName, location.LocationType, location.ItemLocation,
		location.OldLocation, location.ID)

	saved, err := scanLocation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Location{}, ErrNotFound
		}
		log.Err(err).Str("func", "*locationRepository.UpdateLocation").Msg("error updating location")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Location{}, ErrAlreadyExists
		default:
			return models.Location{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// DeleteLocation removes the location. Cameras referencing it keep running
// with their location_id cleared by the schema's ON DELETE SET NULL.
func (r *locationRepository) DeleteLocation(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteLocation, id)
	if err != nil {
		log.Err(err).Str("func", "*locationRepository.DeleteLocation").Msg("error deleting location")
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
