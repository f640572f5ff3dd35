package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/query"
	"github.com/rta-cma/camtrack/models"
)

// actionRepository is the PostgreSQL-backed implementation of
// [ActionRepository] over the append-only "camera_actions" table.
type actionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewActionRepository constructs an [ActionRepository] backed by the
// provided database connection and logger.
func NewActionRepository(db *DB, logger *logger.Logger) ActionRepository {
	logger.Debug().Msg("creating camera action repository")
	return &actionRepository{
		db:     db,
		logger: logger,
	}
}

func scanAction(row scanner) (models.CameraAction, error) {
	var a models.CameraAction
	err := row.Scan(&a.ID, &a.CameraID, &a.ActionType, &a.OldValue, &a.NewValue, &a.Notes, &a.ActionDate)
	return a, err
}

// CreateAction appends one audit record. A zero ActionDate is stamped with
// the current time. Unknown camera_id → [ErrReferencedRowMissing].
func (r *actionRepository) CreateAction(ctx context.Context, action models.CameraAction) (models.CameraAction, error) {
	log := logger.FromContext(ctx)

	if action.ActionDate.IsZero() {
		action.ActionDate = time.Now().UTC()
	}

	row := r.db.QueryRowContext(ctx, createAction,
		action.CameraID, action.ActionType, action.OldValue, action.NewValue,
		action.Notes, action.ActionDate)

	saved, err := scanAction(row)
	if err != nil {
		log.Err(err).Str("func", "*actionRepository.CreateAction").Msg("error creating camera action")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.CameraAction{}, ErrReferencedRowMissing
		default:
			return models.CameraAction{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// ListActions returns the page of audit records matching spec plus the
// total match count. Date-range filtering bounds the action_date column.
func (r *actionRepository) ListActions(ctx context.Context, spec query.Spec) ([]models.CameraAction, int64, error) {
	return listInTx(ctx, r.db, actionsEntity, spec, func(rows *sql.Rows) (models.CameraAction, error) {
		return scanAction(rows)
	})
}
