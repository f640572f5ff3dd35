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

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func scanUser(row scanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.FullName, &u.HashedPassword,
		&u.Role, &u.IsActive, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt,
		&u.LastLogin, &u.AssignedLocationID,
	)
	return u, err
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// Error handling:
//   - unique_violation (duplicate username or email) → [ErrAlreadyExists].
//   - foreign_key_violation (unknown assigned_location_id)
//     → [ErrReferencedRowMissing].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Email, user.Username, user.FullName, user.HashedPassword,
		user.Role, user.IsActive, user.IsVerified, user.AssignedLocationID)

	saved, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return models.User{}, ErrReferencedRowMissing
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// GetUserByID retrieves one account or [ErrNotFound].
func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, getUserByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error fetching user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByLoginOrEmail retrieves the account whose username or email
// matches login, or [ErrNotFound]. Login accepts either identifier
// interchangeably.
func (r *userRepository) FindUserByLoginOrEmail(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, findUserByLoginOrEmail, login))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByLoginOrEmail").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// ListUsers returns the page of accounts matching spec plus the total match
// count.
func (r *userRepository) ListUsers(ctx context.Context, spec query.Spec) ([]models.User, int64, error) {
	return listInTx(ctx, r.db, usersEntity, spec, func(rows *sql.Rows) (models.User, error) {
		return scanUser(rows)
	})
}

// UpdateUser overwrites the identity and authorization columns of the
// account; the password is managed separately via UpdateUserPassword.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateUser,
		user.Email, user.Username, user.FullName, user.Role, user.IsActive,
		user.IsVerified, user.AssignedLocationID, user.ID)

	saved, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return models.User{}, ErrReferencedRowMissing
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// UpdateUserPassword replaces the stored bcrypt hash for the account.
func (r *userRepository) UpdateUserPassword(ctx context.Context, id int64, hashedPassword string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUserPassword, hashedPassword, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserPassword").Msg("error updating password")
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

// TouchLastLogin stamps the account's last_login with the current time.
// Called after every successful authentication.
func (r *userRepository) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, updateUserLastLogin, id)
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	return nil
}

// DeleteUser removes the account. Missing id → [ErrNotFound].
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
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
