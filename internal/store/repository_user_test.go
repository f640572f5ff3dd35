package store

import (
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(createUser)).
			WithArgs("ops@example.com", "ops", "Ops Operator", "bcrypt-hash", models.RoleOperator, true, false, nil).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(int64(2), "ops@example.com", "ops", "Ops Operator", "bcrypt-hash",
					string(models.RoleOperator), true, false, now, now, nil, nil))

		saved, err := repo.CreateUser(testContext(), models.User{
			Email:          "ops@example.com",
			Username:       "ops",
			FullName:       "Ops Operator",
			HashedPassword: "bcrypt-hash",
			Role:           models.RoleOperator,
			IsActive:       true,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), saved.ID)
		assert.Equal(t, models.RoleOperator, saved.Role)
		assert.Nil(t, saved.LastLogin)
		assert.Nil(t, saved.AssignedLocationID)
	})

	t.Run("duplicate username or email", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(createUser)).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		_, err := repo.CreateUser(testContext(), models.User{Email: "ops@example.com", Username: "ops"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("unknown assigned location", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(createUser)).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

		_, err := repo.CreateUser(testContext(), models.User{Email: "ops@example.com", Username: "ops"})
		assert.ErrorIs(t, err, ErrReferencedRowMissing)
	})
}

func TestFindUserByLoginOrEmail(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	loc := int64(5)

	db, mock := newTestDB(t)
	repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

	// The same placeholder serves both the username and the email match.
	mock.ExpectQuery(regexp.QuoteMeta(findUserByLoginOrEmail)).
		WithArgs("ops@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(2), "ops@example.com", "ops", "Ops Operator", "bcrypt-hash",
				string(models.RoleOperator), true, true, now, now, now, loc))

	user, err := repo.FindUserByLoginOrEmail(testContext(), "ops@example.com")
	require.NoError(t, err)

	assert.Equal(t, "ops", user.Username)
	require.NotNil(t, user.AssignedLocationID)
	assert.Equal(t, int64(5), *user.AssignedLocationID)
	require.NotNil(t, user.LastLogin)
}

func TestTouchLastLogin(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(updateUserLastLogin)).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.TouchLastLogin(testContext(), 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserPasswordMissing(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(updateUserPassword)).
		WithArgs("new-hash", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.UpdateUserPassword(testContext(), 99, "new-hash"), ErrNotFound)
}
