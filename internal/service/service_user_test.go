package service

import (
	"context"
	"testing"

	"github.com/rta-cma/camtrack/internal/authz"
	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/utils"
	"github.com/rta-cma/camtrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture(users ...models.User) (UserService, *fakeUserRepo) {
	repo := newFakeUserRepo(users...)
	return NewUserService(repo, authz.NewEvaluator(), logger.Nop()), repo
}

func TestCreateUserService(t *testing.T) {
	ctx := context.Background()
	newAccount := models.User{Username: "fresh", Email: "fresh@example.com", Role: models.RoleViewer}

	t.Run("admin creates and the password is hashed", func(t *testing.T) {
		svc, repo := newUserFixture(adminUser())

		saved, err := svc.CreateUser(ctx, adminUser(), newAccount, "longenough")
		require.NoError(t, err)

		stored := repo.users[saved.ID]
		assert.NotEqual(t, "longenough", stored.HashedPassword)
		assert.True(t, utils.VerifyPassword("longenough", stored.HashedPassword))
	})

	t.Run("operator and viewer are denied", func(t *testing.T) {
		svc, _ := newUserFixture()

		_, err := svc.CreateUser(ctx, operatorAt(5), newAccount, "longenough")
		assert.ErrorIs(t, err, ErrPermissionDenied)

		_, err = svc.CreateUser(ctx, viewerUser(), newAccount, "longenough")
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		svc, _ := newUserFixture()

		_, err := svc.CreateUser(ctx, adminUser(), newAccount, "short")
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		svc, _ := newUserFixture()

		bad := newAccount
		bad.Role = "root"
		_, err := svc.CreateUser(ctx, adminUser(), bad, "longenough")
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestGetUserService(t *testing.T) {
	ctx := context.Background()

	t.Run("anyone may read their own account", func(t *testing.T) {
		svc, _ := newUserFixture(viewerUser())

		got, err := svc.GetUser(ctx, viewerUser(), viewerUser().ID)
		require.NoError(t, err)
		assert.Equal(t, "viewer", got.Username)
	})

	t.Run("reading someone else needs manage_users", func(t *testing.T) {
		svc, _ := newUserFixture(adminUser(), viewerUser())

		_, err := svc.GetUser(ctx, viewerUser(), adminUser().ID)
		assert.ErrorIs(t, err, ErrPermissionDenied)

		got, err := svc.GetUser(ctx, adminUser(), viewerUser().ID)
		require.NoError(t, err)
		assert.Equal(t, "viewer", got.Username)
	})
}

func TestUpdateUserPasswordService(t *testing.T) {
	ctx := context.Background()

	t.Run("own password may always be changed", func(t *testing.T) {
		svc, repo := newUserFixture(viewerUser())

		err := svc.UpdateUserPassword(ctx, viewerUser(), viewerUser().ID, "newpassword")
		require.NoError(t, err)
		assert.True(t, utils.VerifyPassword("newpassword", repo.passwords[viewerUser().ID]))
	})

	t.Run("changing another account needs manage_users", func(t *testing.T) {
		svc, _ := newUserFixture(adminUser(), viewerUser())

		err := svc.UpdateUserPassword(ctx, viewerUser(), adminUser().ID, "newpassword")
		assert.ErrorIs(t, err, ErrPermissionDenied)

		err = svc.UpdateUserPassword(ctx, adminUser(), viewerUser().ID, "newpassword")
		assert.NoError(t, err)
	})
}

func TestDeleteUserService(t *testing.T) {
	ctx := context.Background()

	t.Run("admin deletes another account", func(t *testing.T) {
		svc, repo := newUserFixture(adminUser(), viewerUser())

		require.NoError(t, svc.DeleteUser(ctx, adminUser(), viewerUser().ID))
		assert.NotContains(t, repo.users, viewerUser().ID)
	})

	t.Run("self-deletion is rejected", func(t *testing.T) {
		svc, repo := newUserFixture(adminUser())

		err := svc.DeleteUser(ctx, adminUser(), adminUser().ID)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.Contains(t, repo.users, adminUser().ID)
	})

	t.Run("non-admin is denied", func(t *testing.T) {
		svc, _ := newUserFixture(adminUser(), viewerUser())

		err := svc.DeleteUser(ctx, operatorAt(5), viewerUser().ID)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}
