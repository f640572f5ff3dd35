package service

import (
	"context"
	"testing"

	"github.com/rta-cma/camtrack/internal/authz"
	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocationFixture(locations ...models.Location) (LocationService, *fakeLocationRepo) {
	repo := newFakeLocationRepo(locations...)
	return NewLocationService(repo, authz.NewEvaluator(), logger.Nop()), repo
}

func TestLocationMutations(t *testing.T) {
	ctx := context.Background()
	site := models.Location{ID: 5, LocationName: "Depot"}

	t.Run("viewer may not create", func(t *testing.T) {
		svc, _ := newLocationFixture()

		_, err := svc.CreateLocation(ctx, viewerUser(), models.Location{LocationName: "New"})
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		svc, _ := newLocationFixture()

		_, err := svc.CreateLocation(ctx, adminUser(), models.Location{})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("assigned operator edits only own site", func(t *testing.T) {
		other := models.Location{ID: 9, LocationName: "Remote"}
		svc, _ := newLocationFixture(site, other)

		_, err := svc.UpdateLocation(ctx, operatorAt(5), models.Location{ID: 5, LocationName: "Depot East"})
		assert.NoError(t, err)

		_, err = svc.UpdateLocation(ctx, operatorAt(5), models.Location{ID: 9, LocationName: "Hijacked"})
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("deletion is administrator-only", func(t *testing.T) {
		svc, repo := newLocationFixture(site)

		assert.ErrorIs(t, svc.DeleteLocation(ctx, operatorAt(5), 5), ErrPermissionDenied)
		require.NoError(t, svc.DeleteLocation(ctx, adminUser(), 5))
		assert.Empty(t, repo.locations)
	})
}

func TestAccessibleLocationIDs(t *testing.T) {
	ctx := context.Background()
	sites := []models.Location{
		{ID: 3, LocationName: "North"},
		{ID: 5, LocationName: "Depot"},
		{ID: 9, LocationName: "South"},
	}

	t.Run("explicit candidates are filtered", func(t *testing.T) {
		svc, _ := newLocationFixture(sites...)

		ids, err := svc.AccessibleLocationIDs(ctx, operatorAt(5), []int64{3, 5, 9})
		require.NoError(t, err)
		assert.Equal(t, []int64{5}, ids)
	})

	t.Run("nil candidates resolve against all known sites", func(t *testing.T) {
		svc, _ := newLocationFixture(sites...)

		ids, err := svc.AccessibleLocationIDs(ctx, operatorAt(5), nil)
		require.NoError(t, err)
		assert.Equal(t, []int64{5}, ids)

		all, err := svc.AccessibleLocationIDs(ctx, adminUser(), nil)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{3, 5, 9}, all)
	})
}
