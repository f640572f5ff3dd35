package service

import (
	"context"
	"testing"

	"github.com/rta-cma/camtrack/internal/authz"
	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/query"
	"github.com/rta-cma/camtrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCameraFixture(cameras ...models.Camera) (CameraService, *fakeCameraRepo, *fakeActionRepo) {
	repo := newFakeCameraRepo(cameras...)
	actions := &fakeActionRepo{}
	svc := NewCameraService(repo, actions, authz.NewEvaluator(), logger.Nop())
	return svc, repo, actions
}

func TestCreateCameraService(t *testing.T) {
	ctx := context.Background()

	t.Run("admin creates with lifecycle defaults", func(t *testing.T) {
		svc, _, _ := newCameraFixture()

		saved, err := svc.CreateCamera(ctx, adminUser(), models.Camera{SerialNo: "SN-1"})
		require.NoError(t, err)

		assert.Equal(t, "Inactive", saved.Status)
		assert.Equal(t, "Offline", saved.CameraStatus)
	})

	t.Run("viewer is denied", func(t *testing.T) {
		svc, _, _ := newCameraFixture()

		_, err := svc.CreateCamera(ctx, viewerUser(), models.Camera{SerialNo: "SN-1"})
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("operator confined to own location", func(t *testing.T) {
		svc, _, _ := newCameraFixture()

		_, err := svc.CreateCamera(ctx, operatorAt(5), models.Camera{SerialNo: "SN-1", LocationID: ptr(9)})
		assert.ErrorIs(t, err, ErrPermissionDenied)

		_, err = svc.CreateCamera(ctx, operatorAt(5), models.Camera{SerialNo: "SN-2", LocationID: ptr(5)})
		assert.NoError(t, err)
	})

	t.Run("missing serial is rejected", func(t *testing.T) {
		svc, _, _ := newCameraFixture()

		_, err := svc.CreateCamera(ctx, adminUser(), models.Camera{})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		svc, _, _ := newCameraFixture()

		_, err := svc.CreateCamera(ctx, adminUser(), models.Camera{SerialNo: "SN-1", Status: "Broken"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestUpdateCameraService(t *testing.T) {
	ctx := context.Background()
	existing := models.Camera{ID: 1, SerialNo: "SN-1", Status: "Active", CameraStatus: "Online", LocationID: ptr(5)}

	t.Run("status change is recorded in the audit trail", func(t *testing.T) {
		svc, _, actions := newCameraFixture(existing)

		updated := existing
		updated.Status = "Decommissioned"
		_, err := svc.UpdateCamera(ctx, adminUser(), updated)
		require.NoError(t, err)

		require.Len(t, actions.actions, 1)
		assert.Equal(t, "Status Change", actions.actions[0].ActionType)
		assert.Equal(t, "Active", actions.actions[0].OldValue)
		assert.Equal(t, "Decommissioned", actions.actions[0].NewValue)
	})

	t.Run("move is recorded and needs rights at both sites", func(t *testing.T) {
		svc, _, actions := newCameraFixture(existing)

		moved := existing
		moved.LocationID = ptr(9)
		_, err := svc.UpdateCamera(ctx, operatorAt(5), moved)
		assert.ErrorIs(t, err, ErrPermissionDenied)
		assert.Empty(t, actions.actions)

		_, err = svc.UpdateCamera(ctx, adminUser(), moved)
		require.NoError(t, err)
		require.Len(t, actions.actions, 1)
		assert.Equal(t, "Location Change", actions.actions[0].ActionType)
		assert.Equal(t, "5", actions.actions[0].OldValue)
		assert.Equal(t, "9", actions.actions[0].NewValue)
	})

	t.Run("no-op update leaves the trail empty", func(t *testing.T) {
		svc, _, actions := newCameraFixture(existing)

		_, err := svc.UpdateCamera(ctx, adminUser(), existing)
		require.NoError(t, err)
		assert.Empty(t, actions.actions)
	})

	t.Run("audit failure does not roll back the update", func(t *testing.T) {
		svc, repo, actions := newCameraFixture(existing)
		actions.createErr = assert.AnError

		updated := existing
		updated.Status = "Inactive"
		saved, err := svc.UpdateCamera(ctx, adminUser(), updated)
		require.NoError(t, err)

		assert.Equal(t, "Inactive", saved.Status)
		assert.Equal(t, "Inactive", repo.cameras[1].Status)
	})

	t.Run("empty lifecycle fields keep current values", func(t *testing.T) {
		svc, _, _ := newCameraFixture(existing)

		partial := existing
		partial.Status = ""
		partial.CameraStatus = ""
		saved, err := svc.UpdateCamera(ctx, adminUser(), partial)
		require.NoError(t, err)

		assert.Equal(t, "Active", saved.Status)
		assert.Equal(t, "Online", saved.CameraStatus)
	})
}

func TestDeleteCameraService(t *testing.T) {
	ctx := context.Background()
	existing := models.Camera{ID: 1, SerialNo: "SN-1", LocationID: ptr(5)}

	t.Run("operator may not delete even at own location", func(t *testing.T) {
		svc, repo, _ := newCameraFixture(existing)

		err := svc.DeleteCamera(ctx, operatorAt(5), 1)
		assert.ErrorIs(t, err, ErrPermissionDenied)
		assert.Contains(t, repo.cameras, int64(1))
	})

	t.Run("admin deletes", func(t *testing.T) {
		svc, repo, _ := newCameraFixture(existing)

		require.NoError(t, svc.DeleteCamera(ctx, adminUser(), 1))
		assert.NotContains(t, repo.cameras, int64(1))
	})
}

func TestListCamerasService(t *testing.T) {
	ctx := context.Background()

	t.Run("any role may list", func(t *testing.T) {
		svc, _, _ := newCameraFixture(models.Camera{ID: 1, SerialNo: "SN-1"})

		page, err := svc.ListCameras(ctx, viewerUser(), query.Spec{Limit: 10})
		require.NoError(t, err)

		assert.Equal(t, int64(1), page.Total)
		assert.False(t, page.HasMore)
	})

	t.Run("window is validated before hitting the store", func(t *testing.T) {
		svc, _, _ := newCameraFixture()

		_, err := svc.ListCameras(ctx, viewerUser(), query.Spec{Limit: 0})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}
