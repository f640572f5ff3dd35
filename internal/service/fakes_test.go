package service

import (
	"context"

	"github.com/rta-cma/camtrack/internal/query"
	"github.com/rta-cma/camtrack/internal/store"
	"github.com/rta-cma/camtrack/models"
)

// In-memory fakes over the repository interfaces. Each method either
// delegates to an overridable func field or falls back to a simple
// map-backed behaviour, which keeps the happy path terse and lets a single
// test override just the call it cares about.

type fakeUserRepo struct {
	users map[int64]models.User

	createErr error
	touched   []int64
	passwords map[int64]string
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[int64]models.User{}, passwords: map[int64]string{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	if r.createErr != nil {
		return models.User{}, r.createErr
	}
	user.ID = int64(len(r.users) + 1)
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id int64) (models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindUserByLoginOrEmail(_ context.Context, login string) (models.User, error) {
	for _, u := range r.users {
		if u.Username == login || u.Email == login {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (r *fakeUserRepo) ListUsers(_ context.Context, _ query.Spec) ([]models.User, int64, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, user models.User) (models.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return models.User{}, store.ErrNotFound
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) UpdateUserPassword(_ context.Context, id int64, hashedPassword string) error {
	if _, ok := r.users[id]; !ok {
		return store.ErrNotFound
	}
	r.passwords[id] = hashedPassword
	return nil
}

func (r *fakeUserRepo) TouchLastLogin(_ context.Context, id int64) error {
	r.touched = append(r.touched, id)
	return nil
}

func (r *fakeUserRepo) DeleteUser(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeCameraRepo struct {
	cameras map[int64]models.Camera
}

func newFakeCameraRepo(cameras ...models.Camera) *fakeCameraRepo {
	r := &fakeCameraRepo{cameras: map[int64]models.Camera{}}
	for _, c := range cameras {
		r.cameras[c.ID] = c
	}
	return r
}

func (r *fakeCameraRepo) CreateCamera(_ context.Context, camera models.Camera) (models.Camera, error) {
	camera.ID = int64(len(r.cameras) + 1)
	r.cameras[camera.ID] = camera
	return camera, nil
}

func (r *fakeCameraRepo) GetCameraByID(_ context.Context, id int64) (models.Camera, error) {
	camera, ok := r.cameras[id]
	if !ok {
		return models.Camera{}, store.ErrNotFound
	}
	return camera, nil
}

func (r *fakeCameraRepo) ListCameras(_ context.Context, _ query.Spec) ([]models.Camera, int64, error) {
	out := make([]models.Camera, 0, len(r.cameras))
	for _, c := range r.cameras {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCameraRepo) UpdateCamera(_ context.Context, camera models.Camera) (models.Camera, error) {
	if _, ok := r.cameras[camera.ID]; !ok {
		return models.Camera{}, store.ErrNotFound
	}
	r.cameras[camera.ID] = camera
	return camera, nil
}

func (r *fakeCameraRepo) DeleteCamera(_ context.Context, id int64) error {
	if _, ok := r.cameras[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.cameras, id)
	return nil
}

type fakeLocationRepo struct {
	locations map[int64]models.Location
}

func newFakeLocationRepo(locations ...models.Location) *fakeLocationRepo {
	r := &fakeLocationRepo{locations: map[int64]models.Location{}}
	for _, l := range locations {
		r.locations[l.ID] = l
	}
	return r
}

func (r *fakeLocationRepo) CreateLocation(_ context.Context, location models.Location) (models.Location, error) {
	location.ID = int64(len(r.locations) + 1)
	r.locations[location.ID] = location
	return location, nil
}

func (r *fakeLocationRepo) GetLocationByID(_ context.Context, id int64) (models.Location, error) {
	location, ok := r.locations[id]
	if !ok {
		return models.Location{}, store.ErrNotFound
	}
	return location, nil
}

func (r *fakeLocationRepo) GetLocationIDs(_ context.Context) ([]int64, error) {
	ids := make([]int64, 0, len(r.locations))
	for id := range r.locations {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *fakeLocationRepo) ListLocations(_ context.Context, _ query.Spec) ([]models.Location, int64, error) {
	out := make([]models.Location, 0, len(r.locations))
	for _, l := range r.locations {
		out = append(out, l)
	}
	return out, int64(len(out)), nil
}

func (r *fakeLocationRepo) UpdateLocation(_ context.Context, location models.Location) (models.Location, error) {
	if _, ok := r.locations[location.ID]; !ok {
		return models.Location{}, store.ErrNotFound
	}
	r.locations[location.ID] = location
	return location, nil
}

func (r *fakeLocationRepo) DeleteLocation(_ context.Context, id int64) error {
	if _, ok := r.locations[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.locations, id)
	return nil
}

type fakeActionRepo struct {
	actions   []models.CameraAction
	createErr error
}

func (r *fakeActionRepo) CreateAction(_ context.Context, action models.CameraAction) (models.CameraAction, error) {
	if r.createErr != nil {
		return models.CameraAction{}, r.createErr
	}
	action.ID = int64(len(r.actions) + 1)
	r.actions = append(r.actions, action)
	return action, nil
}

func (r *fakeActionRepo) ListActions(_ context.Context, _ query.Spec) ([]models.CameraAction, int64, error) {
	return r.actions, int64(len(r.actions)), nil
}

// Role fixtures shared by the service tests.
func adminUser() models.User {
	return models.User{ID: 1, Username: "admin", Role: models.RoleAdministrator, IsActive: true}
}

func viewerUser() models.User {
	return models.User{ID: 2, Username: "viewer", Role: models.RoleViewer, IsActive: true}
}

func operatorAt(locationID int64) models.User {
	return models.User{ID: 3, Username: "operator", Role: models.RoleOperator, IsActive: true, AssignedLocationID: &locationID}
}

func ptr(v int64) *int64 { return &v }
