package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rta-cma/camtrack/internal/config"
	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/query"
	"github.com/rta-cma/camtrack/internal/service"
	"github.com/rta-cma/camtrack/internal/store"
	"github.com/rta-cma/camtrack/internal/utils"
	"github.com/rta-cma/camtrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "camtrack-test"
	testSignKey = "test-sign-key"
)

// fakeAuthService issues real signed tokens so the middleware exercises the
// same validation path as production.
type fakeAuthService struct {
	user     models.User
	loginErr error
}

func (f *fakeAuthService) Login(_ context.Context, login, password string) (models.User, error) {
	if f.loginErr != nil {
		return models.User{}, f.loginErr
	}
	if login != f.user.Username || password != "hunter2hunter2" {
		return models.User{}, service.ErrWrongPassword
	}
	return f.user, nil
}

func (f *fakeAuthService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	return utils.GenerateJWTToken(testIssuer, user.ID, time.Hour, testSignKey)
}

func (f *fakeAuthService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, testSignKey, testIssuer)
	if err != nil {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}

func (f *fakeAuthService) CurrentUser(ctx context.Context, tokenString string) (models.User, error) {
	token, err := f.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}
	if token.UserID != f.user.ID {
		return models.User{}, service.ErrTokenIsExpiredOrInvalid
	}
	return f.user, nil
}

type fakeCameraService struct {
	cameras map[int64]models.Camera

	lastSpec  query.Spec
	deleteErr error
}

func (f *fakeCameraService) CreateCamera(_ context.Context, _ models.User, camera models.Camera) (models.Camera, error) {
	camera.ID = 1
	return camera, nil
}

func (f *fakeCameraService) GetCamera(_ context.Context, _ models.User, id int64) (models.Camera, error) {
	camera, ok := f.cameras[id]
	if !ok {
		return models.Camera{}, store.ErrNotFound
	}
	return camera, nil
}

func (f *fakeCameraService) ListCameras(_ context.Context, _ models.User, spec query.Spec) (models.Page[models.Camera], error) {
	f.lastSpec = spec
	out := make([]models.Camera, 0, len(f.cameras))
	for _, c := range f.cameras {
		out = append(out, c)
	}
	return models.NewPage(out, int64(len(out)), spec.Skip, spec.Limit), nil
}

func (f *fakeCameraService) UpdateCamera(_ context.Context, _ models.User, camera models.Camera) (models.Camera, error) {
	if _, ok := f.cameras[camera.ID]; !ok {
		return models.Camera{}, store.ErrNotFound
	}
	return camera, nil
}

func (f *fakeCameraService) DeleteCamera(_ context.Context, _ models.User, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.cameras[id]; !ok {
		return store.ErrNotFound
	}
	return nil
}

func newTestHandler(auth *fakeAuthService, cameras *fakeCameraService) *Handler {
	services := &service.Services{
		AuthService:   auth,
		CameraService: cameras,
	}
	return NewHandler(services, config.Query{DefaultLimit: 100}, logger.Nop())
}

func adminAuth() *fakeAuthService {
	return &fakeAuthService{user: models.User{
		ID:       1,
		Username: "admin",
		Role:     models.RoleAdministrator,
		IsActive: true,
	}}
}

func bearerToken(t *testing.T, auth *fakeAuthService) string {
	t.Helper()
	token, err := auth.CreateToken(context.Background(), auth.user)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

func TestLoginEndpoint(t *testing.T) {
	auth := adminAuth()
	router := newTestHandler(auth, &fakeCameraService{}).Init()

	t.Run("success returns token and user", func(t *testing.T) {
		body := strings.NewReader(`{"login":"admin","password":"hunter2hunter2"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, "admin", resp.User.Username)
	})

	t.Run("bad credentials", func(t *testing.T) {
		body := strings.NewReader(`{"login":"admin","password":"wrong"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader("{"))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	auth := adminAuth()
	router := newTestHandler(auth, &fakeCameraService{}).Init()

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set("Authorization", bearerToken(t, auth))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var me models.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
		assert.Equal(t, "admin", me.Username)
	})

	t.Run("trace id is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set("Authorization", bearerToken(t, auth))
		req.Header.Set(traceIDHeader, "trace-123")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
	})
}

func TestListCamerasEndpoint(t *testing.T) {
	auth := adminAuth()
	cameras := &fakeCameraService{cameras: map[int64]models.Camera{
		1: {ID: 1, SerialNo: "SN-1"},
	}}
	router := newTestHandler(auth, cameras).Init()

	t.Run("listing parameters land in the spec", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/cameras?search=gate&status=Active&location_id=5&skip=10&limit=20&sort_by=camera_name&sort_order=desc", nil)
		req.Header.Set("Authorization", bearerToken(t, auth))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		spec := cameras.lastSpec
		assert.Equal(t, "gate", spec.Search)
		assert.Equal(t, "camera_name", spec.SortBy)
		assert.Equal(t, query.Descending, spec.Order)
		assert.Equal(t, 10, spec.Skip)
		assert.Equal(t, 20, spec.Limit)
		assert.Equal(t, "Active", spec.Equals["status"])
		assert.Equal(t, int64(5), spec.Equals["location_id"])
	})

	t.Run("limit falls back to the configured default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cameras", nil)
		req.Header.Set("Authorization", bearerToken(t, auth))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 100, cameras.lastSpec.Limit)
	})

	t.Run("non-numeric filter is a bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cameras?location_id=abc", nil)
		req.Header.Set("Authorization", bearerToken(t, auth))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCameraEndpointStatusMapping(t *testing.T) {
	auth := adminAuth()
	cameras := &fakeCameraService{cameras: map[int64]models.Camera{
		1: {ID: 1, SerialNo: "SN-1"},
	}}
	router := newTestHandler(auth, cameras).Init()

	t.Run("unknown id is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cameras/99", nil)
		req.Header.Set("Authorization", bearerToken(t, auth))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("denied delete is 403", func(t *testing.T) {
		cameras.deleteErr = service.ErrPermissionDenied

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/cameras/1", nil)
		req.Header.Set("Authorization", bearerToken(t, auth))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		cameras.deleteErr = nil
	})

	t.Run("successful delete is 204", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/cameras/1", nil)
		req.Header.Set("Authorization", bearerToken(t, auth))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("non-numeric id is 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cameras/abc", nil)
		req.Header.Set("Authorization", bearerToken(t, auth))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
