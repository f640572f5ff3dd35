package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the router: trace/log/recover middleware on everything,
// login left open, every other route behind the auth middleware.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/auth/me", h.me)

			r.Route("/cameras", func(r chi.Router) {
				r.Get("/", h.listCameras)
				r.Post("/", h.createCamera)
				r.Get("/{id}", h.getCamera)
				r.Put("/{id}", h.updateCamera)
				r.Delete("/{id}", h.deleteCamera)
				r.Get("/{id}/actions", h.listCameraActions)
				r.Post("/{id}/actions", h.recordCameraAction)
			})

			r.Route("/actions", func(r chi.Router) {
				r.Get("/", h.listActions)
			})

			r.Route("/locations", func(r chi.Router) {
				r.Get("/", h.listLocations)
				r.Post("/", h.createLocation)
				r.Get("/accessible", h.accessibleLocations)
				r.Get("/{id}", h.getLocation)
				r.Put("/{id}", h.updateLocation)
				r.Delete("/{id}", h.deleteLocation)
			})

			r.Route("/nvrs", func(r chi.Router) {
				r.Get("/", h.listNVRs)
				r.Post("/", h.createNVR)
				r.Get("/{id}", h.getNVR)
				r.Put("/{id}", h.updateNVR)
				r.Delete("/{id}", h.deleteNVR)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.listUsers)
				r.Post("/", h.createUser)
				r.Get("/{id}", h.getUser)
				r.Put("/{id}", h.updateUser)
				r.Put("/{id}/password", h.updateUserPassword)
				r.Delete("/{id}", h.deleteUser)
			})
		})
	})

	return router
}
