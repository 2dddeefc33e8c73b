package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users", h.register)
		r.Post("/users/login", h.login)

		r.Get("/businesses", h.listBusinesses)
		r.Get("/businesses/{id}", h.getBusiness)
		r.Get("/photos", h.listPhotos)
		r.Get("/photos/{id}", h.getPhoto)
		r.Get("/reviews", h.listReviews)
		r.Get("/reviews/{id}", h.getReview)
	})

	// routes that require a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		// user resources are visible only to the subject or an admin
		r.Route("/users/{userId}", func(r chi.Router) {
			r.Use(h.requireSubjectOrAdmin)
			r.Get("/", h.getUser)
			r.Get("/businesses", h.listUserBusinesses)
			r.Get("/photos", h.listUserPhotos)
			r.Get("/reviews", h.listUserReviews)
		})

		r.Post("/businesses", h.createBusiness)
		r.Put("/businesses/{id}", h.updateBusiness)
		r.Delete("/businesses/{id}", h.deleteBusiness)

		r.Post("/photos", h.createPhoto)
		r.Put("/photos/{id}", h.updatePhoto)
		r.Delete("/photos/{id}", h.deletePhoto)

		r.Post("/reviews", h.createReview)
		r.Put("/reviews/{id}", h.updateReview)
		r.Delete("/reviews/{id}", h.deleteReview)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
