package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users/register", h.register)
		r.Post("/api/users/verify", h.verifyEmail)
		r.Post("/api/users/login", h.login)
		r.Post("/api/users/logout", h.logout)

		r.Get("/api/movies", h.listMovies)
		r.Get("/api/movies/{title}", h.getMovie)
		r.Post("/api/movies/search", h.searchMovies)
		r.Get("/api/movies/{title}/reviews", h.listReviews)
		r.Get("/api/reviews/user/{username}", h.listReviewsByUser)
		r.Get("/api/lists/{username}", h.lists)
	})

	// routes requiring a valid session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/me", h.me)

		r.Post("/api/movies/{title}/reviews", h.addReview)
		r.Put("/api/movies/{title}/reviews/{index}", h.updateReview)
		r.Delete("/api/movies/{title}/reviews/{index}", h.deleteReview)

		r.Post("/api/lists", h.createList)
		r.Post("/api/lists/{name}/movies", h.addMovieToList)
		r.Delete("/api/lists/{name}/movies/{title}", h.removeMovieFromList)
	})

	// routes requiring the admin role
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.requireAdmin)

		r.Post("/api/movies", h.createMovie)
		r.Put("/api/movies/{title}", h.updateMovie)
		r.Delete("/api/movies/{title}", h.deleteMovie)

		r.Post("/api/admin/users/{username}/penalties", h.grantPenalty)
		r.Get("/api/admin/users/{username}/penalties", h.listPenalties)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
