package http

import (
	"net/http"

	"github.com/Ragul-Ragavendran-R/user-management-app/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs the HTTP handler serving the directory API.
//
// Routes:
//
//	POST   /api/login        → authHandler.Login
//	GET    /api/users        → usersHandler.List
//	POST   /api/users        → usersHandler.Create   (bearer required)
//	PUT    /api/users/{id}   → usersHandler.Update   (bearer required)
//	DELETE /api/users/{id}   → usersHandler.Delete   (bearer required)
//
// Every route requires the fixed api key; mutations additionally
// require a valid bearer token.
func NewRouter(
	authHandler *AuthHandler,
	usersHandler *UsersHandler,
	apiKey string,
	verifier middleware.TokenVerifier,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))
	// Reject requests without the fixed api key
	r.Use(middleware.RequireAPIKey(apiKey))

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.With(chiMiddleware.AllowContentType("application/json")).
			Post("/login", authHandler.Login)
		r.Get("/users", usersHandler.List)

		// Protected group: requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(verifier))
			r.Post("/users", usersHandler.Create)
			r.Put("/users/{id}", usersHandler.Update)
			r.Delete("/users/{id}", usersHandler.Delete)
		})
	})

	return r
}
