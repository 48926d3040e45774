package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/shariqrahman/Products-Management/internal/auth"
	"github.com/shariqrahman/Products-Management/internal/handlers"
	"github.com/shariqrahman/Products-Management/internal/middleware"
)

// SetupRoutes registers the account endpoints. Profile routes sit behind the
// bearer-token middleware, which resolves the caller id for the ownership
// checks inside the handlers.
func SetupRoutes(r *chi.Mux, users *handlers.UserHandler, tokens *auth.TokenIssuer) {
	r.Post("/register", users.Register)
	r.Post("/login", users.Login)

	r.Route("/user/{userID}/profile", func(r chi.Router) {
		r.Use(middleware.RequireAuth(tokens))
		r.Get("/", users.GetProfile)
		r.Put("/", users.UpdateProfile)
	})
}
