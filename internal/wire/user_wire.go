package wire

import (
	"bike-service/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Route("/api/users", func(r chi.Router) {
		// POST /api/users/register - Create a customer account
		r.Post("/register", userHandler.Register)

		// POST /api/users/login - Verify credentials
		r.Post("/login", userHandler.Login)

		// PUT /api/users/{id}/promote - Turn an account into a mechanic
		r.Put("/{id}/promote", userHandler.PromoteToMechanic)

		// GET /api/users/{id} - Account details
		r.Get("/{id}", userHandler.GetUser)

		// DELETE /api/users/{id} - Remove an account and its bookings
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
