package wire

import (
	"bike-service/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMechanic(r chi.Router, mechanicHandler *adaptor.MechanicHandler) {
	r.Route("/api/mechanics", func(r chi.Router) {
		// GET /api/mechanics - List all mechanics with workloads
		r.Get("/", mechanicHandler.GetAllMechanics)

		// GET /api/mechanics/assigned - Mechanics with an active booking
		r.Get("/assigned", mechanicHandler.GetAssignedMechanics)

		// GET /api/mechanics/unassigned - Mechanics free right now
		r.Get("/unassigned", mechanicHandler.GetUnassignedMechanics)

		// GET /api/mechanics/{id} - Mechanic details
		r.Get("/{id}", mechanicHandler.GetMechanic)

		// PUT /api/mechanics/{id}/assign - Assign a pending booking
		r.Put("/{id}/assign", mechanicHandler.AssignMechanic)

		// PUT /api/mechanics/{id}/update-status - Start the earliest assignment
		r.Put("/{id}/update-status", mechanicHandler.MarkInProgress)

		// PUT /api/mechanics/{id}/mark-complete - Finish the running assignment
		r.Put("/{id}/mark-complete", mechanicHandler.MarkComplete)

		// DELETE /api/mechanics/{id} - Remove a mechanic
		r.Delete("/{id}", mechanicHandler.DeleteMechanic)
	})
}
