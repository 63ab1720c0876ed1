package wire

import (
	"bike-service/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDashboard(r chi.Router, dashboardHandler *adaptor.DashboardHandler) {
	// GET /api/dashboard/total-counts - Entity totals for the admin dashboard
	r.Get("/api/dashboard/total-counts", dashboardHandler.GetTotalCounts)
}
