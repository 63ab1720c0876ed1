package adaptor

import (
	"net/http"

	"bike-service/internal/usecase"
	"bike-service/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log.With(zap.String("handler", "dashboard")),
	}
}

// GetTotalCounts handles GET /api/dashboard/total-counts
func (h *DashboardHandler) GetTotalCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.GetTotalCounts(r.Context())
	if err != nil {
		h.log.Error("Failed to get dashboard counts", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", counts)
}
