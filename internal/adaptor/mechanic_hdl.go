package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"bike-service/internal/dto/request"
	"bike-service/internal/usecase"
	"bike-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MechanicHandler struct {
	service    usecase.MechanicService
	assignment usecase.AssignmentService
	log        *zap.Logger
}

func NewMechanicHandler(service usecase.MechanicService, assignment usecase.AssignmentService, log *zap.Logger) *MechanicHandler {
	return &MechanicHandler{
		service:    service,
		assignment: assignment,
		log:        log.With(zap.String("handler", "mechanic")),
	}
}

// GetAllMechanics handles GET /api/mechanics
func (h *MechanicHandler) GetAllMechanics(w http.ResponseWriter, r *http.Request) {
	mechanics, err := h.service.GetAllMechanics(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get all mechanics")
		return
	}

	utils.ResponseSuccess(w, "success", mechanics)
}

// GetMechanic handles GET /api/mechanics/{id}
func (h *MechanicHandler) GetMechanic(w http.ResponseWriter, r *http.Request) {
	mechanicID := chi.URLParam(r, "id")
	if mechanicID == "" {
		utils.ResponseBadRequest(w, "Mechanic ID is required", nil)
		return
	}

	mechanic, err := h.service.GetMechanic(r.Context(), mechanicID)
	if err != nil {
		h.handleServiceError(w, err, "get mechanic")
		return
	}

	utils.ResponseSuccess(w, "success", mechanic)
}

// GetAssignedMechanics handles GET /api/mechanics/assigned
func (h *MechanicHandler) GetAssignedMechanics(w http.ResponseWriter, r *http.Request) {
	mechanics, err := h.service.GetAssignedMechanics(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get assigned mechanics")
		return
	}

	utils.ResponseSuccess(w, "success", mechanics)
}

// GetUnassignedMechanics handles GET /api/mechanics/unassigned
func (h *MechanicHandler) GetUnassignedMechanics(w http.ResponseWriter, r *http.Request) {
	mechanics, err := h.service.GetUnassignedMechanics(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get unassigned mechanics")
		return
	}

	utils.ResponseSuccess(w, "success", mechanics)
}

// AssignMechanic handles PUT /api/mechanics/{id}/assign
func (h *MechanicHandler) AssignMechanic(w http.ResponseWriter, r *http.Request) {
	mechanicID := chi.URLParam(r, "id")
	if mechanicID == "" {
		utils.ResponseBadRequest(w, "Mechanic ID is required", nil)
		return
	}

	var req request.AssignMechanicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.assignment.AssignMechanic(r.Context(), mechanicID, req.BookingID)
	if err != nil {
		h.handleServiceError(w, err, "assign mechanic")
		return
	}

	utils.ResponseSuccess(w, "Mechanic assigned successfully", booking)
}

// MarkInProgress handles PUT /api/mechanics/{id}/update-status
func (h *MechanicHandler) MarkInProgress(w http.ResponseWriter, r *http.Request) {
	mechanicID := chi.URLParam(r, "id")
	if mechanicID == "" {
		utils.ResponseBadRequest(w, "Mechanic ID is required", nil)
		return
	}

	booking, err := h.assignment.MarkInProgress(r.Context(), mechanicID)
	if err != nil {
		h.handleServiceError(w, err, "mark in progress")
		return
	}

	utils.ResponseSuccess(w, "Booking marked as in progress", booking)
}

// MarkComplete handles PUT /api/mechanics/{id}/mark-complete
func (h *MechanicHandler) MarkComplete(w http.ResponseWriter, r *http.Request) {
	mechanicID := chi.URLParam(r, "id")
	if mechanicID == "" {
		utils.ResponseBadRequest(w, "Mechanic ID is required", nil)
		return
	}

	booking, err := h.assignment.MarkComplete(r.Context(), mechanicID)
	if err != nil {
		h.handleServiceError(w, err, "mark complete")
		return
	}

	utils.ResponseSuccess(w, "Booking marked as complete", booking)
}

// DeleteMechanic handles DELETE /api/mechanics/{id}
func (h *MechanicHandler) DeleteMechanic(w http.ResponseWriter, r *http.Request) {
	mechanicID := chi.URLParam(r, "id")
	if mechanicID == "" {
		utils.ResponseBadRequest(w, "Mechanic ID is required", nil)
		return
	}

	if err := h.service.DeleteMechanic(r.Context(), mechanicID); err != nil {
		h.handleServiceError(w, err, "delete mechanic")
		return
	}

	utils.ResponseSuccess(w, "Mechanic deleted successfully", nil)
}

// handleServiceError maps service errors for mechanic operations.
func (h *MechanicHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrMechanicNotFound),
		errors.Is(err, usecase.ErrBookingNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidBooking),
		errors.Is(err, usecase.ErrBookingNotPending),
		errors.Is(err, usecase.ErrAlreadyAssigned),
		errors.Is(err, usecase.ErrTimeConflict),
		errors.Is(err, usecase.ErrNoAssignment),
		errors.Is(err, usecase.ErrNoPendingBooking),
		errors.Is(err, usecase.ErrStillPending):
		h.log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrCostCalculation):
		h.log.Error(operation+" failed - cost calculation",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, err.Error())

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
