package add_time_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BookingHub/internal/api/handlers"
	addTimeSlot "github.com/m04kA/BookingHub/internal/usecase/add_time_slot"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgValidationFailed   = "date (YYYY-MM-DD) and startTime (HH:MM) are required"
	msgServiceNotFound    = "service not found"
	msgSlotAlreadyExists  = "a slot with this date and start time already exists"
)

type Handler struct {
	useCase AddTimeSlotUseCase
	logger  Logger
}

func NewHandler(useCase AddTimeSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/services/{serviceId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	var req AddTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/services/{id}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details, err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /admin/services/{id}/slots - Validation failed: %v", err)
		handlers.RespondValidationError(w, msgValidationFailed, details)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(serviceID))
	if err != nil {
		switch {
		case errors.Is(err, addTimeSlot.ErrServiceNotFound):
			h.logger.Warn("POST /admin/services/{id}/slots - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, addTimeSlot.ErrSlotAlreadyExists):
			h.logger.Warn("POST /admin/services/{id}/slots - Slot already exists: service_id=%s, date=%s, time=%s",
				serviceID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotAlreadyExists)

		case errors.Is(err, addTimeSlot.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgValidationFailed)

		default:
			h.logger.Error("POST /admin/services/{id}/slots - Failed to add slot: service_id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/services/{id}/slots - Slot added successfully: slot_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
