package add_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/BookingHub/internal/api/handlers"
	"github.com/m04kA/BookingHub/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgValidationFailed   = "name, category and a positive duration are required, price must not be negative"
	msgAlreadyExists      = "service already exists"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details, err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /admin/services - Validation failed: %v", err)
		handlers.RespondValidationError(w, msgValidationFailed, details)
		return
	}

	service, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, catalog.ErrServiceAlreadyExists):
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /admin/services - Failed to create service: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/services - Service created successfully: service_id=%s, name=%q", service.ID, service.Name)
	handlers.RespondJSON(w, http.StatusCreated, service)
}
