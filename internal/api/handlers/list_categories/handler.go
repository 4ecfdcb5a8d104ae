package list_categories

import (
	"net/http"

	"github.com/m04kA/BookingHub/internal/api/handlers"
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

// Handle GET /api/v1/services/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Categories(r.Context())
	if err != nil {
		h.logger.Error("GET /services/categories - Failed to list categories: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result.Categories)
}
