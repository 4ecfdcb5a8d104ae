package chat

import (
	"errors"
	"net/http"

	"github.com/m04kA/BookingHub/internal/api/handlers"
	chatService "github.com/m04kA/BookingHub/internal/service/chat"
	"github.com/m04kA/BookingHub/internal/service/chat/models"
)

const msgChatFailed = "failed to process chat message"

type Handler struct {
	service ChatService
	logger  Logger
}

func NewHandler(service ChatService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/chat
// Любая ошибка отдаётся одним статусом 500 {"error": ...}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /chat - Invalid request body: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgChatFailed)
		return
	}

	result, err := h.service.Ask(r.Context(), &req)
	if err != nil {
		if errors.Is(err, chatService.ErrInvalidInput) {
			h.logger.Warn("POST /chat - Invalid message: %v", err)
		} else {
			h.logger.Error("POST /chat - Failed to process message: error=%v", err)
		}
		handlers.RespondError(w, http.StatusInternalServerError, msgChatFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
