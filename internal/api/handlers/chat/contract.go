package chat

import (
	"context"

	"github.com/m04kA/BookingHub/internal/service/chat/models"
)

type ChatService interface {
	Ask(ctx context.Context, req *models.Request) (*models.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
