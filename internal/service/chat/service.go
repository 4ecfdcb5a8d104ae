package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/BookingHub/internal/domain"
	"github.com/m04kA/BookingHub/internal/integrations/openai"
	"github.com/m04kA/BookingHub/internal/service/chat/models"
)

const maxMessageRunes = 2000

// Service ассистент по бронированию
type Service struct {
	completer   Completer
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает сервис чата
func NewService(completer Completer, serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		completer:   completer,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Ask отправляет сообщение пользователя модели вместе с актуальным каталогом
func (s *Service) Ask(ctx context.Context, req *models.Request) (*models.Response, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(message) > maxMessageRunes {
		return nil, fmt.Errorf("%w: message is longer than %d characters", ErrInvalidInput, maxMessageRunes)
	}

	// 1. Каталог для системного промпта
	services, err := s.serviceRepo.List(ctx, domain.ServiceFilter{})
	if err != nil {
		s.logger.Error("Ask: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: Ask - list services: %v", ErrInternal, err)
	}

	// 2. Запрос к модели
	answer, err := s.completer.Complete(ctx, []openai.Message{
		{Role: openai.RoleSystem, Content: buildSystemPrompt(services)},
		{Role: openai.RoleUser, Content: message},
	})
	if err != nil {
		if errors.Is(err, openai.ErrNotConfigured) {
			s.logger.Warn("Ask: assistant is not configured")
			return nil, ErrUnavailable
		}
		s.logger.Error("Ask: completion failed: %v", err)
		return nil, fmt.Errorf("%w: Ask - completion: %v", ErrInternal, err)
	}

	s.logger.Info("Ask: answered message of %d characters", utf8.RuneCountInString(message))
	return &models.Response{Response: answer}, nil
}
