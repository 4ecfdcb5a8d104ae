package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookingHub/internal/domain"
	serviceRepo "github.com/m04kA/BookingHub/internal/infra/storage/service"
	"github.com/m04kA/BookingHub/internal/integrations/openai"
	"github.com/m04kA/BookingHub/internal/service/chat/models"
	"github.com/m04kA/BookingHub/pkg/logger"
)

type stubCompleter struct {
	messages []openai.Message
	answer   string
	err      error
}

func (c *stubCompleter) Complete(_ context.Context, messages []openai.Message) (string, error) {
	c.messages = messages
	return c.answer, c.err
}

func newTestService(t *testing.T, completer Completer) *Service {
	t.Helper()
	repo := serviceRepo.NewMemoryRepository()
	_, err := repo.Create(context.Background(), &domain.Service{
		ID: "1", Name: "Business Meeting Room", Description: "Projector included", DurationMinutes: 60, Price: 50, Category: "meeting",
	})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), &domain.Service{
		ID: "6", Name: "Hot Desk", DurationMinutes: 60, Price: 10, Category: "coworking",
	})
	require.NoError(t, err)

	return NewService(completer, repo, logger.NewNop())
}

func TestAsk(t *testing.T) {
	completer := &stubCompleter{answer: "Try the Business Meeting Room."}
	svc := newTestService(t, completer)

	resp, err := svc.Ask(context.Background(), &models.Request{Message: "  I need a room for 8 people  "})
	require.NoError(t, err)
	assert.Equal(t, "Try the Business Meeting Room.", resp.Response)

	require.Len(t, completer.messages, 2)
	assert.Equal(t, openai.RoleSystem, completer.messages[0].Role)
	assert.Contains(t, completer.messages[0].Content, "1. Business Meeting Room (meeting, 60 min, $50.00): Projector included")
	assert.Contains(t, completer.messages[0].Content, "2. Hot Desk (coworking, 60 min, $10.00)\n")
	assert.Equal(t, openai.Message{Role: openai.RoleUser, Content: "I need a room for 8 people"}, completer.messages[1])
}

func TestAsk_Errors(t *testing.T) {
	tests := []struct {
		name    string
		message string
		err     error
		want    error
	}{
		{name: "empty", message: "   ", want: ErrInvalidInput},
		{name: "too long", message: strings.Repeat("a", maxMessageRunes+1), want: ErrInvalidInput},
		{name: "not configured", message: "hi", err: openai.ErrNotConfigured, want: ErrUnavailable},
		{name: "upstream failure", message: "hi", err: errors.New("boom"), want: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, &stubCompleter{err: tt.err})
			_, err := svc.Ask(context.Background(), &models.Request{Message: tt.message})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuildSystemPrompt_EmptyCatalog(t *testing.T) {
	prompt := buildSystemPrompt(nil)
	assert.Contains(t, prompt, "no spaces in the catalog")
}
