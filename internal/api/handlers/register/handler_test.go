package register

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookingHub/internal/service/auth"
	"github.com/m04kA/BookingHub/internal/service/auth/models"
	"github.com/m04kA/BookingHub/pkg/logger"
)

type fakeService struct {
	got *models.RegisterRequest
	err error
}

func (f *fakeService) Register(_ context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AuthResponse{
		Token: "token",
		User:  models.UserResponse{ID: "10", Name: req.Name, Email: req.Email},
	}, nil
}

func newRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
}

func TestHandle_Created(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	w := httptest.NewRecorder()
	h.Handle(w, newRequest(`{"name":"Anna","email":"anna@example.com","password":"secret"}`))

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, "secret", svc.got.Password)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "token", resp.Token)
	assert.Equal(t, "anna@example.com", resp.User.Email)
	assert.False(t, resp.User.IsAdmin)
}

func TestHandle_Errors(t *testing.T) {
	validBody := `{"name":"Anna","email":"anna@example.com","password":"secret"}`

	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantError  string
	}{
		{name: "malformed body", body: `{`, wantStatus: http.StatusBadRequest, wantError: msgInvalidRequestBody},
		{name: "missing name", body: `{"email":"anna@example.com","password":"secret"}`, wantStatus: http.StatusBadRequest, wantError: msgValidationFailed},
		{name: "bad email", body: `{"name":"Anna","email":"anna","password":"secret"}`, wantStatus: http.StatusBadRequest, wantError: msgValidationFailed},
		{name: "long password", body: `{"name":"Anna","email":"anna@example.com","password":"` + strings.Repeat("x", 73) + `"}`, wantStatus: http.StatusBadRequest, wantError: msgValidationFailed},
		{name: "duplicate email", body: validBody, svcErr: auth.ErrEmailTaken, wantStatus: http.StatusConflict, wantError: msgEmailTaken},
		{name: "service rejects", body: validBody, svcErr: fmt.Errorf("%w: name is blank", auth.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantError: msgValidationFailed},
		{name: "internal", body: validBody, svcErr: fmt.Errorf("%w: boom", auth.ErrInternal), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.svcErr}, logger.NewNop())

			w := httptest.NewRecorder()
			h.Handle(w, newRequest(tt.body))

			assert.Equal(t, tt.wantStatus, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}
