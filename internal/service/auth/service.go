package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/BookingHub/internal/domain"
	userRepo "github.com/m04kA/BookingHub/internal/infra/storage/user"
	"github.com/m04kA/BookingHub/internal/service/auth/models"
)

const (
	revokedKeyPrefix = "revoked:"
	// bcrypt учитывает только первые 72 байта
	maxPasswordBytes = 72
)

// Service аутентификация и выпуск токенов
type Service struct {
	provider     Provider
	users        UserRepository
	tokens       *TokenManager
	revoked      Cache
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис аутентификации
func NewService(
	provider Provider,
	users UserRepository,
	tokens *TokenManager,
	revoked Cache,
	logger Logger,
) *Service {
	return &Service{
		provider:     provider,
		users:        users,
		tokens:       tokens,
		revoked:      revoked,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Login проверяет учётные данные и выпускает токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	identity, err := s.provider.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			s.logger.Warn("Login: invalid credentials for email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: provider error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Login - provider error: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%s logged in", identity.ID)
	return s.issue(identity)
}

// Register создает обычного пользователя и выпускает токен
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	// 1. Валидация
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if err := validateRegistration(name, email, req.Password); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	// 2. Email не должен быть занят ни одним провайдером
	taken, err := s.provider.HasEmail(ctx, email)
	if err != nil {
		s.logger.Error("Register: failed to check email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Register - check email: %v", ErrInternal, err)
	}
	if taken {
		s.logger.Warn("Register: email=%s already registered", email)
		return nil, ErrEmailTaken
	}

	// 3. Сохраняем пользователя
	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.timeProvider.Now(),
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: user id=%s registered", user.ID)
	return s.issue(identityFromUser(user))
}

// Authenticate проверяет токен и возвращает пользователя
func (s *Service) Authenticate(ctx context.Context, token string) (*models.Identity, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	_, revoked, err := s.revoked.Get(ctx, revokedKeyPrefix+claims.ID)
	if err != nil {
		s.logger.Error("Authenticate: failed to check revocation for token id=%s: %v", claims.ID, err)
		return nil, fmt.Errorf("%w: Authenticate - revocation check: %v", ErrInternal, err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	return claims.Identity(), nil
}

// Logout отзывает токен до конца срока его действия
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return err
	}

	ttl := claims.ExpiresAt.Time.Sub(s.timeProvider.Now())
	if ttl <= 0 {
		return nil
	}

	if err := s.revoked.Set(ctx, revokedKeyPrefix+claims.ID, []byte(claims.Subject), ttl); err != nil {
		s.logger.Error("Logout: failed to revoke token id=%s: %v", claims.ID, err)
		return fmt.Errorf("%w: Logout - revoke token: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: token id=%s revoked for user id=%s", claims.ID, claims.Subject)
	return nil
}

// Me возвращает актуальные данные пользователя
func (s *Service) Me(ctx context.Context, userID string) (*models.UserResponse, error) {
	identity, err := s.provider.Lookup(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.logger.Warn("Me: user id=%s not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Me: provider error for user id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Me - provider error: %v", ErrInternal, err)
	}

	resp := models.FromIdentity(identity)
	return &resp, nil
}

func (s *Service) issue(identity *models.Identity) (*models.AuthResponse, error) {
	token, _, err := s.tokens.Issue(identity)
	if err != nil {
		s.logger.Error("failed to issue token for user id=%s: %v", identity.ID, err)
		return nil, fmt.Errorf("%w: issue token: %v", ErrInternal, err)
	}

	return &models.AuthResponse{
		Token: token,
		User:  models.FromIdentity(identity),
	}, nil
}

func validateRegistration(name, email, password string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: password is too long", ErrInvalidInput)
	}
	return nil
}
