package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/BookingHub/internal/domain"
	userRepo "github.com/m04kA/BookingHub/internal/infra/storage/user"
	"github.com/m04kA/BookingHub/internal/service/auth/models"
)

// DemoUser встроенная учётная запись
type DemoUser struct {
	Identity models.Identity
	Password string
}

// DemoUsers учётные записи демо-стенда
func DemoUsers(password string) []DemoUser {
	return []DemoUser{
		{Identity: models.Identity{ID: "1", Name: "Admin User", Email: "admin@example.com", IsAdmin: true}, Password: password},
		{Identity: models.Identity{ID: "2", Name: "Regular User", Email: "user@example.com"}, Password: password},
	}
}

type staticUser struct {
	identity models.Identity
	hash     string
}

// StaticProvider фиксированный список пользователей
type StaticProvider struct {
	byEmail map[string]*staticUser
	byID    map[string]*staticUser
}

// NewStaticProvider хеширует пароли при создании
func NewStaticProvider(users []DemoUser) (*StaticProvider, error) {
	p := &StaticProvider{
		byEmail: make(map[string]*staticUser, len(users)),
		byID:    make(map[string]*staticUser, len(users)),
	}

	for _, u := range users {
		hash, err := HashPassword(u.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", u.Identity.Email, err)
		}
		su := &staticUser{identity: u.Identity, hash: hash}
		su.identity.Email = normalizeEmail(su.identity.Email)
		p.byEmail[su.identity.Email] = su
		p.byID[su.identity.ID] = su
	}

	return p, nil
}

func (p *StaticProvider) Authenticate(_ context.Context, email, password string) (*models.Identity, error) {
	u, ok := p.byEmail[normalizeEmail(email)]
	if !ok || ComparePassword(u.hash, password) != nil {
		return nil, ErrInvalidCredentials
	}
	id := u.identity
	return &id, nil
}

func (p *StaticProvider) Lookup(_ context.Context, id string) (*models.Identity, error) {
	u, ok := p.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	identity := u.identity
	return &identity, nil
}

func (p *StaticProvider) HasEmail(_ context.Context, email string) (bool, error) {
	_, ok := p.byEmail[normalizeEmail(email)]
	return ok, nil
}

// StoreProvider пользователи из репозитория с bcrypt-паролями
type StoreProvider struct {
	users UserRepository
}

func NewStoreProvider(users UserRepository) *StoreProvider {
	return &StoreProvider{users: users}
}

func (p *StoreProvider) Authenticate(ctx context.Context, email, password string) (*models.Identity, error) {
	u, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	if ComparePassword(u.PasswordHash, password) != nil {
		return nil, ErrInvalidCredentials
	}
	return identityFromUser(u), nil
}

func (p *StoreProvider) Lookup(ctx context.Context, id string) (*models.Identity, error) {
	u, err := p.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: Lookup - repository error: %v", ErrInternal, err)
	}
	return identityFromUser(u), nil
}

func (p *StoreProvider) HasEmail(ctx context.Context, email string) (bool, error) {
	_, err := p.users.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, userRepo.ErrUserNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("%w: HasEmail - repository error: %v", ErrInternal, err)
}

// ChainProvider опрашивает провайдеры по порядку
type ChainProvider struct {
	providers []Provider
}

func NewChainProvider(providers ...Provider) *ChainProvider {
	return &ChainProvider{providers: providers}
}

func (c *ChainProvider) Authenticate(ctx context.Context, email, password string) (*models.Identity, error) {
	for _, p := range c.providers {
		id, err := p.Authenticate(ctx, email, password)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, ErrInvalidCredentials) {
			return nil, err
		}
	}
	return nil, ErrInvalidCredentials
}

func (c *ChainProvider) Lookup(ctx context.Context, id string) (*models.Identity, error) {
	for _, p := range c.providers {
		identity, err := p.Lookup(ctx, id)
		if err == nil {
			return identity, nil
		}
		if !errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
	}
	return nil, ErrUserNotFound
}

func (c *ChainProvider) HasEmail(ctx context.Context, email string) (bool, error) {
	for _, p := range c.providers {
		ok, err := p.HasEmail(ctx, email)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func identityFromUser(u *domain.User) *models.Identity {
	return &models.Identity{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
