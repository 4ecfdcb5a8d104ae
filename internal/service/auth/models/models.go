package models

// Identity аутентифицированный пользователь
type Identity struct {
	ID      string
	Name    string
	Email   string
	IsAdmin bool
}

// Request модели

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest запрос на регистрацию
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response модели

// UserResponse публичные данные пользователя
type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// AuthResponse токен и пользователь
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// FromIdentity конвертирует Identity в DTO
func FromIdentity(id *Identity) UserResponse {
	return UserResponse{
		ID:      id.ID,
		Name:    id.Name,
		Email:   id.Email,
		IsAdmin: id.IsAdmin,
	}
}
