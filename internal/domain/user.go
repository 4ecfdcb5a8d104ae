package domain

import "time"

// User зарегистрированный пользователь
type User struct {
	ID           string
	Name         string
	Email        string
	IsAdmin      bool
	PasswordHash string
	CreatedAt    time.Time
}
