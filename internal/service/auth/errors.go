package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном email или пароле
	ErrInvalidCredentials = errors.New("auth: invalid email or password")

	// ErrInvalidToken возвращается для некорректного или просроченного токена
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrTokenRevoked возвращается для токена после выхода из системы
	ErrTokenRevoked = errors.New("auth: token revoked")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("auth: user not found")

	// ErrEmailTaken возвращается при регистрации с занятым email
	ErrEmailTaken = errors.New("auth: email already registered")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("auth: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
