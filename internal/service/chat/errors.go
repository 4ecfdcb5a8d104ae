package chat

import "errors"

var (
	// ErrInvalidInput возвращается для пустого или слишком длинного сообщения
	ErrInvalidInput = errors.New("chat: invalid input data")

	// ErrUnavailable возвращается, когда ассистент не настроен
	ErrUnavailable = errors.New("chat: assistant is not configured")

	// ErrInternal возвращается при ошибке модели или каталога
	ErrInternal = errors.New("chat: internal error")
)
