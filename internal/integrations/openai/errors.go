package openai

import "errors"

var (
	// ErrNotConfigured возвращается, когда не задан API ключ
	ErrNotConfigured = errors.New("openai client: api key is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("openai client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("openai client: invalid response")

	// ErrEmptyCompletion возвращается, когда модель не вернула ни одного варианта
	ErrEmptyCompletion = errors.New("openai client: empty completion")
)
