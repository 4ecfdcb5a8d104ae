package add_time_slot

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("add_time_slot: service not found")

	// ErrSlotAlreadyExists возвращается, когда слот с таким ключом уже есть
	ErrSlotAlreadyExists = errors.New("add_time_slot: slot already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_time_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_time_slot: internal error")
)
