package storage

import (
	"errors"

	"github.com/lib/pq"
)

const (
	uniqueViolationCode      = "23505"
	serializationFailureCode = "40001"
)

// IsUniqueViolation возвращает true для ошибки нарушения уникального индекса Postgres
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode
	}
	return false
}

// IsUniqueViolationOf возвращает true для нарушения конкретного уникального ограничения или индекса
func IsUniqueViolationOf(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode && pqErr.Constraint == constraint
	}
	return false
}

// IsSerializationFailure возвращает true, если транзакция SERIALIZABLE не может быть применена
// из-за конкурентного изменения тех же строк
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == serializationFailureCode
	}
	return false
}
