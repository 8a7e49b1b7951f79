package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок Postgres (SQLSTATE)
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

func code(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsUniqueViolation нарушение уникального индекса
func IsUniqueViolation(err error) bool {
	return code(err) == codeUniqueViolation
}

// IsForeignKeyViolation ссылка на несуществующую запись
func IsForeignKeyViolation(err error) bool {
	return code(err) == codeForeignKeyViolation
}

// IsSerializationFailure конфликт сериализуемых транзакций или deadlock.
// Операцию можно повторить
func IsSerializationFailure(err error) bool {
	c := code(err)
	return c == codeSerializationFailure || c == codeDeadlockDetected
}
