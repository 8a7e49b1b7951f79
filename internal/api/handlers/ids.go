package handlers

import "github.com/google/uuid"

// ValidID true для идентификатора в формате UUID.
// Записей с другими идентификаторами в БД нет, такой запрос отвечает 404
func ValidID(id string) bool {
	return uuid.Validate(id) == nil
}
