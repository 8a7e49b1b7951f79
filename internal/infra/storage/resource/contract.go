package resource

import (
	"github.com/m04kA/SMC-GymConsole/internal/domain"
	"github.com/m04kA/SMC-GymConsole/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Row ограничение на указатель записи справочной таблицы
type Row[T any] interface {
	*T
	domain.Resource
}

// Table описание таблицы: имя, колонки и привязка полей записи к колонкам.
// id, created_at и updated_at обрабатываются репозиторием
type Table[T any] struct {
	Name       string
	Columns    []string
	DateColumn string // колонка даты для выборки за период; пустая, если её нет

	// Values значения колонок в порядке Columns для INSERT/UPDATE
	Values func(item *T) []interface{}
	// Targets указатели на поля в порядке Columns для Scan
	Targets func(item *T) []interface{}
}
