package resources

import (
	"context"
	"io"

	"github.com/m04kA/SMC-GymConsole/internal/listing"
	"github.com/m04kA/SMC-GymConsole/internal/service/resources"
)

// ResourceService сервис одной справочной таблицы
type ResourceService[T any] interface {
	Name() string
	List(ctx context.Context, req resources.ListRequest) (*listing.Envelope[T], error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id string, item *T) (*T, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, req resources.ExportRequest, w io.Writer) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
