package resources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GymConsole/internal/export"
	resourceRepo "github.com/m04kA/SMC-GymConsole/internal/infra/storage/resource"
	"github.com/m04kA/SMC-GymConsole/internal/listing"
	"github.com/m04kA/SMC-GymConsole/internal/validation"
)

// Options ограничения размера страницы
type Options struct {
	DefaultPerPage int
	MaxPerPage     int
}

// Service CRUD, поиск, пагинация и выгрузка одной справочной таблицы
type Service[T any, PT Row[T]] struct {
	repo    Repository[T]
	spec    Spec[T]
	options Options
	newID   func() string
	logger  Logger
}

// NewService создает сервис таблицы
func NewService[T any, PT Row[T]](repo Repository[T], spec Spec[T], options Options, logger Logger) *Service[T, PT] {
	return &Service[T, PT]{
		repo:    repo,
		spec:    spec,
		options: options,
		newID:   uuid.NewString,
		logger:  logger,
	}
}

// Name имя ресурса в URL и имени файла выгрузки
func (s *Service[T, PT]) Name() string {
	return s.spec.Name
}

// List страница таблицы с поиском и фильтрами. Аналитика считается
// по всем отфильтрованным записям, а не только по текущей странице
func (s *Service[T, PT]) List(ctx context.Context, req ListRequest) (*listing.Envelope[T], error) {
	s.logger.Info("List: %s page=%d perPage=%d search=%q filters=%v",
		s.spec.Name, req.Page, req.PerPage, req.Search, req.Filters)

	filtered, err := s.filtered(ctx, "List", req.Search, req.Filters)
	if err != nil {
		return nil, err
	}

	page := listing.Paginate(filtered, req.Page, s.perPage(req.PerPage))

	var analytics any
	if s.spec.Analytics != nil {
		analytics = s.spec.Analytics(filtered)
	}

	envelope := listing.NewEnvelope(page, analytics)
	return &envelope, nil
}

// Get запись по ID
func (s *Service[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.repositoryError("Get", id, err)
	}
	return item, nil
}

// Create проверяет и сохраняет новую запись, ID генерируется здесь
func (s *Service[T, PT]) Create(ctx context.Context, item *T) (*T, error) {
	s.logger.Info("Create: creating %s record", s.spec.Name)

	if err := s.prepare(item); err != nil {
		s.logger.Warn("Create: %s validation failed: %v", s.spec.Name, err)
		return nil, err
	}

	PT(item).SetID(s.newID())
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, s.repositoryError("Create", PT(item).GetID(), err)
	}

	s.logger.Info("Create: %s record id=%s created", s.spec.Name, PT(item).GetID())
	return item, nil
}

// Update перезаписывает запись целиком
func (s *Service[T, PT]) Update(ctx context.Context, id string, item *T) (*T, error) {
	s.logger.Info("Update: updating %s record id=%s", s.spec.Name, id)

	if err := s.prepare(item); err != nil {
		s.logger.Warn("Update: %s validation failed: %v", s.spec.Name, err)
		return nil, err
	}

	PT(item).SetID(id)
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, s.repositoryError("Update", id, err)
	}

	return item, nil
}

// Delete удаляет запись
func (s *Service[T, PT]) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting %s record id=%s", s.spec.Name, id)

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.repositoryError("Delete", id, err)
	}
	return nil
}

// Export пишет отфильтрованную таблицу в w в формате csv или xlsx
func (s *Service[T, PT]) Export(ctx context.Context, req ExportRequest, w io.Writer) error {
	s.logger.Info("Export: %s format=%s search=%q", s.spec.Name, req.Format, req.Search)

	f, err := export.ParseFormat(req.Format)
	if err != nil {
		s.logger.Warn("Export: %v", err)
		return err
	}

	filtered, err := s.filtered(ctx, "Export", req.Search, req.Filters)
	if err != nil {
		return err
	}

	if err := export.Write(w, f, s.spec.Name, s.spec.Columns, filtered); err != nil {
		s.logger.Error("Export: failed to write %s export: %v", s.spec.Name, err)
		return fmt.Errorf("%w: Export - %v", ErrInternal, err)
	}

	s.logger.Info("Export: %d %s records exported", len(filtered), s.spec.Name)
	return nil
}

func (s *Service[T, PT]) filtered(ctx context.Context, method, search string, filters map[string]string) ([]T, error) {
	for field := range filters {
		if !slices.Contains(s.spec.FilterFields, field) {
			s.logger.Warn("%s: %s has no filter %q", method, s.spec.Name, field)
			return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, field)
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("%s: repository error for %s: %v", method, s.spec.Name, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	return listing.Filter(items, listing.Query{
		Search:       search,
		SearchFields: s.spec.SearchFields,
		Filters:      filters,
	}), nil
}

func (s *Service[T, PT]) prepare(item *T) error {
	if s.spec.Normalize != nil {
		s.spec.Normalize(item)
	}
	return validation.Struct(item)
}

func (s *Service[T, PT]) perPage(requested int) int {
	if requested <= 0 {
		return s.options.DefaultPerPage
	}
	if s.options.MaxPerPage > 0 && requested > s.options.MaxPerPage {
		return s.options.MaxPerPage
	}
	return requested
}

func (s *Service[T, PT]) repositoryError(method, id string, err error) error {
	switch {
	case errors.Is(err, resourceRepo.ErrNotFound):
		s.logger.Warn("%s: %s record id=%s not found", method, s.spec.Name, id)
		return ErrNotFound
	case errors.Is(err, resourceRepo.ErrDuplicate):
		s.logger.Warn("%s: %s record id=%s duplicates an existing one", method, s.spec.Name, id)
		return ErrDuplicate
	default:
		s.logger.Error("%s: repository error for %s id=%s: %v", method, s.spec.Name, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
}
