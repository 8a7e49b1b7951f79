package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
	configRepo "github.com/m04kA/SMC-GymConsole/internal/infra/storage/config"
	"github.com/m04kA/SMC-GymConsole/internal/service/config/models"
	"github.com/m04kA/SMC-GymConsole/internal/validation"
)

// Service сервис для работы с конфигурацией расписания
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Resolve возвращает действующую конфигурацию для новых слотов филиала.
// Приоритет: филиал > глобальная > встроенные значения
func (s *Service) Resolve(ctx context.Context, branchID *string) (*domain.ScheduleConfig, error) {
	config, err := s.configRepo.GetConfigWithHierarchy(ctx, branchID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return domain.DefaultScheduleConfig(), nil
		}
		s.logger.Error("Resolve: repository error for branch=%s: %v", branchLabel(branchID), err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}
	return config, nil
}

// Get возвращает действующую конфигурацию в виде DTO
func (s *Service) Get(ctx context.Context, branchID *string) (*models.ConfigResponse, error) {
	s.logger.Info("Get: fetching schedule config for branch=%s", branchLabel(branchID))

	config, err := s.Resolve(ctx, branchID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainConfig(config), nil
}

// Upsert создает или обновляет конфигурацию филиала (или глобальную)
func (s *Service) Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Upsert: saving schedule config for branch=%s", branchLabel(req.BranchID))

	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	existing, err := s.configRepo.GetByBranch(ctx, req.BranchID)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		s.logger.Error("Upsert: failed to check existing config: %v", err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	var saved *domain.ScheduleConfig
	if existing == nil {
		saved, err = s.configRepo.Create(ctx, req.ToDomainConfig())
	} else {
		saved, err = s.configRepo.Update(ctx, existing.ID, req.ToDomainConfig())
	}

	if err != nil {
		if errors.Is(err, configRepo.ErrDuplicateConfig) || errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Upsert: config for branch=%s changed concurrently", branchLabel(req.BranchID))
			return nil, ErrConfigConflict
		}
		s.logger.Error("Upsert: repository error: %v", err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved config id=%d", saved.ID)
	return models.FromDomainConfig(saved), nil
}

// Delete удаляет конфигурацию филиала, после чего действует глобальная
func (s *Service) Delete(ctx context.Context, branchID *string) error {
	s.logger.Info("Delete: removing schedule config for branch=%s", branchLabel(branchID))

	if err := s.configRepo.DeleteByBranch(ctx, branchID); err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Delete: config for branch=%s not found", branchLabel(branchID))
			return ErrConfigNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func branchLabel(branchID *string) string {
	if branchID == nil {
		return "global"
	}
	return *branchID
}
