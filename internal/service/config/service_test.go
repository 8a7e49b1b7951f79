package config

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
	configRepo "github.com/m04kA/SMC-GymConsole/internal/infra/storage/config"
	"github.com/m04kA/SMC-GymConsole/internal/service/config/models"
	"github.com/m04kA/SMC-GymConsole/internal/validation"
	"github.com/m04kA/SMC-GymConsole/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	byBranch map[string]*domain.ScheduleConfig
	nextID   int64
	err      error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byBranch: map[string]*domain.ScheduleConfig{}}
}

func key(branchID *string) string {
	if branchID == nil {
		return ""
	}
	return *branchID
}

func (f *fakeRepo) Create(_ context.Context, c *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.byBranch[key(c.BranchID)]; ok {
		return nil, configRepo.ErrDuplicateConfig
	}
	f.nextID++
	c.ID = f.nextID
	f.byBranch[key(c.BranchID)] = c
	return c, nil
}

func (f *fakeRepo) GetByBranch(_ context.Context, branchID *string) (*domain.ScheduleConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.byBranch[key(branchID)]
	if !ok {
		return nil, configRepo.ErrConfigNotFound
	}
	return c, nil
}

func (f *fakeRepo) GetConfigWithHierarchy(ctx context.Context, branchID *string) (*domain.ScheduleConfig, error) {
	if branchID != nil {
		if c, err := f.GetByBranch(ctx, branchID); err == nil {
			return c, nil
		}
	}
	return f.GetByBranch(ctx, nil)
}

func (f *fakeRepo) Update(_ context.Context, id int64, c *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	c.ID = id
	f.byBranch[key(c.BranchID)] = c
	return c, nil
}

func (f *fakeRepo) DeleteByBranch(_ context.Context, branchID *string) error {
	if _, ok := f.byBranch[key(branchID)]; !ok {
		return configRepo.ErrConfigNotFound
	}
	delete(f.byBranch, key(branchID))
	return nil
}

const branchA = "6f1c2d3e-4b5a-4c6d-8e7f-9a0b1c2d3e4f"

func TestService_ResolveFallsBackToDefaults(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	cfg, err := svc.Resolve(context.Background(), ptr.Ptr(branchA))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSlotCapacity, cfg.DefaultCapacity)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, cfg.SlotDurationMinutes)

	resp, err := svc.Get(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, resp.IsDefault)
}

func TestService_BranchOverridesGlobal(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	_, err := svc.Upsert(ctx, &models.UpsertConfigRequest{SlotDurationMinutes: 60, DefaultCapacity: 12})
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, &models.UpsertConfigRequest{BranchID: ptr.Ptr(branchA), SlotDurationMinutes: 45, DefaultCapacity: 8, DefaultPrice: 15})
	require.NoError(t, err)

	branchCfg, err := svc.Get(ctx, ptr.Ptr(branchA))
	require.NoError(t, err)
	assert.Equal(t, 8, branchCfg.DefaultCapacity)
	assert.False(t, branchCfg.IsGlobal)

	otherCfg, err := svc.Get(ctx, ptr.Ptr("0d8f1a52-6a34-4f0e-9a3c-2c1f5b7d9e10"))
	require.NoError(t, err)
	assert.Equal(t, 12, otherCfg.DefaultCapacity)
	assert.True(t, otherCfg.IsGlobal)
}

func TestService_UpsertUpdatesExisting(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	first, err := svc.Upsert(ctx, &models.UpsertConfigRequest{SlotDurationMinutes: 60, DefaultCapacity: 10})
	require.NoError(t, err)
	second, err := svc.Upsert(ctx, &models.UpsertConfigRequest{SlotDurationMinutes: 90, DefaultCapacity: 10})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 90, second.SlotDurationMinutes)
	assert.Len(t, repo.byBranch, 1)
}

func TestService_UpsertValidates(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.Upsert(context.Background(), &models.UpsertConfigRequest{SlotDurationMinutes: 1, DefaultCapacity: 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrInvalidInput)

	var fields validation.FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Len(t, fields, 2)
}

func TestService_RepositoryErrorIsInternal(t *testing.T) {
	repo := newFakeRepo()
	repo.err = configRepo.ErrExecQuery
	svc := NewService(repo, nopLogger{})

	_, err := svc.Resolve(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_DeleteMissing(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	err := svc.Delete(context.Background(), ptr.Ptr(branchA))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}
