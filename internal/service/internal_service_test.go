package service

import (
	"context"
	"testing"

	"notekeeper-be/internal/apperror"
	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func settingCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&model.Setting{}).Count(&count).Error)
	return count
}

func TestInternalServiceSimpleOps(t *testing.T) {
	factory, _ := setupTestFactory(t)
	svc := NewInternalService(factory)
	ctx := context.Background()

	created, err := svc.CreateSetting(ctx, &dto.CreateSettingRequest{Name: "config.ttl", Value: 3600})
	require.NoError(t, err)
	assert.NotZero(t, created.Id)

	updated, err := svc.UpdateSetting(ctx, &dto.UpdateSettingRequest{Name: "config.ttl", Value: 60})
	require.NoError(t, err)
	assert.Equal(t, int64(60), updated.Value)

	list, err := svc.ListSettings(ctx, &dto.ListSettingsRequest{Name: strPtr("config.ttl")})
	require.NoError(t, err)
	require.Len(t, list, 1)

	deleted, err := svc.DeleteSetting(ctx, "config.ttl")
	require.NoError(t, err)
	assert.Equal(t, "config.ttl", deleted.Name)

	_, err = svc.DeleteSetting(ctx, "config.ttl")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestInternalServiceTransactionalOps(t *testing.T) {
	factory, db := setupTestFactory(t)
	svc := NewInternalService(factory)
	ctx := context.Background()

	created, err := svc.CreateSettingTx(ctx, &dto.CreateSettingRequest{Name: "a", Value: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Value)
	assert.Equal(t, int64(1), settingCount(t, db))

	updated, err := svc.UpdateSettingTx(ctx, &dto.UpdateSettingRequest{Name: "a", Value: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Value)

	deleted, err := svc.DeleteSettingTx(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", deleted.Name)
	assert.Equal(t, int64(0), settingCount(t, db))
}

func TestInternalServiceInjectedFailureRollsBack(t *testing.T) {
	factory, db := setupTestFactory(t)
	svc := NewInternalService(factory)
	ctx := context.Background()

	seed, err := svc.CreateSetting(ctx, &dto.CreateSettingRequest{Name: "keep", Value: 7})
	require.NoError(t, err)

	t.Run("create", func(t *testing.T) {
		err := svc.CreateSettingTxExc(ctx, &dto.CreateSettingRequest{Name: "ghost", Value: 1})
		assert.ErrorIs(t, err, ErrInjectedFailure)
		assert.Equal(t, int64(1), settingCount(t, db), "write must be rolled back")
	})

	t.Run("update", func(t *testing.T) {
		err := svc.UpdateSettingTxExc(ctx, &dto.UpdateSettingRequest{Name: "keep", Value: 99})
		assert.ErrorIs(t, err, ErrInjectedFailure)

		list, err2 := svc.ListSettings(ctx, &dto.ListSettingsRequest{Name: strPtr("keep")})
		require.NoError(t, err2)
		require.Len(t, list, 1)
		assert.Equal(t, int64(7), list[0].Value, "value must be unchanged")
	})

	t.Run("delete", func(t *testing.T) {
		err := svc.DeleteSettingTxExc(ctx, "keep")
		assert.ErrorIs(t, err, ErrInjectedFailure)
		assert.Equal(t, int64(1), settingCount(t, db), "row must survive")
		_ = seed
	})
}
