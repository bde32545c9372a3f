package implementation

import (
	"context"
	"errors"

	"notekeeper-be/internal/apperror"
	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/mapper"
	"notekeeper-be/internal/model"
	"notekeeper-be/internal/repository/contract"
	"notekeeper-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SettingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SettingMapper
}

func NewSettingRepository(db *gorm.DB) contract.SettingRepository {
	return &SettingRepositoryImpl{
		db:     db,
		mapper: mapper.NewSettingMapper(),
	}
}

func (r *SettingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SettingRepositoryImpl) Create(ctx context.Context, setting *entity.Setting) error {
	m := r.mapper.ToModel(setting)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return classifyError(err)
	}
	*setting = *r.mapper.ToEntity(m)
	return nil
}

func (r *SettingRepositoryImpl) UpdateByName(ctx context.Context, name string, value int64) (*entity.Setting, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Setting{}).
		Where("name = ?", name).
		Update("value", value)
	if res.Error != nil {
		return nil, classifyError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperror.NotFound("setting %q not found", name)
	}

	var m model.Setting
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		return nil, apperror.Storage(err)
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SettingRepositoryImpl) DeleteByName(ctx context.Context, name string) (*entity.Setting, error) {
	var m model.Setting
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("setting %q not found", name)
		}
		return nil, apperror.Storage(err)
	}

	res := r.db.WithContext(ctx).Where("name = ?", name).Delete(&model.Setting{})
	if res.Error != nil {
		return nil, classifyError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperror.NotFound("setting %q not found", name)
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SettingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Setting, error) {
	var models []*model.Setting
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, apperror.Storage(err)
	}
	return r.mapper.ToEntities(models), nil
}
