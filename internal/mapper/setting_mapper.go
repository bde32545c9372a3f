package mapper

import (
	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/model"
)

type SettingMapper struct{}

func NewSettingMapper() *SettingMapper {
	return &SettingMapper{}
}

func (m *SettingMapper) ToEntity(s *model.Setting) *entity.Setting {
	if s == nil {
		return nil
	}

	return &entity.Setting{
		Id:    s.Id,
		Name:  s.Name,
		Value: s.Value,
	}
}

func (m *SettingMapper) ToModel(s *entity.Setting) *model.Setting {
	if s == nil {
		return nil
	}

	return &model.Setting{
		Id:    s.Id,
		Name:  s.Name,
		Value: s.Value,
	}
}

func (m *SettingMapper) ToEntities(settings []*model.Setting) []*entity.Setting {
	entities := make([]*entity.Setting, len(settings))
	for i, s := range settings {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
