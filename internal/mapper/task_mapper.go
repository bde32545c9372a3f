package mapper

import (
	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/model"
)

type TaskMapper struct{}

func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

func (m *TaskMapper) ToEntity(t *model.Task) *entity.Task {
	if t == nil {
		return nil
	}

	return &entity.Task{
		Id:        t.Id,
		Name:      t.Name,
		Content:   t.Content,
		Complete:  t.Complete,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		Deleted:   t.Deleted,
	}
}

func (m *TaskMapper) ToModel(t *entity.Task) *model.Task {
	if t == nil {
		return nil
	}

	return &model.Task{
		Id:        t.Id,
		Name:      t.Name,
		Content:   t.Content,
		Complete:  t.Complete,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		Deleted:   t.Deleted,
	}
}

func (m *TaskMapper) ToEntities(tasks []*model.Task) []*entity.Task {
	entities := make([]*entity.Task, len(tasks))
	for i, t := range tasks {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
