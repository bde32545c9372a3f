package service

import (
	"context"

	"notekeeper-be/internal/apperror"
	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/repository/specification"
	"notekeeper-be/internal/repository/unitofwork"
)

type ITaskService interface {
	List(ctx context.Context, req *dto.ListTasksRequest) ([]*dto.TaskResponse, error)
	Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	Update(ctx context.Context, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	Delete(ctx context.Context, id uint) (*dto.TaskResponse, error)
}

type taskService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTaskService(uowFactory unitofwork.RepositoryFactory) ITaskService {
	return &taskService{
		uowFactory: uowFactory,
	}
}

func taskListSpecs(req *dto.ListTasksRequest) []specification.Specification {
	specs := []specification.Specification{}
	if req.Name != nil {
		specs = append(specs, specification.NameEquals{Name: *req.Name})
	}
	if req.Content != nil {
		specs = append(specs, specification.ContentContains{Fragment: *req.Content})
	}
	if req.Complete != nil {
		specs = append(specs, specification.CompleteIs{Complete: *req.Complete})
	}
	if req.Deleted != nil {
		specs = append(specs, specification.DeletedIs{Deleted: *req.Deleted})
	} else {
		specs = append(specs, specification.NotDeleted{})
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	specs = append(specs,
		specification.OrderBy{Field: "id"},
		specification.Pagination{Limit: limit, Offset: req.Offset},
	)
	return specs
}

func (s *taskService) List(ctx context.Context, req *dto.ListTasksRequest) ([]*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tasks, err := uow.TaskRepository().FindAll(ctx, taskListSpecs(req)...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TaskResponse, len(tasks))
	for i, t := range tasks {
		res[i] = taskToResponse(t)
	}
	return res, nil
}

func (s *taskService) Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	task := entity.Task{
		Name:    req.Name,
		Content: req.Content,
	}
	if req.Complete != nil {
		task.Complete = *req.Complete
	}

	err := unitofwork.Execute(ctx, uow, func(uow unitofwork.UnitOfWork) error {
		return uow.TaskRepository().Create(ctx, &task)
	})
	if err != nil {
		return nil, err
	}

	return taskToResponse(&task), nil
}

func (s *taskService) Update(ctx context.Context, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var task *entity.Task
	err := unitofwork.Execute(ctx, uow, func(uow unitofwork.UnitOfWork) error {
		repo := uow.TaskRepository()

		existing, err := repo.FindOne(ctx, specification.ByID{ID: req.Id}, specification.NotDeleted{})
		if err != nil {
			return err
		}
		if existing == nil {
			return apperror.NotFound("task %d not found", req.Id)
		}

		if req.Name != nil {
			existing.Name = *req.Name
		}
		if req.Content != nil {
			existing.Content = req.Content
		}
		if req.Complete != nil {
			existing.Complete = *req.Complete
		}

		if err := repo.Update(ctx, existing); err != nil {
			return err
		}
		task = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return taskToResponse(task), nil
}

func (s *taskService) Delete(ctx context.Context, id uint) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var task *entity.Task
	err := unitofwork.Execute(ctx, uow, func(uow unitofwork.UnitOfWork) error {
		repo := uow.TaskRepository()

		if err := repo.SoftDelete(ctx, id); err != nil {
			return err
		}

		deleted, err := repo.FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return err
		}
		if deleted == nil {
			return apperror.NotFound("task %d not found", id)
		}
		task = deleted
		return nil
	})
	if err != nil {
		return nil, err
	}

	return taskToResponse(task), nil
}

func taskToResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		Id:        t.Id,
		Name:      t.Name,
		Content:   t.Content,
		Complete:  t.Complete,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		Deleted:   t.Deleted,
	}
}
