package service

import (
	"context"

	"notekeeper-be/internal/apperror"
	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/repository/specification"
	"notekeeper-be/internal/repository/unitofwork"
)

type INoteService interface {
	List(ctx context.Context, req *dto.ListNotesRequest) ([]*dto.NoteResponse, error)
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id uint) (*dto.NoteResponse, error)
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory) INoteService {
	return &noteService{
		uowFactory: uowFactory,
	}
}

const defaultListLimit = 100

// listSpecs translates the filter params into query specifications.
// Soft-deleted rows stay hidden unless the caller asked for them.
func noteListSpecs(req *dto.ListNotesRequest) []specification.Specification {
	specs := []specification.Specification{}
	if req.Name != nil {
		specs = append(specs, specification.NameEquals{Name: *req.Name})
	}
	if req.Content != nil {
		specs = append(specs, specification.ContentContains{Fragment: *req.Content})
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

func (s *noteService) List(ctx context.Context, req *dto.ListNotesRequest) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx, noteListSpecs(req)...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		res[i] = noteToResponse(n)
	}
	return res, nil
}

func (s *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note := entity.Note{
		Name:    req.Name,
		Content: req.Content,
	}
	err := unitofwork.Execute(ctx, uow, func(uow unitofwork.UnitOfWork) error {
		return uow.NoteRepository().Create(ctx, &note)
	})
	if err != nil {
		return nil, err
	}

	return noteToResponse(&note), nil
}

func (s *noteService) Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var note *entity.Note
	err := unitofwork.Execute(ctx, uow, func(uow unitofwork.UnitOfWork) error {
		repo := uow.NoteRepository()

		existing, err := repo.FindOne(ctx, specification.ByID{ID: req.Id}, specification.NotDeleted{})
		if err != nil {
			return err
		}
		if existing == nil {
			return apperror.NotFound("note %d not found", req.Id)
		}

		if req.Name != nil {
			existing.Name = *req.Name
		}
		if req.Content != nil {
			existing.Content = req.Content
		}

		if err := repo.Update(ctx, existing); err != nil {
			return err
		}
		note = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return noteToResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, id uint) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var note *entity.Note
	err := unitofwork.Execute(ctx, uow, func(uow unitofwork.UnitOfWork) error {
		repo := uow.NoteRepository()

		if err := repo.SoftDelete(ctx, id); err != nil {
			return err
		}

		deleted, err := repo.FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return err
		}
		if deleted == nil {
			return apperror.NotFound("note %d not found", id)
		}
		note = deleted
		return nil
	})
	if err != nil {
		return nil, err
	}

	return noteToResponse(note), nil
}

func noteToResponse(n *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:        n.Id,
		Name:      n.Name,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
		Deleted:   n.Deleted,
	}
}
