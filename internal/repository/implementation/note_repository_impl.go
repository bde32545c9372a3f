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

type NoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

// NewNoteRepository binds a repository to the supplied handle, which is
// either the pool or an open transaction. The repository never reaches for
// a global connection.
func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return classifyError(err)
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, note *entity.Note) error {
	// Column map instead of Save: Save re-creates rows that no longer
	// exist, which would resurrect soft-deleted data.
	res := r.db.WithContext(ctx).
		Model(&model.Note{}).
		Where("id = ? AND deleted = ?", note.Id, false).
		Updates(map[string]interface{}{
			"name":    note.Name,
			"content": note.Content,
		})
	if res.Error != nil {
		return classifyError(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("note %d not found", note.Id)
	}

	var m model.Note
	if err := r.db.WithContext(ctx).First(&m, note.Id).Error; err != nil {
		return apperror.Storage(err)
	}
	*note = *r.mapper.ToEntity(&m)
	return nil
}

func (r *NoteRepositoryImpl) SoftDelete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Model(&model.Note{}).
		Where("id = ? AND deleted = ?", id, false).
		Update("deleted", true)
	if res.Error != nil {
		return classifyError(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("note %d not found", id)
	}
	return nil
}

func (r *NoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	var m model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Storage(err)
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var models []*model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, apperror.Storage(err)
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Note{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, apperror.Storage(err)
	}
	return count, nil
}
