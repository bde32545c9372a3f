package contract

import (
	"context"

	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/repository/specification"
)

// SettingRepository backs the trusted internal endpoints. Rows in the
// internal table are keyed by name and hard-deleted; no soft-delete
// filtering applies here.
type SettingRepository interface {
	Create(ctx context.Context, setting *entity.Setting) error
	UpdateByName(ctx context.Context, name string, value int64) (*entity.Setting, error)
	DeleteByName(ctx context.Context, name string) (*entity.Setting, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Setting, error)
}
