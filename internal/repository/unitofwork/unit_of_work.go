package unitofwork

import (
	"context"

	"notekeeper-be/internal/repository/contract"
)

// UnitOfWork scopes repository calls to one connection, and optionally one
// transaction. A unit owns at most a single transaction for its whole
// lifetime; there is no nesting.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NoteRepository() contract.NoteRepository
	TaskRepository() contract.TaskRepository
	SettingRepository() contract.SettingRepository
}
