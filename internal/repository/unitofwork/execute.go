package unitofwork

import (
	"context"
)

// Execute runs fn between Begin and Commit, rolling back on error or panic.
// Every exit path ends in exactly one of commit or rollback, including
// request cancellation surfacing as an error from inside fn.
func Execute(ctx context.Context, uow UnitOfWork, fn func(uow UnitOfWork) error) (err error) {
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = uow.Rollback()
			panic(r)
		}
	}()

	if err = fn(uow); err != nil {
		_ = uow.Rollback()
		return err
	}

	return uow.Commit()
}
