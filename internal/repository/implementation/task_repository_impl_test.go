package implementation

import (
	"context"
	"testing"

	"notekeeper-be/internal/apperror"
	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepositoryLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := entity.Task{Name: "t1", Content: strPtr("todo")}
	require.NoError(t, repo.Create(ctx, &task))
	assert.NotZero(t, task.Id)
	assert.False(t, task.Complete)

	task.Complete = true
	require.NoError(t, repo.Update(ctx, &task))
	assert.True(t, task.Complete)

	require.NoError(t, repo.SoftDelete(ctx, task.Id))
	assert.ErrorIs(t, repo.SoftDelete(ctx, task.Id), apperror.ErrNotFound)

	got, err := repo.FindOne(ctx, specification.ByID{ID: task.Id})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Deleted)
	assert.True(t, got.Complete, "completion flag survives soft delete")
}

func TestTaskRepositoryDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := entity.Task{Name: "t1"}
	require.NoError(t, repo.Create(ctx, &task))

	dup := entity.Task{Name: "t1"}
	assert.ErrorIs(t, repo.Create(ctx, &dup), apperror.ErrConflict)
}

func TestTaskRepositoryCompleteFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	done := true
	for _, tk := range []entity.Task{
		{Name: "open-1"},
		{Name: "done-1", Complete: done},
		{Name: "open-2"},
	} {
		task := tk
		require.NoError(t, repo.Create(ctx, &task))
	}

	tasks, err := repo.FindAll(ctx,
		specification.CompleteIs{Complete: true},
		specification.NotDeleted{},
		specification.OrderBy{Field: "id"},
	)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "done-1", tasks[0].Name)
}
