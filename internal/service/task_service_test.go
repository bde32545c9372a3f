package service

import (
	"context"
	"testing"

	"notekeeper-be/internal/apperror"
	"notekeeper-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskServiceLifecycle(t *testing.T) {
	factory, _ := setupTestFactory(t)
	svc := NewTaskService(factory)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateTaskRequest{Name: "t1", Content: strPtr("todo")})
	require.NoError(t, err)
	assert.False(t, created.Complete)

	updated, err := svc.Update(ctx, &dto.UpdateTaskRequest{Id: created.Id, Complete: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Complete)
	assert.Equal(t, "todo", *updated.Content, "content untouched when not supplied")

	deleted, err := svc.Delete(ctx, created.Id)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)
	assert.True(t, deleted.Complete)

	_, err = svc.Delete(ctx, created.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestTaskServiceListFilters(t *testing.T) {
	factory, _ := setupTestFactory(t)
	svc := NewTaskService(factory)
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateTaskRequest{Name: "open-1"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &dto.CreateTaskRequest{Name: "done-1", Complete: boolPtr(true)})
	require.NoError(t, err)

	list, err := svc.List(ctx, &dto.ListTasksRequest{Complete: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "done-1", list[0].Name)

	list, err = svc.List(ctx, &dto.ListTasksRequest{Name: strPtr("open-1")})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Complete)
}

func TestTaskServiceDuplicateName(t *testing.T) {
	factory, _ := setupTestFactory(t)
	svc := NewTaskService(factory)
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateTaskRequest{Name: "t1"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &dto.CreateTaskRequest{Name: "t1"})
	assert.ErrorIs(t, err, apperror.ErrConflict)
}
