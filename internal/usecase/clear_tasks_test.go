package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/testutil"
	"github.com/runoshun/todo/internal/usecase"
)

func TestClearTasks_Execute(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository("a", "x:b")
	logger := &testutil.MockLogger{}

	// Execute
	out, err := usecase.NewClearTasks(repo, logger).Execute(context.Background(), usecase.ClearTasksInput{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, out.Removed)
	assert.Empty(t, repo.Tasks)
	assert.Equal(t, 1, repo.SaveCalls)
	assert.Equal(t, []string{"INFO task: tasks cleared (2 removed)"}, logger.Entries)
}

func TestClearTasks_Execute_UnreadableListStillCleared(t *testing.T) {
	repo := testutil.NewMockTaskRepository("a")
	repo.LoadErr = errors.New("malformed")

	out, err := usecase.NewClearTasks(repo, nil).Execute(context.Background(), usecase.ClearTasksInput{})
	require.NoError(t, err)
	assert.Zero(t, out.Removed)
	assert.Empty(t, repo.Tasks)
}

func TestClearTasks_Execute_SaveError(t *testing.T) {
	repo := testutil.NewMockTaskRepository("a")
	repo.SaveErr = errors.New("denied")

	_, err := usecase.NewClearTasks(repo, nil).Execute(context.Background(), usecase.ClearTasksInput{})
	assert.ErrorIs(t, err, repo.SaveErr)
}

func TestClearThenList(t *testing.T) {
	repo := testutil.NewMockTaskRepository("a", "b")
	ctx := context.Background()

	_, err := usecase.NewClearTasks(repo, nil).Execute(ctx, usecase.ClearTasksInput{})
	require.NoError(t, err)

	out, err := usecase.NewListTasks(repo, nil).Execute(ctx, usecase.ListTasksInput{})
	require.NoError(t, err)
	assert.Empty(t, out.Tasks)
}
