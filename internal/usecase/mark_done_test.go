package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/runoshun/todo/internal/usecase"
)

func TestMarkDone_Execute(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository("a", "b", "c")
	logger := &testutil.MockLogger{}
	uc := usecase.NewMarkDone(repo, logger)

	// Execute
	out, err := uc.Execute(context.Background(), usecase.MarkDoneInput{Index: 2})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.Task{Index: 2, Description: "b", Done: true}, out.Task)
	assert.False(t, out.AlreadyDone)
	assert.False(t, repo.Tasks[0].Done)
	assert.True(t, repo.Tasks[1].Done)
	assert.False(t, repo.Tasks[2].Done)
	assert.Equal(t, []string{"INFO task: task 2 done"}, logger.Entries)
}

func TestMarkDone_Execute_AlreadyDone(t *testing.T) {
	repo := testutil.NewMockTaskRepository("x:a")

	out, err := usecase.NewMarkDone(repo, nil).Execute(context.Background(), usecase.MarkDoneInput{Index: 1})
	require.NoError(t, err)
	assert.True(t, out.AlreadyDone)
	assert.True(t, repo.Tasks[0].Done)
}

func TestMarkDone_Execute_OutOfRange(t *testing.T) {
	for _, index := range []int{0, -1, 3, 100} {
		repo := testutil.NewMockTaskRepository("a", "b")
		logger := &testutil.MockLogger{}

		_, err := usecase.NewMarkDone(repo, logger).Execute(context.Background(), usecase.MarkDoneInput{Index: index})

		assert.ErrorIs(t, err, domain.ErrInvalidIndex, "index %d", index)
		assert.Zero(t, repo.SaveCalls, "index %d must not write", index)
		assert.False(t, repo.Tasks[0].Done)
		assert.False(t, repo.Tasks[1].Done)
		require.Len(t, logger.Entries, 1)
	}
}

func TestMarkDone_Execute_EmptyList(t *testing.T) {
	repo := testutil.NewMockTaskRepository()

	_, err := usecase.NewMarkDone(repo, nil).Execute(context.Background(), usecase.MarkDoneInput{Index: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidIndex)
}

func TestMarkDone_Execute_SaveError(t *testing.T) {
	repo := testutil.NewMockTaskRepository("a")
	repo.SaveErr = errors.New("read-only file system")

	_, err := usecase.NewMarkDone(repo, nil).Execute(context.Background(), usecase.MarkDoneInput{Index: 1})
	assert.ErrorIs(t, err, repo.SaveErr)
	assert.NotErrorIs(t, err, domain.ErrInvalidIndex)
}
