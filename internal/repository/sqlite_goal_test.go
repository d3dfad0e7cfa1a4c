package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nimbus/internal/testutil"
)

func TestGoalRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteGoalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	goal := testutil.NewTestGoal("alice@example.com", "Read 12 books", 12)
	require.NoError(t, repo.Create(ctx, goal))

	fetched, err := repo.GetByID(ctx, "alice@example.com", goal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Read 12 books", fetched.Title)
	assert.Equal(t, 12, fetched.Target)
	assert.Equal(t, 0, fetched.Progress)
	assert.Nil(t, fetched.DueDate)
}

func TestGoalRepo_NullableDueDate(t *testing.T) {
	repo := NewSQLiteGoalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	due := time.Now().UTC().Add(30 * 24 * time.Hour).Truncate(time.Second)
	goal := testutil.NewTestGoal("alice@example.com", "Ship v1", 1)
	goal.DueDate = &due
	require.NoError(t, repo.Create(ctx, goal))

	fetched, err := repo.GetByID(ctx, "alice@example.com", goal.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.DueDate)
	assert.True(t, due.Equal(*fetched.DueDate))
}

func TestGoalRepo_UpdateProgress(t *testing.T) {
	repo := NewSQLiteGoalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	goal := testutil.NewTestGoal("alice@example.com", "Run 100km", 100)
	require.NoError(t, repo.Create(ctx, goal))

	goal.Progress = 42
	require.NoError(t, repo.Update(ctx, goal))

	fetched, err := repo.GetByID(ctx, "alice@example.com", goal.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, fetched.Progress)
}

func TestGoalRepo_DeleteAndNotFound(t *testing.T) {
	repo := NewSQLiteGoalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	goal := testutil.NewTestGoal("alice@example.com", "Temporary", 1)
	require.NoError(t, repo.Create(ctx, goal))
	require.NoError(t, repo.Delete(ctx, "alice@example.com", goal.ID))

	_, err := repo.GetByID(ctx, "alice@example.com", goal.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "alice@example.com", goal.ID), ErrNotFound)
}

func TestGoalRepo_UserIsolation(t *testing.T) {
	repo := NewSQLiteGoalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	goal := testutil.NewTestGoal("alice@example.com", "Alice's goal", 5)
	require.NoError(t, repo.Create(ctx, goal))

	_, err := repo.GetByID(ctx, "bob@example.com", goal.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := repo.ListByUser(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Empty(t, list)
}
