package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"penguin-api/internal/domain/penguins"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPenguinRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewPenguinRepo()
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, penguins.Penguin{
		Species:     "Emperor",
		FirstName:   "Pingu",
		Description: "likes to slide on ice",
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	later := now.Add(time.Minute)
	updated, err := repo.Update(ctx, created.ID, penguins.Patch{Species: strPtr("Royal")}, later)
	require.NoError(t, err)
	assert.Equal(t, "Royal", updated.Species)
	assert.Equal(t, "Pingu", updated.FirstName)
	assert.Equal(t, "likes to slide on ice", updated.Description)
	assert.Equal(t, later, updated.UpdatedAt)
	assert.Equal(t, now, updated.CreatedAt)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.Equal(t, penguins.KindNotFound, penguins.KindOf(err))

	err = repo.Delete(ctx, created.ID)
	assert.Equal(t, penguins.KindNotFound, penguins.KindOf(err))
}

func TestPenguinRepo_MalformedIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewPenguinRepo()

	_, err := repo.GetByID(ctx, "InvalidId")
	assert.Equal(t, penguins.KindInvalidID, penguins.KindOf(err))

	_, err = repo.Update(ctx, "InvalidId", penguins.Patch{}, time.Now())
	assert.Equal(t, penguins.KindInvalidID, penguins.KindOf(err))

	err = repo.Delete(ctx, "InvalidId")
	assert.Equal(t, penguins.KindInvalidID, penguins.KindOf(err))
	assert.ErrorIs(t, err, penguins.ErrInvalidID)
}

func TestPenguinRepo_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewPenguinRepo()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	names := []string{"a", "b", "c", "d", "e"}
	ts := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	for _, n := range names {
		_, err := repo.Create(ctx, penguins.Penguin{Species: "Adelie", FirstName: n, CreatedAt: ts, UpdatedAt: ts})
		require.NoError(t, err)
	}

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(names))
	for i, p := range list {
		assert.Equal(t, names[i], p.FirstName)
	}
}

func TestPenguinRepo_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewPenguinRepo()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, penguins.Penguin{Species: "Gentoo", FirstName: "x"})
		}()
	}
	wg.Wait()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 50)
}
