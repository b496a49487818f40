package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstrand/flashdeck/internal/domain"
	"github.com/jstrand/flashdeck/internal/platform/memory"
	"github.com/jstrand/flashdeck/internal/store"
)

func sampleCards() []domain.Flashcard {
	return []domain.Flashcard{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
	}
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	t.Parallel()

	s := memory.NewSetStore()
	ctx := context.Background()

	first, err := s.Create(ctx, "First", sampleCards())
	require.NoError(t, err)
	assert.Equal(t, "1", first.ID)

	second, err := s.Create(ctx, "Second", sampleCards())
	require.NoError(t, err)
	assert.Equal(t, "2", second.ID)
}

func TestCreateRejectsInvalidCards(t *testing.T) {
	t.Parallel()

	s := memory.NewSetStore()
	ctx := context.Background()

	_, err := s.Create(ctx, "Broken", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrNoCards)

	// A failed create must not consume an ID.
	set, err := s.Create(ctx, "OK", sampleCards())
	require.NoError(t, err)
	assert.Equal(t, "1", set.ID)
}

func TestGet(t *testing.T) {
	t.Parallel()

	s := memory.NewSetStore()
	ctx := context.Background()

	created, err := s.Create(ctx, "Chemistry", sampleCards())
	require.NoError(t, err)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chemistry", got.Title)
	assert.Equal(t, sampleCards(), got.Cards)

	_, err = s.Get(ctx, "999")
	assert.ErrorIs(t, err, store.ErrSetNotFound)
}

func TestListInsertionOrder(t *testing.T) {
	t.Parallel()

	s := memory.NewSetStore()
	ctx := context.Background()

	titles := []string{"Alpha", "Beta", "Gamma"}
	for _, title := range titles {
		_, err := s.Create(ctx, title, sampleCards())
		require.NoError(t, err)
	}

	summaries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, len(titles))
	for i, want := range titles {
		assert.Equal(t, want, summaries[i].Title)
		assert.Equal(t, fmt.Sprintf("%d", i+1), summaries[i].ID)
	}
}

func TestListEmptyStore(t *testing.T) {
	t.Parallel()

	s := memory.NewSetStore()

	summaries, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

// TestConcurrentCreates verifies that parallel creates never produce duplicate
// IDs and every set remains retrievable.
func TestConcurrentCreates(t *testing.T) {
	t.Parallel()

	s := memory.NewSetStore()
	ctx := context.Background()

	const n = 50
	ids := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			set, err := s.Create(ctx, fmt.Sprintf("set-%d", i), sampleCards())
			assert.NoError(t, err)
			ids <- set.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate ID %s", id)
		seen[id] = true

		_, err := s.Get(ctx, id)
		assert.NoError(t, err)
	}
	assert.Len(t, seen, n)
}
