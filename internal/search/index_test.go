package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noctale/noctale/internal/entities/catalog"
	"github.com/noctale/noctale/internal/search"
)

var testEntries = []search.Entry{
	{ID: "anilist:1", MediaID: "anilist:10", Popularity: 500_000, Role: catalog.RoleMain},
	{ID: "anilist:2", MediaID: "anilist:10", Popularity: 150_000, Role: catalog.RoleMain},
	{ID: "anilist:3", MediaID: "anilist:11", Popularity: 150_000, Role: catalog.RoleSupporting},
	{ID: "anilist:4", MediaID: "anilist:12", Popularity: 30_000, Role: catalog.RoleBackground},
}

func ids(entries []search.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestPool(t *testing.T) {
	ctx := context.Background()
	idx := search.NewFromEntries(testEntries)

	t.Run("empty filter matches everything", func(t *testing.T) {
		pool, err := idx.Pool(ctx, search.PoolFilter{})
		require.NoError(t, err)
		assert.Len(t, pool, len(testEntries))
	})

	t.Run("popularity range", func(t *testing.T) {
		upper := 200_000
		pool, err := idx.Pool(ctx, search.PoolFilter{
			Popularity: &search.Range{Lower: 50_000, Upper: &upper},
		})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"anilist:2", "anilist:3"}, ids(pool))
	})

	t.Run("unbounded upper", func(t *testing.T) {
		pool, err := idx.Pool(ctx, search.PoolFilter{
			Popularity: &search.Range{Lower: 400_000},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"anilist:1"}, ids(pool))
	})

	t.Run("range and role", func(t *testing.T) {
		role := catalog.RoleSupporting
		upper := 200_000
		pool, err := idx.Pool(ctx, search.PoolFilter{
			Popularity: &search.Range{Lower: 50_000, Upper: &upper},
			Role:       &role,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"anilist:3"}, ids(pool))
	})

	t.Run("rating filter recomputes stars", func(t *testing.T) {
		three := 3
		pool, err := idx.Pool(ctx, search.PoolFilter{Rating: &three})
		require.NoError(t, err)
		// main at 150k rates 3 stars, supporting at 150k rates 2
		assert.Equal(t, []string{"anilist:2"}, ids(pool))
	})
}

func TestSnapshot(t *testing.T) {
	pool, err := search.Snapshot().Pool(context.Background(), search.PoolFilter{})
	require.NoError(t, err)
	assert.NotEmpty(t, pool)

	for _, e := range pool {
		assert.NotEmpty(t, e.ID)
		assert.Positive(t, e.Popularity)
	}
}
