package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stacygol/bloglist/internal/model"
)

func TestStatsCache_NilClientIsAlwaysAMiss(t *testing.T) {
	ctx := context.Background()
	cache := NewStatsCache(nil)

	require.NoError(t, cache.Set(ctx, &model.BlogStats{TotalLikes: 5}, time.Minute))

	stats, err := cache.Get(ctx)
	require.NoError(t, err)
	require.Nil(t, stats)

	require.NoError(t, cache.Invalidate(ctx))
}
