package main

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/pagination/internal/repository/memory"
	"github.com/maxviazov/pagination/internal/service"
)

func TestSeedInputs(t *testing.T) {
	until := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	in := seedInputs(3, until)

	require.Len(t, in, 3)
	assert.Equal(t, "databases-notes-1", in[0].Slug)
	assert.Equal(t, until, in[2].PublishedAt)
	assert.Equal(t, until.AddDate(0, 0, -2), in[0].PublishedAt)
}

func TestSeed_OnlyFillsEmptyCatalogue(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := service.NewArticleService(store, store, zerolog.New(io.Discard))

	require.NoError(t, seed(ctx, store, svc, 0))
	n, _ := store.Count(ctx)
	assert.Zero(t, n)

	require.NoError(t, seed(ctx, store, svc, 30))
	n, _ = store.Count(ctx)
	assert.Equal(t, 30, n)

	require.NoError(t, seed(ctx, store, svc, 30))
	n, _ = store.Count(ctx)
	assert.Equal(t, 30, n, "second run must not duplicate")
}
