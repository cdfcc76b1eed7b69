package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jengzang/handover-backend-go/internal/database"
	"github.com/jengzang/handover-backend-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) *EventRepository {
	t.Helper()
	db, err := database.Open(context.Background(), database.Config{Path: database.MemoryPath}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewEventRepository(db)
}

func TestEventRepository(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		repo := newRepo(t)
		meta, err := repo.Meta(ctx)
		require.NoError(t, err)
		assert.Nil(t, meta)

		rows, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("replace keeps order and meta", func(t *testing.T) {
		repo := newRepo(t)
		loaded := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
		rows := []models.EventRow{
			{Code: "B2", Description: "second", Trigger: "t", ConditionType: "c", Action: "a"},
			{Code: "A1", Description: "first, with comma", Trigger: "Ms > T", ConditionType: "Absolute", Action: "stop"},
		}
		require.NoError(t, repo.Replace(ctx, rows, models.EventTableMeta{
			Source:   models.EventSourceFile,
			Location: "./web/event_table.csv",
			LoadedAt: loaded,
		}))

		got, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, rows, got)

		meta, err := repo.Meta(ctx)
		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.Equal(t, models.EventSourceFile, meta.Source)
		assert.Equal(t, "./web/event_table.csv", meta.Location)
		assert.Equal(t, 2, meta.RowCount)
		assert.True(t, loaded.Equal(meta.LoadedAt))
	})

	t.Run("second replace overwrites", func(t *testing.T) {
		repo := newRepo(t)
		first := []models.EventRow{{Code: "A1"}, {Code: "A2"}, {Code: "A3"}}
		require.NoError(t, repo.Replace(ctx, first, models.EventTableMeta{Source: models.EventSourceRemote}))
		second := []models.EventRow{{Code: "B1"}}
		require.NoError(t, repo.Replace(ctx, second, models.EventTableMeta{Source: models.EventSourceFallback}))

		got, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, second, got)

		meta, err := repo.Meta(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.EventSourceFallback, meta.Source)
		assert.Equal(t, 1, meta.RowCount)
	})
}
