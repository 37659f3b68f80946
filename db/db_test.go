package db_test

import (
	"testing"
	"time"

	"github.com/mundomaya/hoteles/db"
	"github.com/mundomaya/hoteles/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectToMemoryDB(t *testing.T) {
	t.Run("should insert and gather correctly", func(t *testing.T) {
		storage, err := db.ConnectDB(":memory:")
		require.NoError(t, err)

		defer storage.Close()

		items, err := storage.GatherCounts()
		require.NoError(t, err)
		assert.Empty(t, items)

		for i := range 3 {
			require.NoError(t, storage.Store(&model.ModalEvent{MountID: string(rune('a' + i)), Kind: model.ModalShown}))
		}

		require.NoError(t, storage.Store(&model.ModalEvent{MountID: "a", Kind: model.ModalDismissed, Reason: "close"}))
		require.NoError(t, storage.Store(&model.ModalEvent{MountID: "b", Kind: model.ModalDismissed, Reason: "backdrop"}))
		require.NoError(t, storage.Store(&model.ModalEvent{MountID: "c", Kind: model.ModalDismissed, Reason: "backdrop"}))
		require.NoError(t, storage.Store(&model.ModalEvent{MountID: "d", Kind: model.ModalCancelled}))

		items, err = storage.GatherCounts()
		require.NoError(t, err)

		assert.Equal(t, []model.EventCount{
			{Kind: model.ModalCancelled, Reason: "", Count: 1},
			{Kind: model.ModalDismissed, Reason: "backdrop", Count: 2},
			{Kind: model.ModalDismissed, Reason: "close", Count: 1},
			{Kind: model.ModalShown, Reason: "", Count: 3},
		}, items)
	})
}

func TestAllIterator(t *testing.T) {
	storage, err := db.ConnectDB(":memory:")
	require.NoError(t, err)

	defer storage.Close()

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, storage.Store(&model.ModalEvent{MountID: "m", Kind: model.ModalShown, Timestamp: start}))
	require.NoError(t, storage.Store(&model.ModalEvent{
		MountID: "m", Kind: model.ModalDismissed, Reason: "close", Timestamp: start.Add(time.Second),
	}))

	t.Run("should yield every event in order", func(t *testing.T) {
		collected := make([]model.ModalEvent, 0)
		for e, err := range storage.AllIterator() {
			require.NoError(t, err)
			collected = append(collected, e)
		}

		require.Len(t, collected, 2)
		assert.Equal(t, model.ModalShown, collected[0].Kind)
		assert.Equal(t, model.ModalDismissed, collected[1].Kind)
		assert.Equal(t, "close", collected[1].Reason)
		assert.True(t, start.Equal(collected[0].Timestamp))
	})

	t.Run("should not hold the connection when never ranged", func(t *testing.T) {
		_ = storage.AllIterator()

		require.NoError(t, storage.Store(&model.ModalEvent{MountID: "n", Kind: model.ModalCancelled, Timestamp: start.Add(time.Minute)}))

		counts, err := storage.GatherCounts()
		require.NoError(t, err)
		assert.Len(t, counts, 3)
	})

	t.Run("should release the connection on early break", func(t *testing.T) {
		for _, err := range storage.AllIterator() {
			require.NoError(t, err)

			break
		}

		counts, err := storage.GatherCounts()
		require.NoError(t, err)
		assert.NotEmpty(t, counts)

		seen := 0
		for range storage.AllIterator() {
			seen++
		}

		assert.GreaterOrEqual(t, seen, 2)
	})
}

func TestAllIteratorClosed(t *testing.T) {
	storage, err := db.ConnectDB(":memory:")
	require.NoError(t, err)

	storage.Close()

	for _, err := range storage.AllIterator() {
		require.ErrorContains(t, err, "could not query events")
	}
}

func TestNop(t *testing.T) {
	var storage db.Storage = db.Nop{}

	require.NoError(t, storage.Store(&model.ModalEvent{Kind: model.ModalShown}))

	counts, err := storage.GatherCounts()
	require.NoError(t, err)
	assert.Empty(t, counts)

	for range storage.AllIterator() {
		t.Fatal("nop storage yielded an event")
	}
}
