package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y-smart/service-tripplan/internal/domain/route"
)

func storedSearch(id string, createdAt time.Time) *TripSearch {
	return &TripSearch{
		ID:          id,
		Departure:   "수지구청역",
		Destination: "용인시청",
		Routes:      route.MockRoutes("수지구청역", "용인시청"),
		CreatedAt:   createdAt,
	}
}

func TestTripStore_SaveAndFind(t *testing.T) {
	store := NewTripStore(time.Minute)
	store.Save(storedSearch("s1", time.Now()))

	found, ok := store.Find("s1")
	require.True(t, ok)
	assert.Equal(t, "수지구청역", found.Departure)
	assert.Len(t, found.Routes, 3)

	_, ok = store.Find("s2")
	assert.False(t, ok)
}

func TestTripStore_ExpiredEntryNotReturned(t *testing.T) {
	store := NewTripStore(time.Minute)
	store.Save(storedSearch("old", time.Now().Add(-2*time.Minute)))

	_, ok := store.Find("old")
	assert.False(t, ok)
}

func TestTripStore_FindRoute(t *testing.T) {
	store := NewTripStore(time.Minute)
	store.Save(storedSearch("s1", time.Now()))

	r, ok := store.FindRoute("s1", "2")
	require.True(t, ok)
	assert.Equal(t, "2", r.ID)

	_, ok = store.FindRoute("s1", "missing")
	assert.False(t, ok)

	_, ok = store.FindRoute("missing", "1")
	assert.False(t, ok)
}

func TestTripStore_PurgeRemovesExpired(t *testing.T) {
	store := NewTripStore(time.Minute)
	store.Save(storedSearch("fresh", time.Now()))
	store.Save(storedSearch("stale", time.Now().Add(-2*time.Minute)))
	require.Equal(t, 2, store.Len())

	store.purge(time.Now())

	assert.Equal(t, 1, store.Len())
	_, ok := store.Find("fresh")
	assert.True(t, ok)
}
