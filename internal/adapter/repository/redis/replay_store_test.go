package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/payoffsim/internal/usecase"
)

func newTestStore(t *testing.T) (*ReplayStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewReplayStore(client), mr
}

func TestReplayStore_ReserveNewKey(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	existing, err := store.Reserve(ctx, "k1", usecase.ReplayEntry{Fingerprint: "fp"}, time.Minute)
	require.NoError(t, err)
	assert.Nil(t, existing)

	assert.True(t, mr.Exists(keyPrefix+"k1"))
	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"k1"))
}

func TestReplayStore_ReserveReturnsPendingEntry(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Reserve(ctx, "k1", usecase.ReplayEntry{Fingerprint: "fp"}, time.Minute)
	require.NoError(t, err)

	existing, err := store.Reserve(ctx, "k1", usecase.ReplayEntry{Fingerprint: "other"}, time.Minute)
	require.NoError(t, err)
	require.NotNil(t, existing)
	assert.True(t, existing.Pending)
	assert.Equal(t, "fp", existing.Fingerprint)
}

func TestReplayStore_SaveThenReplay(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Reserve(ctx, "k1", usecase.ReplayEntry{Fingerprint: "fp"}, time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "k1", usecase.ReplayEntry{Fingerprint: "fp", Status: 200, Body: []byte(`{"run_id":"r"}`)}, time.Minute))

	existing, err := store.Reserve(ctx, "k1", usecase.ReplayEntry{Fingerprint: "fp"}, time.Minute)
	require.NoError(t, err)
	require.NotNil(t, existing)
	assert.False(t, existing.Pending)
	assert.Equal(t, 200, existing.Status)
	assert.JSONEq(t, `{"run_id":"r"}`, string(existing.Body))
}

func TestReplayStore_ReleaseFreesKey(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	_, err := store.Reserve(ctx, "k1", usecase.ReplayEntry{Fingerprint: "fp"}, time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Release(ctx, "k1"))
	assert.False(t, mr.Exists(keyPrefix+"k1"))

	existing, err := store.Reserve(ctx, "k1", usecase.ReplayEntry{Fingerprint: "fp"}, time.Minute)
	require.NoError(t, err)
	assert.Nil(t, existing)
}

func TestReplayStore_CorruptEntry(t *testing.T) {
	store, mr := newTestStore(t)
	require.NoError(t, mr.Set(keyPrefix+"bad", "not json"))

	_, err := store.Reserve(context.Background(), "bad", usecase.ReplayEntry{}, time.Minute)
	assert.ErrorContains(t, err, "corrupt replay entry")
}

func TestReplayStore_ConnectionError(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	_, err := store.Reserve(context.Background(), "k1", usecase.ReplayEntry{}, time.Minute)
	assert.Error(t, err)
}
