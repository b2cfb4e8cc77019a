package store_test

import (
	"context"
	"testing"

	"github.com/sodamelon/kanban/internal/model"
	"github.com/sodamelon/kanban/internal/store"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_RoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	backend := store.NewRedis(client, "kanban:")
	s := store.New(backend, nil)
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	_, err = backend.Get(ctx, key)
	assert.ErrorIs(t, err, store.ErrNotFound)

	want := sampleCollection()
	require.True(t, store.Save(ctx, s, key, want))
	assert.True(t, mr.Exists("kanban:"+key))
	assert.Zero(t, mr.TTL("kanban:"+key))

	assert.Equal(t, want, store.Load(ctx, s, key, model.Collection{}))
}

func TestRedis_Unavailable(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	s := store.New(store.NewRedis(client, ""), nil)
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	mr.Close()

	assert.False(t, store.Save(ctx, s, key, sampleCollection()))
	assert.Empty(t, store.Load(ctx, s, key, model.Collection{}))
}

func TestOpenRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	backend, err := store.OpenRedis(context.Background(), "redis://"+mr.Addr()+"/0", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	_, err = store.OpenRedis(context.Background(), "not a url", "")
	assert.Error(t, err)
}
