package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"nearby/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore_GetMissingKey(t *testing.T) {
	store := NewKVStore()

	_, err := store.Get(context.Background(), "absent")
	require.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestKVStore_SetAndGet(t *testing.T) {
	store := NewKVStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "share_history", `[{"id":"1"}]`))

	value, err := store.Get(ctx, "share_history")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, value)
}

func TestKVStore_SetOverwrites(t *testing.T) {
	store := NewKVStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key", "first"))
	require.NoError(t, store.Set(ctx, "key", "second"))

	value, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}

func TestKVStore_ConcurrentAccess(t *testing.T) {
	store := NewKVStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		key := fmt.Sprintf("key-%d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()

			assert.NoError(t, store.Set(ctx, key, key))
			value, err := store.Get(ctx, key)
			assert.NoError(t, err)
			assert.Equal(t, key, value)
		}()
	}
	wg.Wait()
}
