package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStores(t *testing.T) {
	ctx := context.Background()

	stores := map[string]Store{
		"memory": NewMemory(),
	}

	file, err := NewFile(t.TempDir())
	require.NoError(t, err)
	stores["file"] = file

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, "cart:items:v1")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Set(ctx, "cart:items:v1", []byte(`[{"name":"Lamp"}]`)))

			got, err := store.Get(ctx, "cart:items:v1")
			require.NoError(t, err)
			assert.Equal(t, []byte(`[{"name":"Lamp"}]`), got)

			require.NoError(t, store.Set(ctx, "cart:items:v1", []byte(`[]`)))
			got, err = store.Get(ctx, "cart:items:v1")
			require.NoError(t, err)
			assert.Equal(t, []byte(`[]`), got)

			require.NoError(t, store.Delete(ctx, "cart:items:v1"))
			_, err = store.Get(ctx, "cart:items:v1")
			assert.ErrorIs(t, err, ErrNotFound)

			// Deleting an absent key is not an error.
			require.NoError(t, store.Delete(ctx, "cart:items:v1"))
		})
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	val := []byte("original")
	require.NoError(t, store.Set(ctx, "k", val))
	val[0] = 'X'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)

	got[0] = 'Y'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}

func TestFileFlattensKeys(t *testing.T) {
	ctx := context.Background()

	store, err := NewFile(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "cart:items:v1", []byte("a")))
	require.NoError(t, store.Set(ctx, "cart/items/v2", []byte("b")))

	got, err := store.Get(ctx, "cart:items:v1")
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), got)

	got, err = store.Get(ctx, "cart/items/v2")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), got)
}
