package store_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardapio-pos/web/internal/store"
)

func newFileStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.NewFile(t.TempDir())
	require.NoError(t, err)
	return s
}

func newRedisStore(t *testing.T) store.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	s, err := store.NewRedis(context.Background(), mr.Addr())
	require.NoError(t, err)
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	impls := map[string]func(*testing.T) store.Store{
		"file":  newFileStore,
		"redis": newRedisStore,
	}

	for name, build := range impls {
		t.Run(name, func(t *testing.T) {
			s := build(t)
			ctx := context.Background()

			_, err := s.Get(ctx, "cart:abc")
			assert.ErrorIs(t, err, store.ErrNotFound)

			require.NoError(t, s.Set(ctx, "cart:abc", []byte(`{"items":[]}`)))

			got, err := s.Get(ctx, "cart:abc")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"items":[]}`), got)

			// Overwrite, no merge.
			require.NoError(t, s.Set(ctx, "cart:abc", []byte(`{"items":[1]}`)))
			got, err = s.Get(ctx, "cart:abc")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"items":[1]}`), got)

			require.NoError(t, s.Delete(ctx, "cart:abc"))
			_, err = s.Get(ctx, "cart:abc")
			assert.ErrorIs(t, err, store.ErrNotFound)

			// Deleting an absent key is not an error.
			assert.NoError(t, s.Delete(ctx, "cart:missing"))
		})
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := store.NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "session:s1", []byte(`{"role":"ADMIN"}`)))

	// A fresh store over the same directory sees the old writes.
	second, err := store.NewFile(dir)
	require.NoError(t, err)
	got, err := second.Get(ctx, "session:s1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"ADMIN"}`, string(got))
}
