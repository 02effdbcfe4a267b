package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func newTestBolt(t *testing.T) *BoltBackend {
	t.Helper()
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "store.db"), 0o600, nil)
	require.NoError(t, err)

	backend, err := NewBoltBackend(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })
	return backend
}

func TestBoltBackendCRUD(t *testing.T) {
	ctx := context.Background()
	b := newTestBolt(t)

	_, err := b.Load(ctx, "cart")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, b.Save(ctx, "cart", []byte(`[1,2]`)))
	got, err := b.Load(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), got)

	require.NoError(t, b.Delete(ctx, "cart"))
	_, err = b.Load(ctx, "cart")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, b.Ping(ctx))
}

func TestBoltBackendDeletePrefix(t *testing.T) {
	ctx := context.Background()
	b := newTestBolt(t)

	for _, k := range []string{"profile:a:cart", "profile:a:wishlist", "profile:b:cart", "site:settings"} {
		require.NoError(t, b.Save(ctx, k, []byte(`1`)))
	}

	require.NoError(t, b.DeletePrefix(ctx, "profile:a:"))

	_, err := b.Load(ctx, "profile:a:cart")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = b.Load(ctx, "profile:a:wishlist")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = b.Load(ctx, "profile:b:cart")
	assert.NoError(t, err)

	require.NoError(t, b.DeletePrefix(ctx, ""))
	_, err = b.Load(ctx, "site:settings")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBoltBackendThroughStore(t *testing.T) {
	ctx := context.Background()
	s := New(newTestBolt(t)).Scope("visitor")

	require.True(t, s.Set(ctx, "wishlist", []string{"3", "7"}))
	assert.Equal(t, []string{"3", "7"}, Get(ctx, s, "wishlist", []string{}))
}

func TestGlobEscape(t *testing.T) {
	assert.Equal(t, `profile:a\*b:`, globEscape("profile:a*b:"))
	assert.Equal(t, `site:\[x\]`, globEscape("site:[x]"))
}
