package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eyewear-store/internal/config"
	"eyewear-store/internal/kvstore"
)

func TestOpenBackendMemory(t *testing.T) {
	backend, err := OpenBackend(context.Background(), &config.Config{StoreDriver: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &kvstore.MemoryBackend{}, backend)
}

func TestOpenBackendBoltCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "store.db")
	backend, err := OpenBackend(context.Background(), &config.Config{StoreDriver: "bolt", BoltPath: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	assert.IsType(t, &kvstore.BoltBackend{}, backend)
	assert.NoError(t, backend.Ping(context.Background()))
}

func TestOpenBackendMongoRequiresURI(t *testing.T) {
	_, err := OpenBackend(context.Background(), &config.Config{StoreDriver: "mongo"})
	assert.Error(t, err)
}

func TestOpenBackendUnknownDriver(t *testing.T) {
	_, err := OpenBackend(context.Background(), &config.Config{StoreDriver: "sqlite"})
	assert.ErrorContains(t, err, "sqlite")
}
