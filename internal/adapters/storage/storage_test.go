package storage

import (
	"context"
	"path/filepath"
	"testing"

	"penguin-api/internal/config"
	"penguin-api/internal/domain/penguins"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	s, err := Open(context.Background(), config.StoreConfig{Driver: config.DriverMemory})
	require.NoError(t, err)
	assert.Equal(t, config.DriverMemory, s.Driver)
	assert.NotNil(t, s.Penguins)
	assert.NoError(t, s.Close())
}

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "penguins.db")

	require.NoError(t, Migrate(ctx, config.StoreConfig{Driver: config.DriverSQLite, SQLitePath: path}))

	s, err := Open(ctx, config.StoreConfig{Driver: config.DriverSQLite, SQLitePath: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	p, err := s.Penguins.Create(ctx, penguins.Penguin{Species: "Gentoo", FirstName: "Lolo"})
	require.NoError(t, err)

	got, err := s.Penguins.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lolo", got.FirstName)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.StoreConfig{Driver: "mongo"})
	require.Error(t, err)
}

func TestMigrate_MemoryIsNoop(t *testing.T) {
	assert.NoError(t, Migrate(context.Background(), config.StoreConfig{Driver: config.DriverMemory}))
}
