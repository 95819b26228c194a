package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv deja vacías las variables que lee Load; t.Setenv restaura al final.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_FILE", "PORT", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
		"STORE_DRIVER", "DB_DSN", "SQLITE_PATH", "AUTO_MIGRATE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.True(t, cfg.Store.AutoMigrate)
	assert.Equal(t, 5, cfg.HTTP.ReadTimeoutSeconds)
}

func TestLoad_FileThenEnvOverrides(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "penguin-api.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
port = "9090"

[log]
level = "verbose"
format = "json"

[store]
driver = "sqlite"
sqlite_path = "/tmp/penguins.db"
auto_migrate = false
`), 0o600))

	t.Setenv("PORT", "7070")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "verbose", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/penguins.db", cfg.Store.SQLitePath)
	assert.False(t, cfg.Store.AutoMigrate)
}

func TestLoad_ConfigFileFromEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(path, []byte(`port = "6060"`), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "6060", cfg.Port)
}

func TestLoad_DSNImpliesPostgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DSN", "postgres://u:p@localhost:5432/penguins")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("postgres without dsn", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STORE_DRIVER", "postgres")

		_, err := Load("")
		var missing *ErrMissingRequiredEnvVar
		require.True(t, errors.As(err, &missing), "got %v", err)
		assert.Equal(t, "DB_DSN", missing.Name)
	})

	t.Run("sqlite without path", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STORE_DRIVER", "sqlite")

		_, err := Load("")
		var missing *ErrMissingRequiredEnvVar
		require.True(t, errors.As(err, &missing), "got %v", err)
		assert.Equal(t, "SQLITE_PATH", missing.Name)
	})

	t.Run("unknown driver", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STORE_DRIVER", "mongo")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Driver")
	})

	t.Run("non numeric port", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "http")

		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("bad auto migrate", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("AUTO_MIGRATE", "sometimes")

		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("broken toml", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("port = \n"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 1")
	})
}

func TestLoadDotEnv_MissingFileIsFine(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}

func TestLoadDotEnv_DoesNotOverrideEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=1111\nPENGUIN_API_DOTENV_PROBE=from-dotenv\n"), 0o600))
	t.Setenv("PORT", "2222")
	t.Cleanup(func() { _ = os.Unsetenv("PENGUIN_API_DOTENV_PROBE") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "2222", os.Getenv("PORT"))
	assert.Equal(t, "from-dotenv", os.Getenv("PENGUIN_API_DOTENV_PROBE"))
}
