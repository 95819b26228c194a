package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the application configuration.
// Precedencia: defaults < archivo TOML < variables de entorno (.env incluido).
type Config struct {
	Port  string      `toml:"port" validate:"required,numeric"`
	Log   LogConfig   `toml:"log"`
	Store StoreConfig `toml:"store"`
	HTTP  HTTPConfig  `toml:"http"`
}

type LogConfig struct {
	Level  string `toml:"level" validate:"omitempty,oneof=debug verbose info warn warning error"`
	Format string `toml:"format" validate:"omitempty,oneof=text json"`
	App    string `toml:"app"`
}

type StoreConfig struct {
	Driver      string `toml:"driver" validate:"oneof=memory postgres sqlite"`
	DSN         string `toml:"dsn"`
	SQLitePath  string `toml:"sqlite_path"`
	AutoMigrate bool   `toml:"auto_migrate"`
}

type HTTPConfig struct {
	ReadTimeoutSeconds  int `toml:"read_timeout_seconds" validate:"gte=1"`
	WriteTimeoutSeconds int `toml:"write_timeout_seconds" validate:"gte=1"`
}

type ErrMissingRequiredEnvVar struct {
	Name string
}

func (e *ErrMissingRequiredEnvVar) Error() string {
	return fmt.Sprintf("required environment variable %q is not set", e.Name)
}

var validate = validator.New()

func Default() *Config {
	return &Config{
		Port: "8080",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "penguin-api",
		},
		Store: StoreConfig{
			Driver:      DriverMemory,
			AutoMigrate: true,
		},
		HTTP: HTTPConfig{
			ReadTimeoutSeconds:  5,
			WriteTimeoutSeconds: 10,
		},
	}
}

// LoadDotEnv carga .env si existe. No pisa variables ya seteadas.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load arma la config. path vacío => usa CONFIG_FILE si está seteada.
func Load(path string) (*Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if strings.TrimSpace(path) != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(content, cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("parse config file %s at line %d, column %d: %w", path, row, col, err)
		}
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Port, "PORT")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")
	setString(&cfg.Log.App, "APP_NAME")
	setString(&cfg.Store.Driver, "STORE_DRIVER")
	setString(&cfg.Store.DSN, "DB_DSN")
	setString(&cfg.Store.SQLitePath, "SQLITE_PATH")

	// DB_DSN sin STORE_DRIVER: compat con el modo "si hay DSN, Postgres".
	if os.Getenv("STORE_DRIVER") == "" && os.Getenv("DB_DSN") != "" {
		cfg.Store.Driver = DriverPostgres
	}

	if v := os.Getenv("AUTO_MIGRATE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("AUTO_MIGRATE must be a boolean: %w", err)
		}
		cfg.Store.AutoMigrate = b
	}
	return nil
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func (c *Config) Validate() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	switch c.Store.Driver {
	case DriverPostgres:
		if strings.TrimSpace(c.Store.DSN) == "" {
			return &ErrMissingRequiredEnvVar{Name: "DB_DSN"}
		}
	case DriverSQLite:
		if strings.TrimSpace(c.Store.SQLitePath) == "" {
			return &ErrMissingRequiredEnvVar{Name: "SQLITE_PATH"}
		}
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
