package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultPort     = 5000
	DefaultPoolSize = 10
)

// Database holds store connection settings
type Database struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	// Path is the SQLite file; ":memory:" keeps everything in process.
	Path     string
	PoolSize int
}

// NATS holds change-event bus settings. An empty URL disables publishing.
type NATS struct {
	URL     string
	Subject string
}

// Config is the full process configuration
type Config struct {
	Port            int
	ShutdownTimeout time.Duration
	Database        Database
	NATS            NATS
}

// Load reads configuration from a .env file (if present), the environment and
// an optional YAML file. Environment variables win over the file.
func Load(file string) (*Config, error) {
	loadDotEnv()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if file == "" {
		file = v.GetString("config_file")
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
		watch(v)
	}

	cfg := &Config{
		Port:            v.GetInt("port"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		Database: Database{
			Driver:   strings.ToLower(v.GetString("db_driver")),
			Host:     v.GetString("db_host"),
			Port:     v.GetInt("db_port"),
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
			Name:     v.GetString("db_name"),
			Path:     v.GetString("db_path"),
			PoolSize: v.GetInt("db_pool_size"),
		},
		NATS: NATS{
			URL:     v.GetString("nats_url"),
			Subject: v.GetString("nats_subject"),
		},
	}

	if cfg.Database.Port == 0 {
		cfg.Database.Port = defaultDBPort(cfg.Database.Driver)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDotEnv exports the given .env files (default ".env"). A missing file
// is normal and stays quiet.
func loadDotEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to load .env file: %v", err)
	}
}

// Validate rejects settings the server cannot start with
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want postgres, mysql or sqlite)", c.Database.Driver)
	}
	if c.Database.PoolSize < 1 {
		return fmt.Errorf("DB_POOL_SIZE must be at least 1, got %d", c.Database.PoolSize)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("shutdown_timeout", 30*time.Second)
	v.SetDefault("db_driver", "postgres")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 0)
	v.SetDefault("db_user", "flightops")
	v.SetDefault("db_password", "flightops")
	v.SetDefault("db_name", "flightops")
	v.SetDefault("db_path", "flightops.db")
	v.SetDefault("db_pool_size", DefaultPoolSize)
	v.SetDefault("nats_url", "")
	v.SetDefault("nats_subject", "flightops")
	v.SetDefault("config_file", "")
}

func defaultDBPort(driver string) int {
	if driver == "mysql" {
		return 3306
	}
	return 5432
}

// watch logs edits to the config file. Values are read once at startup, so a
// restart is needed for them to take effect.
func watch(v *viper.Viper) {
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("Config file changed: %s (restart to apply)", e.Name)
	})
	v.WatchConfig()
}
