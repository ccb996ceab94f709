package config

import (
	"github.com/maxviazov/pagination/internal/logger"
)

type Config struct {
	App        AppConfig           `mapstructure:"app"`
	Logger     logger.LoggerConfig `mapstructure:"logger" validate:"-"`
	Storage    StorageConfig       `mapstructure:"storage"`
	Postgres   PostgresConfig      `mapstructure:"postgres"`
	Pagination PaginationConfig    `mapstructure:"pagination"`
}

type AppConfig struct {
	Name            string `mapstructure:"name" validate:"required"`
	Version         string `mapstructure:"version"`
	Env             string `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Port            int    `mapstructure:"port" validate:"min=1,max=65535"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" validate:"min=0"` // seconds
}

// StorageConfig selects where the catalogue lives. Seed > 0 imports that many
// generated articles on start-up when the store is empty.
type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=memory postgres"`
	Seed   int    `mapstructure:"seed" validate:"min=0"`
}

// PostgresConfig is only consulted when storage.driver is postgres.
// Durations are in seconds.
type PostgresConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port" validate:"min=0,max=65535"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	DBName            string `mapstructure:"db"`
	SSLMode           string `mapstructure:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns          int32  `mapstructure:"max_conns" validate:"min=0"`
	MinConns          int32  `mapstructure:"min_conns" validate:"min=0"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime" validate:"min=0"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time" validate:"min=0"`
	HealthCheckPeriod int    `mapstructure:"health_check_period" validate:"min=0"`
	Migrate           bool   `mapstructure:"migrate"`
}

// PaginationConfig holds the browsing defaults applied when a request leaves them out.
type PaginationConfig struct {
	DefaultPerPage int `mapstructure:"default_per_page" validate:"min=1"`
	MaxPerPage     int `mapstructure:"max_per_page" validate:"gtefield=DefaultPerPage"`
	InnerWindow    int `mapstructure:"inner_window" validate:"min=0"`
	OuterWindow    int `mapstructure:"outer_window" validate:"min=0"`
}
