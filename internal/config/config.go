// Package config 负责加载服务配置，并将其转换为各层需要的选项。
package config

import "time"

// Config 是服务的完整配置。
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Rotation    RotationConfig    `mapstructure:"rotation"`
	Reset       ResetConfig       `mapstructure:"reset"`
	Maintenance MaintenanceConfig `mapstructure:"maintenance"`
	Log         LogConfig         `mapstructure:"log"`
}

// ServerConfig 描述 HTTP 监听与 Handler 超时。
type ServerConfig struct {
	Addr           string        `mapstructure:"addr"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
	CommandTimeout time.Duration `mapstructure:"command_timeout"`
}

// DatabaseConfig 描述 Postgres 连接。
type DatabaseConfig struct {
	DSN      string `mapstructure:"dsn"`
	MaxConns int32  `mapstructure:"max_conns"`
}

// RotationConfig 描述轮播参数。
type RotationConfig struct {
	DefaultLimit int    `mapstructure:"default_limit"`
	MaxLimit     int    `mapstructure:"max_limit"`
	Timezone     string `mapstructure:"timezone"`
}

// ResetConfig 描述曝光计数重置任务的并发与限速。
type ResetConfig struct {
	Concurrency     int     `mapstructure:"concurrency"`
	WritesPerSecond float64 `mapstructure:"writes_per_second"`
}

// MaintenanceConfig 描述维护入口。
type MaintenanceConfig struct {
	Token string `mapstructure:"token"`
}

// LogConfig 描述日志级别。
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DefaultConfig 返回默认配置。
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           ":8080",
			QueryTimeout:   3 * time.Second,
			CommandTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			MaxConns: 10,
		},
		Rotation: RotationConfig{
			DefaultLimit: 50,
			MaxLimit:     100,
			Timezone:     "UTC",
		},
		Reset: ResetConfig{
			Concurrency:     4,
			WritesPerSecond: 200,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
