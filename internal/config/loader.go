package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix 是环境变量覆盖的前缀，例如 ROTATION_DATABASE_DSN。
const EnvPrefix = "ROTATION"

// ConfigPath 是可选的 YAML 配置文件路径。
type ConfigPath string

// Load 依次叠加默认值、YAML 文件与环境变量。path 为空或文件不存在时跳过文件。
func Load(path ConfigPath) (*Config, error) {
	// .env 不存在是常态。
	_ = godotenv.Load()

	cfg := DefaultConfig()
	v := viper.New()
	setDefaults(v, cfg)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if p := string(path); p != "" {
		if _, err := os.Stat(p); err == nil {
			v.SetConfigFile(p)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", p, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config %s: %w", p, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验配置之间的约束。
func (c *Config) Validate() error {
	if c.Rotation.MaxLimit <= 0 {
		return fmt.Errorf("rotation.max_limit must be positive, got %d", c.Rotation.MaxLimit)
	}
	if c.Rotation.DefaultLimit <= 0 || c.Rotation.DefaultLimit > c.Rotation.MaxLimit {
		return fmt.Errorf("rotation.default_limit must be in [1,%d], got %d", c.Rotation.MaxLimit, c.Rotation.DefaultLimit)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Reset.WritesPerSecond < 0 {
		return fmt.Errorf("reset.writes_per_second must not be negative")
	}
	return nil
}

// 仅注册过默认值的键才会被 AutomaticEnv 参与 Unmarshal。
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("server.addr", cfg.Server.Addr)
	v.SetDefault("server.query_timeout", cfg.Server.QueryTimeout)
	v.SetDefault("server.command_timeout", cfg.Server.CommandTimeout)
	v.SetDefault("database.dsn", cfg.Database.DSN)
	v.SetDefault("database.max_conns", cfg.Database.MaxConns)
	v.SetDefault("rotation.default_limit", cfg.Rotation.DefaultLimit)
	v.SetDefault("rotation.max_limit", cfg.Rotation.MaxLimit)
	v.SetDefault("rotation.timezone", cfg.Rotation.Timezone)
	v.SetDefault("reset.concurrency", cfg.Reset.Concurrency)
	v.SetDefault("reset.writes_per_second", cfg.Reset.WritesPerSecond)
	v.SetDefault("maintenance.token", cfg.Maintenance.Token)
	v.SetDefault("log.level", cfg.Log.Level)
}
