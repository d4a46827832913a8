package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/localsquares/board-rotation/internal/controllers"
	"github.com/localsquares/board-rotation/internal/services"
)

// ServiceName 写入每条日志的 service.name。
const ServiceName = "board-rotation"

// ProviderSet 暴露配置派生的依赖。
var ProviderSet = wire.NewSet(
	Load,
	ProvideLogger,
	ProvidePool,
	ProvideRotationOptions,
	ProvideMaintenanceOptions,
	ProvideHandlerTimeouts,
	ProvideMaintenanceToken,
)

// Location 解析看板时区，空值视为 UTC。
func (c *Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.Rotation.Timezone)
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("rotation.timezone %q: %w", name, err)
	}
	return loc, nil
}

// ProvideLogger 构造带时间戳、调用位置与服务名的根日志。
func ProvideLogger(cfg *Config) log.Logger {
	logger := log.With(log.NewStdLogger(os.Stdout),
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
		"service.name", ServiceName,
	)
	return log.NewFilter(logger, log.FilterLevel(log.ParseLevel(cfg.Log.Level)))
}

// ProvidePool 创建 pgx 连接池。
func ProvidePool(ctx context.Context, cfg *Config, logger log.Logger) (*pgxpool.Pool, func(), error) {
	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return nil, nil, fmt.Errorf("database.dsn is required")
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("parse database dsn: %w", err)
	}
	if cfg.Database.MaxConns > 0 {
		poolCfg.MaxConns = cfg.Database.MaxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}
	helper := log.NewHelper(logger)
	helper.Infow("msg", "database connected", "max_conns", poolCfg.MaxConns)
	cleanup := func() {
		pool.Close()
		helper.Infow("msg", "database pool closed")
	}
	return pool, cleanup, nil
}

// ProvideRotationOptions 将配置转换为轮播选项。
func ProvideRotationOptions(cfg *Config) (services.RotationOptions, error) {
	loc, err := cfg.Location()
	if err != nil {
		return services.RotationOptions{}, err
	}
	return services.RotationOptions{
		DefaultLimit: cfg.Rotation.DefaultLimit,
		MaxLimit:     cfg.Rotation.MaxLimit,
		Location:     loc,
	}, nil
}

// ProvideMaintenanceOptions 将配置转换为重置任务选项。
func ProvideMaintenanceOptions(cfg *Config) services.MaintenanceOptions {
	return services.MaintenanceOptions{
		Concurrency:     cfg.Reset.Concurrency,
		WritesPerSecond: cfg.Reset.WritesPerSecond,
	}
}

// ProvideHandlerTimeouts 将配置转换为 Handler 超时。
func ProvideHandlerTimeouts(cfg *Config) controllers.HandlerTimeouts {
	return controllers.HandlerTimeouts{
		Query:   cfg.Server.QueryTimeout,
		Command: cfg.Server.CommandTimeout,
	}
}

// ProvideMaintenanceToken 返回维护入口的共享令牌。
func ProvideMaintenanceToken(cfg *Config) controllers.MaintenanceToken {
	return controllers.MaintenanceToken(cfg.Maintenance.Token)
}
