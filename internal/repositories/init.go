// Package repositories 提供基于 pgx 的内容存储适配层。
package repositories

import "github.com/google/wire"

// ProviderSet 汇总仓储构造函数供 Wire 注入。
var ProviderSet = wire.NewSet(
	NewTxManager,
	NewPinRepository,
	NewFeaturedBookingRepository,
	NewEngagementRepository,
)
