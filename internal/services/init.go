// Package services 实现看板轮播、曝光记录与维护任务等业务用例。
package services

import (
	"github.com/google/wire"
	"github.com/localsquares/board-rotation/internal/repositories"
)

// ProviderSet 汇总业务层构造函数与仓储适配绑定。
var ProviderSet = wire.NewSet(
	NewRotationService,
	NewMaintenanceService,
	NewAnalyticsService,
	NewRandFactory,
	NewClock,
	wire.Bind(new(PinStore), new(*repositories.PinRepository)),
	wire.Bind(new(FeaturedBookingStore), new(*repositories.FeaturedBookingRepository)),
	wire.Bind(new(EngagementStore), new(*repositories.EngagementRepository)),
	wire.Bind(new(Transactor), new(*repositories.TxManager)),
)
