// Package controllers 提供传输层 Handler，负责处理外部请求并调用业务层。
// 该层负责参数校验、DTO 转换和错误映射。
package controllers

import (
	"github.com/google/wire"
	"github.com/localsquares/board-rotation/internal/services"
)

// ProvideRotationServiceAPI adapts RotationService into RotationServiceAPI for dependency injection.
func ProvideRotationServiceAPI(s *services.RotationService) RotationServiceAPI { return s }

// ProvideAnalyticsServiceAPI adapts AnalyticsService into AnalyticsServiceAPI.
func ProvideAnalyticsServiceAPI(s *services.AnalyticsService) AnalyticsServiceAPI { return s }

// ProvideMaintenanceServiceAPI adapts MaintenanceService into MaintenanceServiceAPI.
func ProvideMaintenanceServiceAPI(s *services.MaintenanceService) MaintenanceServiceAPI { return s }

// ProviderSet collects controller constructors for Wire DI.
var ProviderSet = wire.NewSet(
	NewBaseHandler,
	ProvideRotationServiceAPI,
	ProvideAnalyticsServiceAPI,
	ProvideMaintenanceServiceAPI,
	NewRotationHandler,
	NewEngagementHandler,
	NewMaintenanceHandler,
	NewRouter,
)
