package controllers

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-kratos/kratos/v2/log"
)

// MaintenanceToken 是触发维护任务所需的共享令牌，为空时不校验。
type MaintenanceToken string

// MaintenanceServiceAPI 定义 MaintenanceHandler 依赖的 Service 能力。
type MaintenanceServiceAPI interface {
	ResetDailyImpressionCounters(ctx context.Context) (int, error)
}

// MaintenanceHandler 暴露给外部调度器的维护入口。
type MaintenanceHandler struct {
	service MaintenanceServiceAPI
	token   MaintenanceToken
	log     *log.Helper
}

// NewMaintenanceHandler 构造 MaintenanceHandler。
func NewMaintenanceHandler(service MaintenanceServiceAPI, token MaintenanceToken, logger log.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		service: service,
		token:   token,
		log:     log.NewHelper(logger),
	}
}

type resetResponse struct {
	Reset int `json:"reset"`
}

// ResetImpressions 重置逾期 Pin 的 24 小时曝光计数。
// 批量任务不使用 Handler 超时，由调用方的连接生命周期决定。
func (h *MaintenanceHandler) ResetImpressions(c *gin.Context) {
	if h.token != "" {
		got := c.GetHeader(HeaderMaintenanceToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) != 1 {
			abortWithError(c, http.StatusUnauthorized, "invalid maintenance token")
			return
		}
	}
	ctx := c.Request.Context()
	n, err := h.service.ResetDailyImpressionCounters(ctx)
	if err != nil {
		h.log.WithContext(ctx).Errorw("msg", "reset impressions failed", "error", err)
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resetResponse{Reset: n})
}
