package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/localsquares/board-rotation/internal/models/vo"
	"github.com/localsquares/board-rotation/internal/services"
)

// AnalyticsServiceAPI 定义 EngagementHandler 依赖的 Service 能力。
type AnalyticsServiceAPI interface {
	RecordClick(ctx context.Context, input services.RecordClickInput) error
	GetPinStats(ctx context.Context, pinID uuid.UUID, days int) (*vo.PinStats, error)
}

// EngagementHandler 处理点击上报与统计查询。
type EngagementHandler struct {
	*BaseHandler
	service AnalyticsServiceAPI
	log     *log.Helper
}

// NewEngagementHandler 构造 EngagementHandler。
func NewEngagementHandler(service AnalyticsServiceAPI, base *BaseHandler, logger log.Logger) *EngagementHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &EngagementHandler{
		BaseHandler: base,
		service:     service,
		log:         log.NewHelper(logger),
	}
}

type clickRequest struct {
	BoardID   string `json:"board_id" binding:"required"`
	ClickType string `json:"click_type"`
	SessionID string `json:"session_id"`
}

// RecordClick 上报一次点击。
func (h *EngagementHandler) RecordClick(c *gin.Context) {
	pinID, err := uuid.Parse(c.Param("pin_id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid pin_id")
		return
	}
	var req clickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	boardID, err := uuid.Parse(req.BoardID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid board_id")
		return
	}
	meta := h.ExtractMetadata(c)
	if req.SessionID != "" {
		meta.SessionID = req.SessionID
	}

	ctx, cancel := h.WithTimeout(c.Request.Context(), HandlerTypeCommand)
	defer cancel()

	err = h.service.RecordClick(ctx, services.RecordClickInput{
		PinID:     pinID,
		BoardID:   boardID,
		ClickType: req.ClickType,
		SessionID: meta.SessionID,
		IPAddress: meta.ClientIP,
		UserAgent: meta.UserAgent,
	})
	if err != nil && statusFor(err) == http.StatusBadRequest {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, recordedResponse{Recorded: err == nil})
}

// GetPinStats 返回 Pin 的近似统计。
func (h *EngagementHandler) GetPinStats(c *gin.Context) {
	pinID, err := uuid.Parse(c.Param("pin_id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid pin_id")
		return
	}
	days := 0
	if raw := c.Query("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "invalid days")
			return
		}
	}

	ctx, cancel := h.WithTimeout(c.Request.Context(), HandlerTypeQuery)
	defer cancel()

	stats, err := h.service.GetPinStats(ctx, pinID, days)
	if err != nil {
		h.log.WithContext(ctx).Errorw("msg", "get pin stats failed", "pin_id", pinID, "error", err)
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
