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

// RotationServiceAPI 定义 RotationHandler 依赖的 Service 能力。
type RotationServiceAPI interface {
	GetBoardRotation(ctx context.Context, input services.GetRotatedPinsInput) (*vo.RotationResponse, error)
	RecordImpression(ctx context.Context, input services.RecordImpressionInput) error
}

// RotationHandler 处理看板轮播与曝光上报。
type RotationHandler struct {
	*BaseHandler
	service RotationServiceAPI
	log     *log.Helper
}

// NewRotationHandler 构造 RotationHandler。
func NewRotationHandler(service RotationServiceAPI, base *BaseHandler, logger log.Logger) *RotationHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &RotationHandler{
		BaseHandler: base,
		service:     service,
		log:         log.NewHelper(logger),
	}
}

// GetBoardPins 返回看板本次的轮播结果。
func (h *RotationHandler) GetBoardPins(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("board_id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid board_id")
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "invalid limit")
			return
		}
	}
	meta := h.ExtractMetadata(c)

	ctx, cancel := h.WithTimeout(c.Request.Context(), HandlerTypeQuery)
	defer cancel()

	resp, err := h.service.GetBoardRotation(ctx, services.GetRotatedPinsInput{
		BoardID:   boardID,
		SessionID: meta.SessionID,
		Limit:     limit,
	})
	if err != nil {
		h.log.WithContext(ctx).Errorw("msg", "get board rotation failed", "board_id", boardID, "error", err)
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

type impressionRequest struct {
	BoardID   string `json:"board_id" binding:"required"`
	SessionID string `json:"session_id"`
}

type recordedResponse struct {
	Recorded bool `json:"recorded"`
}

// RecordImpression 上报一次曝光。写入失败只记录日志，仍返回 202。
func (h *RotationHandler) RecordImpression(c *gin.Context) {
	pinID, err := uuid.Parse(c.Param("pin_id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid pin_id")
		return
	}
	var req impressionRequest
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

	err = h.service.RecordImpression(ctx, services.RecordImpressionInput{
		PinID:     pinID,
		BoardID:   boardID,
		SessionID: meta.SessionID,
		IPAddress: meta.ClientIP,
		UserAgent: meta.UserAgent,
		Referrer:  meta.Referrer,
	})
	if err != nil && statusFor(err) == http.StatusBadRequest {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, recordedResponse{Recorded: err == nil})
}
