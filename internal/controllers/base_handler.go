package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/localsquares/board-rotation/internal/services"
)

// 请求头。
const (
	HeaderSessionID        = "X-Session-ID"
	HeaderMaintenanceToken = "X-Maintenance-Token"
)

// HandlerType 区分查询与命令，用于选择超时。
type HandlerType int

const (
	HandlerTypeQuery HandlerType = iota
	HandlerTypeCommand
)

// 默认超时。
const (
	defaultQueryTimeout   = 3 * time.Second
	defaultCommandTimeout = 5 * time.Second
)

// HandlerTimeouts 描述各类 Handler 的超时。
type HandlerTimeouts struct {
	Query   time.Duration
	Command time.Duration
}

// BaseHandler 封装 Handler 共享的超时与元数据提取逻辑。
type BaseHandler struct {
	timeouts HandlerTimeouts
}

// NewBaseHandler 构造 BaseHandler，零值超时回落到默认值。
func NewBaseHandler(timeouts HandlerTimeouts) *BaseHandler {
	if timeouts.Query <= 0 {
		timeouts.Query = defaultQueryTimeout
	}
	if timeouts.Command <= 0 {
		timeouts.Command = defaultCommandTimeout
	}
	return &BaseHandler{timeouts: timeouts}
}

// WithTimeout 按 Handler 类型派生带超时的上下文。
func (b *BaseHandler) WithTimeout(ctx context.Context, kind HandlerType) (context.Context, context.CancelFunc) {
	timeout := b.timeouts.Query
	if kind == HandlerTypeCommand {
		timeout = b.timeouts.Command
	}
	return context.WithTimeout(ctx, timeout)
}

// RequestMetadata 是从 HTTP 请求中提取的调用方信息。
type RequestMetadata struct {
	SessionID string
	ClientIP  string
	UserAgent string
	Referrer  string
}

// ExtractMetadata 读取会话、客户端 IP 与 UA。会话优先取请求头，其次取 query。
func (b *BaseHandler) ExtractMetadata(c *gin.Context) RequestMetadata {
	sessionID := strings.TrimSpace(c.GetHeader(HeaderSessionID))
	if sessionID == "" {
		sessionID = strings.TrimSpace(c.Query("session_id"))
	}
	return RequestMetadata{
		SessionID: sessionID,
		ClientIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Referrer:  c.Request.Referer(),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor 将业务错误映射为 HTTP 状态码。超时优先于存储错误判断。
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, services.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// 对外只返回固定文案，底层错误细节只写日志。
var publicMessages = map[int]string{
	http.StatusBadRequest:          "invalid argument",
	http.StatusGatewayTimeout:      "request timed out",
	http.StatusServiceUnavailable:  "content store unavailable",
	http.StatusInternalServerError: "internal error",
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}

// abortWithServiceError 按业务错误中止请求，响应体不包含错误详情。
func abortWithServiceError(c *gin.Context, err error) {
	status := statusFor(err)
	abortWithError(c, status, publicMessages[status])
}
