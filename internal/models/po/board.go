// Package po 定义轮播服务的数据持久化结构体。
package po

import (
	"time"

	"github.com/google/uuid"
)

// Pin 状态与订阅状态常量。
const (
	PinStatusActive = "active"

	SubscriptionStatusActive  = "active"
	SubscriptionStatusPastDue = "past_due"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Pin 表示内容存储返回的 Pin 快照。
type Pin struct {
	ID                  uuid.UUID
	BoardID             uuid.UUID
	UserID              uuid.UUID
	Title               string
	Caption             *string
	ImageURL            string
	ThumbnailURL        *string
	Status              string
	Impressions24h      int64
	ViewCount           int64
	ClickCount          int64
	CreatedAt           *time.Time
	ContentUpdatedAt    *time.Time
	LastImpressionReset *time.Time
	SubscriptionStatus  *string
}

// FeaturedBooking 描述某个看板某天的置顶预订。
type FeaturedBooking struct {
	ID            uuid.UUID
	BoardID       uuid.UUID
	PinID         uuid.UUID
	FeaturedDate  time.Time
	PaymentStatus string
}

// Impression 记录一次曝光事件。
type Impression struct {
	ID        uuid.UUID
	PinID     uuid.UUID
	BoardID   uuid.UUID
	SessionID *string
	UserID    *uuid.UUID
	IPAddress *string
	UserAgent *string
	Referrer  *string
	CreatedAt time.Time
}

// Click 记录一次点击事件。
type Click struct {
	ID        uuid.UUID
	PinID     uuid.UUID
	BoardID   uuid.UUID
	ClickType string
	SessionID *string
	UserID    *uuid.UUID
	IPAddress *string
	UserAgent *string
	CreatedAt time.Time
}
