package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/localsquares/board-rotation/internal/models/po"
	"github.com/localsquares/board-rotation/internal/repositories"
)

// PinStore 抽象 Pin 的读取与计数维护。
type PinStore interface {
	ListActiveByBoard(ctx context.Context, sess repositories.Session, boardID uuid.UUID) ([]*po.Pin, error)
	ListOverdueForReset(ctx context.Context, sess repositories.Session, threshold time.Time) ([]uuid.UUID, error)
	ResetCounter(ctx context.Context, sess repositories.Session, pinID uuid.UUID, threshold, resetAt time.Time) (bool, error)
	IncrementImpressions(ctx context.Context, sess repositories.Session, pinID uuid.UUID) error
	IncrementClicks(ctx context.Context, sess repositories.Session, pinID uuid.UUID) error
}

// FeaturedBookingStore 抽象当日置顶预订的查询。
type FeaturedBookingStore interface {
	FindTodayPaidPinID(ctx context.Context, sess repositories.Session, boardID uuid.UUID, day time.Time) (*uuid.UUID, error)
}

// EngagementStore 抽象曝光与点击事件的写入与统计。
type EngagementStore interface {
	InsertImpression(ctx context.Context, sess repositories.Session, evt po.Impression) error
	InsertClick(ctx context.Context, sess repositories.Session, evt po.Click) error
	ListSeenPinIDs(ctx context.Context, sess repositories.Session, sessionID string, boardID uuid.UUID, since time.Time) ([]uuid.UUID, error)
	CountImpressionsSince(ctx context.Context, sess repositories.Session, pinID uuid.UUID, since time.Time) (int64, error)
	CountClicksByTypeSince(ctx context.Context, sess repositories.Session, pinID uuid.UUID, since time.Time) (map[string]int64, error)
}

// Transactor 抽象事务边界。
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, sess repositories.Session) error) error
}

var (
	_ PinStore             = (*repositories.PinRepository)(nil)
	_ FeaturedBookingStore = (*repositories.FeaturedBookingRepository)(nil)
	_ EngagementStore      = (*repositories.EngagementRepository)(nil)
	_ Transactor           = (*repositories.TxManager)(nil)
)
