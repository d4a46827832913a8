package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/localsquares/board-rotation/internal/models/po"
	"github.com/localsquares/board-rotation/internal/models/vo"
	"github.com/localsquares/board-rotation/internal/repositories"
)

// 统计窗口（天）。
const (
	DefaultStatsDays = 7
	MaxStatsDays     = 90
)

// RecordClickInput 描述一次点击。
type RecordClickInput struct {
	PinID     uuid.UUID
	BoardID   uuid.UUID
	ClickType string
	SessionID string
	UserID    *uuid.UUID
	IPAddress string
	UserAgent string
}

// AnalyticsService 记录点击并提供近似的 Pin 统计。
type AnalyticsService struct {
	pins       PinStore
	engagement EngagementStore
	tx         Transactor
	now        Clock
	log        *log.Helper
}

// NewAnalyticsService 构造 AnalyticsService。
func NewAnalyticsService(pins PinStore, engagement EngagementStore, tx Transactor, now Clock, logger log.Logger) *AnalyticsService {
	if now == nil {
		now = NewClock()
	}
	return &AnalyticsService{
		pins:       pins,
		engagement: engagement,
		tx:         tx,
		now:        now,
		log:        log.NewHelper(logger),
	}
}

// RecordClick 追加一条点击并累加 Pin 的点击计数。
func (s *AnalyticsService) RecordClick(ctx context.Context, input RecordClickInput) error {
	if input.PinID == uuid.Nil || input.BoardID == uuid.Nil {
		return fmt.Errorf("%w: pin id and board id are required", ErrInvalidArgument)
	}
	evt := po.NewClick(po.EventParams{
		PinID:     input.PinID,
		BoardID:   input.BoardID,
		ClickType: input.ClickType,
		SessionID: input.SessionID,
		UserID:    input.UserID,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
		CreatedAt: s.now().UTC(),
	})
	err := s.tx.WithinTx(ctx, func(ctx context.Context, sess repositories.Session) error {
		if err := s.engagement.InsertClick(ctx, sess, evt); err != nil {
			return err
		}
		return s.pins.IncrementClicks(ctx, sess, evt.PinID)
	})
	if err != nil {
		s.log.WithContext(ctx).Warnw("msg", "record click failed", "pin_id", input.PinID, "click_type", evt.ClickType, "error", err)
		return fmt.Errorf("%w: record click: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// GetPinStats 返回 Pin 最近 days 天的曝光、点击与 CTR。
func (s *AnalyticsService) GetPinStats(ctx context.Context, pinID uuid.UUID, days int) (*vo.PinStats, error) {
	if pinID == uuid.Nil {
		return nil, fmt.Errorf("%w: pin id is required", ErrInvalidArgument)
	}
	if days <= 0 {
		days = DefaultStatsDays
	}
	if days > MaxStatsDays {
		days = MaxStatsDays
	}
	since := s.now().UTC().Add(-time.Duration(days) * 24 * time.Hour)

	impressions, err := s.engagement.CountImpressionsSince(ctx, nil, pinID, since)
	if err != nil {
		s.log.WithContext(ctx).Errorw("msg", "count impressions failed", "pin_id", pinID, "error", err)
		return nil, fmt.Errorf("%w: count impressions: %w", ErrStoreUnavailable, err)
	}
	byType, err := s.engagement.CountClicksByTypeSince(ctx, nil, pinID, since)
	if err != nil {
		s.log.WithContext(ctx).Errorw("msg", "count clicks failed", "pin_id", pinID, "error", err)
		return nil, fmt.Errorf("%w: count clicks: %w", ErrStoreUnavailable, err)
	}

	stats := &vo.PinStats{
		PinID:        pinID.String(),
		Days:         days,
		Impressions:  impressions,
		ClicksByType: make(map[string]int64, len(byType)),
	}
	for clickType, count := range byType {
		stats.ClicksByType[clickType] = count
		stats.Clicks += count
	}
	if impressions > 0 {
		stats.CTR = float64(stats.Clicks) / float64(impressions)
	}
	return stats, nil
}
