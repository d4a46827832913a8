package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/localsquares/board-rotation/internal/models/po"
	"github.com/localsquares/board-rotation/internal/models/vo"
	"github.com/localsquares/board-rotation/internal/repositories"
)

// 轮播条数默认值与上限。
const (
	DefaultRotationLimit = 50
	MaxRotationLimit     = 100
)

// RotationOptions 描述轮播服务的可配置项。
type RotationOptions struct {
	DefaultLimit int
	MaxLimit     int
	// Location 决定看板的“今天”，nil 时使用 UTC。
	Location *time.Location
}

// GetRotatedPinsInput 描述获取轮播所需的参数。
type GetRotatedPinsInput struct {
	BoardID   uuid.UUID
	SessionID string
	Limit     int
}

// RotationResult 是一次轮播的有序结果。
type RotationResult struct {
	BoardID       uuid.UUID
	Pins          []*po.Pin
	FeaturedPinID *uuid.UUID
	GeneratedAt   time.Time
}

// RecordImpressionInput 描述一次曝光。
type RecordImpressionInput struct {
	PinID     uuid.UUID
	BoardID   uuid.UUID
	SessionID string
	UserID    *uuid.UUID
	IPAddress string
	UserAgent string
	Referrer  string
}

// RotationService 决定看板上 Pin 的展示顺序，兼顾曝光公平与付费置顶。
type RotationService struct {
	pins       PinStore
	bookings   FeaturedBookingStore
	engagement EngagementStore
	tx         Transactor
	newRand    RandFactory
	now        Clock
	opts       RotationOptions
	log        *log.Helper
}

// NewRotationService 构造 RotationService。
func NewRotationService(
	pins PinStore,
	bookings FeaturedBookingStore,
	engagement EngagementStore,
	tx Transactor,
	newRand RandFactory,
	now Clock,
	opts RotationOptions,
	logger log.Logger,
) *RotationService {
	if newRand == nil {
		newRand = NewRandFactory()
	}
	if now == nil {
		now = NewClock()
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = DefaultRotationLimit
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = MaxRotationLimit
	}
	if opts.DefaultLimit > opts.MaxLimit {
		opts.DefaultLimit = opts.MaxLimit
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &RotationService{
		pins:       pins,
		bookings:   bookings,
		engagement: engagement,
		tx:         tx,
		newRand:    newRand,
		now:        now,
		opts:       opts,
		log:        log.NewHelper(logger),
	}
}

// GetRotatedPins 返回看板本次的轮播顺序。
func (s *RotationService) GetRotatedPins(ctx context.Context, input GetRotatedPinsInput) (*RotationResult, error) {
	if input.BoardID == uuid.Nil {
		return nil, fmt.Errorf("%w: board id is required", ErrInvalidArgument)
	}
	limit := s.clampLimit(input.Limit)
	now := s.now()
	local := now.In(s.opts.Location)
	startOfToday := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.opts.Location)
	result := &RotationResult{
		BoardID:     input.BoardID,
		Pins:        []*po.Pin{},
		GeneratedAt: now.UTC(),
	}

	pins, err := s.pins.ListActiveByBoard(ctx, nil, input.BoardID)
	if err != nil {
		s.log.WithContext(ctx).Errorw("msg", "list active pins failed", "board_id", input.BoardID, "error", err)
		return nil, fmt.Errorf("%w: list active pins: %w", ErrStoreUnavailable, err)
	}
	if len(pins) == 0 {
		return result, nil
	}

	featuredPinID, err := s.bookings.FindTodayPaidPinID(ctx, nil, input.BoardID, local)
	if err != nil {
		s.log.WithContext(ctx).Errorw("msg", "find featured booking failed", "board_id", input.BoardID, "error", err)
		return nil, fmt.Errorf("%w: find featured booking: %w", ErrStoreUnavailable, err)
	}

	seen := map[uuid.UUID]struct{}{}
	if sessionID := strings.TrimSpace(input.SessionID); sessionID != "" {
		ids, seenErr := s.engagement.ListSeenPinIDs(ctx, nil, sessionID, input.BoardID, startOfToday)
		if seenErr != nil {
			s.log.WithContext(ctx).Errorw("msg", "list seen pins failed", "board_id", input.BoardID, "error", seenErr)
			return nil, fmt.Errorf("%w: list seen pins: %w", ErrStoreUnavailable, seenErr)
		}
		for _, id := range ids {
			seen[id] = struct{}{}
		}
	}

	var featured *po.Pin
	candidates := make([]WeightedItem, 0, len(pins))
	for _, pin := range pins {
		if !IsEligible(pin) {
			continue
		}
		if featuredPinID != nil && pin.ID == *featuredPinID {
			if featured == nil {
				featured = pin
			}
			continue
		}
		_, wasSeen := seen[pin.ID]
		candidates = append(candidates, WeightedItem{Pin: pin, Weight: PinWeight(pin, now, wasSeen)})
	}

	rng := s.newRand()
	ordered := InjectFeatured(WeightedShuffle(candidates, rng), featured, rng)
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}
	result.Pins = ordered
	if featured != nil {
		id := featured.ID
		result.FeaturedPinID = &id
	}
	return result, nil
}

// GetBoardRotation 返回面向上层的轮播视图。
func (s *RotationService) GetBoardRotation(ctx context.Context, input GetRotatedPinsInput) (*vo.RotationResponse, error) {
	res, err := s.GetRotatedPins(ctx, input)
	if err != nil {
		return nil, err
	}
	return &vo.RotationResponse{
		BoardID:     res.BoardID.String(),
		Pins:        vo.PinCardsFromPins(res.Pins, res.FeaturedPinID),
		GeneratedAt: res.GeneratedAt,
	}, nil
}

// RecordImpression 追加一条曝光并累加 Pin 的 24 小时计数。
// 失败只记录日志，不在此处重试；丢失一条曝光只会略微削弱后续的公平性。
func (s *RotationService) RecordImpression(ctx context.Context, input RecordImpressionInput) error {
	if input.PinID == uuid.Nil || input.BoardID == uuid.Nil {
		return fmt.Errorf("%w: pin id and board id are required", ErrInvalidArgument)
	}
	evt := po.NewImpression(po.EventParams{
		PinID:     input.PinID,
		BoardID:   input.BoardID,
		SessionID: input.SessionID,
		UserID:    input.UserID,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
		Referrer:  input.Referrer,
		CreatedAt: s.now().UTC(),
	})
	err := s.tx.WithinTx(ctx, func(ctx context.Context, sess repositories.Session) error {
		if err := s.engagement.InsertImpression(ctx, sess, evt); err != nil {
			return err
		}
		return s.pins.IncrementImpressions(ctx, sess, evt.PinID)
	})
	if err != nil {
		s.log.WithContext(ctx).Warnw("msg", "record impression failed", "pin_id", input.PinID, "board_id", input.BoardID, "error", err)
		return fmt.Errorf("%w: record impression: %w", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *RotationService) clampLimit(limit int) int {
	if limit <= 0 {
		return s.opts.DefaultLimit
	}
	if limit > s.opts.MaxLimit {
		return s.opts.MaxLimit
	}
	return limit
}
