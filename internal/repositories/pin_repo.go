package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/localsquares/board-rotation/internal/models/po"
	"github.com/localsquares/board-rotation/internal/repositories/boarddb"
	"github.com/localsquares/board-rotation/internal/repositories/mappers"
)

// ErrPinNotFound 表示 Pin 不存在。
var ErrPinNotFound = errors.New("pin not found")

// PinRepository 维护 board.pins 与其订阅状态。
type PinRepository struct {
	db      *pgxpool.Pool
	queries *boarddb.Queries
	log     *log.Helper
}

// NewPinRepository 构造仓储实例。
func NewPinRepository(db *pgxpool.Pool, logger log.Logger) *PinRepository {
	return &PinRepository{
		db:      db,
		queries: boarddb.New(db),
		log:     log.NewHelper(logger),
	}
}

func (r *PinRepository) q(sess Session) *boarddb.Queries {
	if sess != nil {
		return r.queries.WithTx(sess.Tx())
	}
	return r.queries
}

// UpsertPinInput 描述 Pin 写入参数。
type UpsertPinInput struct {
	ID                  uuid.UUID
	BoardID             uuid.UUID
	UserID              uuid.UUID
	SubscriptionID      *uuid.UUID
	Title               string
	Caption             *string
	ImageURL            string
	ThumbnailURL        *string
	Status              string
	Impressions24h      int64
	CreatedAt           *time.Time
	ContentUpdatedAt    *time.Time
	LastImpressionReset *time.Time
}

// Upsert 写入或更新 Pin。
func (r *PinRepository) Upsert(ctx context.Context, sess Session, input UpsertPinInput) error {
	status := input.Status
	if status == "" {
		status = po.PinStatusActive
	}
	params := boarddb.UpsertPinParams{
		ID:               input.ID,
		BoardID:          input.BoardID,
		UserID:           input.UserID,
		SubscriptionID:   mappers.ToPgUUID(input.SubscriptionID),
		Title:            input.Title,
		Caption:          mappers.ToPgText(input.Caption),
		ImageUrl:         input.ImageURL,
		ThumbnailUrl:     mappers.ToPgText(input.ThumbnailURL),
		Status:           status,
		Impressions24h:   input.Impressions24h,
		Column11:         mappers.ToPgTimestamptzPtr(input.CreatedAt),
		ContentUpdatedAt: mappers.ToPgTimestamptzPtr(input.ContentUpdatedAt),
		Column13:         mappers.ToPgTimestamptzPtr(input.LastImpressionReset),
	}
	if err := r.q(sess).UpsertPin(ctx, params); err != nil {
		r.log.WithContext(ctx).Errorw("msg", "upsert pin failed", "pin_id", input.ID, "error", err)
		return fmt.Errorf("upsert pin: %w", err)
	}
	return nil
}

// UpsertSubscription 写入订阅状态。
func (r *PinRepository) UpsertSubscription(ctx context.Context, sess Session, id, userID uuid.UUID, status string) error {
	if err := r.q(sess).UpsertSubscription(ctx, boarddb.UpsertSubscriptionParams{
		ID:     id,
		UserID: userID,
		Status: status,
	}); err != nil {
		return fmt.Errorf("upsert subscription: %w", err)
	}
	return nil
}

// Get 返回单个 Pin。
func (r *PinRepository) Get(ctx context.Context, sess Session, pinID uuid.UUID) (*po.Pin, error) {
	row, err := r.q(sess).GetPin(ctx, pinID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPinNotFound
		}
		return nil, fmt.Errorf("get pin: %w", err)
	}
	return mappers.PinFromRow(row), nil
}

// ListActiveByBoard 返回看板下所有 active 状态的 Pin，顺序稳定。
func (r *PinRepository) ListActiveByBoard(ctx context.Context, sess Session, boardID uuid.UUID) ([]*po.Pin, error) {
	rows, err := r.q(sess).ListActivePinsByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("list active pins: %w", err)
	}
	result := make([]*po.Pin, 0, len(rows))
	for _, row := range rows {
		result = append(result, mappers.PinFromListRow(row))
	}
	return result, nil
}

// ListOverdueForReset 返回 last_impression_reset 早于 threshold 的 Pin ID。
func (r *PinRepository) ListOverdueForReset(ctx context.Context, sess Session, threshold time.Time) ([]uuid.UUID, error) {
	ids, err := r.q(sess).ListPinsOverdueForReset(ctx, mappers.ToPgTimestamptz(threshold))
	if err != nil {
		return nil, fmt.Errorf("list pins overdue for reset: %w", err)
	}
	return ids, nil
}

// ResetCounter 清零 24 小时曝光计数；仅当 Pin 仍然逾期时才写入，返回是否发生了重置。
func (r *PinRepository) ResetCounter(ctx context.Context, sess Session, pinID uuid.UUID, threshold, resetAt time.Time) (bool, error) {
	affected, err := r.q(sess).ResetPinImpressions(ctx, boarddb.ResetPinImpressionsParams{
		ID:                  pinID,
		Threshold:           mappers.ToPgTimestamptz(threshold),
		LastImpressionReset: mappers.ToPgTimestamptz(resetAt),
	})
	if err != nil {
		return false, fmt.Errorf("reset pin impressions: %w", err)
	}
	return affected > 0, nil
}

// IncrementImpressions 累加曝光计数。
func (r *PinRepository) IncrementImpressions(ctx context.Context, sess Session, pinID uuid.UUID) error {
	if err := r.q(sess).IncrementPinImpressions(ctx, pinID); err != nil {
		return fmt.Errorf("increment pin impressions: %w", err)
	}
	return nil
}

// IncrementClicks 累加点击计数。
func (r *PinRepository) IncrementClicks(ctx context.Context, sess Session, pinID uuid.UUID) error {
	if err := r.q(sess).IncrementPinClicks(ctx, pinID); err != nil {
		return fmt.Errorf("increment pin clicks: %w", err)
	}
	return nil
}
