package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/localsquares/board-rotation/internal/models/po"
	"github.com/localsquares/board-rotation/internal/repositories/boarddb"
	"github.com/localsquares/board-rotation/internal/repositories/mappers"
)

// EngagementRepository 负责 board.impressions 与 board.clicks 的写入与统计。
type EngagementRepository struct {
	db      *pgxpool.Pool
	queries *boarddb.Queries
	log     *log.Helper
}

// NewEngagementRepository 构造仓储实例。
func NewEngagementRepository(db *pgxpool.Pool, logger log.Logger) *EngagementRepository {
	return &EngagementRepository{
		db:      db,
		queries: boarddb.New(db),
		log:     log.NewHelper(logger),
	}
}

func (r *EngagementRepository) q(sess Session) *boarddb.Queries {
	if sess != nil {
		return r.queries.WithTx(sess.Tx())
	}
	return r.queries
}

// InsertImpression 写入曝光事件。
func (r *EngagementRepository) InsertImpression(ctx context.Context, sess Session, evt po.Impression) error {
	params := boarddb.InsertImpressionParams{
		ID:        evt.ID,
		PinID:     evt.PinID,
		BoardID:   evt.BoardID,
		SessionID: mappers.ToPgText(evt.SessionID),
		UserID:    mappers.ToPgUUID(evt.UserID),
		IpAddress: mappers.ToPgText(evt.IPAddress),
		UserAgent: mappers.ToPgText(evt.UserAgent),
		Referrer:  mappers.ToPgText(evt.Referrer),
		Column9:   mappers.ToPgTimestamptz(evt.CreatedAt),
	}
	if err := r.q(sess).InsertImpression(ctx, params); err != nil {
		r.log.WithContext(ctx).Errorw("msg", "insert impression failed", "pin_id", evt.PinID, "error", err)
		return fmt.Errorf("insert impression: %w", err)
	}
	return nil
}

// InsertClick 写入点击事件。
func (r *EngagementRepository) InsertClick(ctx context.Context, sess Session, evt po.Click) error {
	params := boarddb.InsertClickParams{
		ID:        evt.ID,
		PinID:     evt.PinID,
		BoardID:   evt.BoardID,
		ClickType: evt.ClickType,
		SessionID: mappers.ToPgText(evt.SessionID),
		UserID:    mappers.ToPgUUID(evt.UserID),
		IpAddress: mappers.ToPgText(evt.IPAddress),
		UserAgent: mappers.ToPgText(evt.UserAgent),
		Column9:   mappers.ToPgTimestamptz(evt.CreatedAt),
	}
	if err := r.q(sess).InsertClick(ctx, params); err != nil {
		r.log.WithContext(ctx).Errorw("msg", "insert click failed", "pin_id", evt.PinID, "error", err)
		return fmt.Errorf("insert click: %w", err)
	}
	return nil
}

// ListSeenPinIDs 返回会话自 since 起在看板上已曝光过的 Pin。
func (r *EngagementRepository) ListSeenPinIDs(ctx context.Context, sess Session, sessionID string, boardID uuid.UUID, since time.Time) ([]uuid.UUID, error) {
	if sessionID == "" {
		return nil, nil
	}
	ids, err := r.q(sess).ListSeenPinIDs(ctx, boarddb.ListSeenPinIDsParams{
		SessionID: pgtype.Text{String: sessionID, Valid: true},
		BoardID:   boardID,
		CreatedAt: mappers.ToPgTimestamptz(since),
	})
	if err != nil {
		return nil, fmt.Errorf("list seen pin ids: %w", err)
	}
	return ids, nil
}

// CountImpressionsSince 统计 Pin 自 since 起的曝光数。
func (r *EngagementRepository) CountImpressionsSince(ctx context.Context, sess Session, pinID uuid.UUID, since time.Time) (int64, error) {
	count, err := r.q(sess).CountImpressionsSince(ctx, boarddb.CountImpressionsSinceParams{
		PinID:     pinID,
		CreatedAt: mappers.ToPgTimestamptz(since),
	})
	if err != nil {
		return 0, fmt.Errorf("count impressions: %w", err)
	}
	return count, nil
}

// CountClicksByTypeSince 按点击类型统计 Pin 自 since 起的点击数。
func (r *EngagementRepository) CountClicksByTypeSince(ctx context.Context, sess Session, pinID uuid.UUID, since time.Time) (map[string]int64, error) {
	rows, err := r.q(sess).ListClickTypeCountsSince(ctx, boarddb.ListClickTypeCountsSinceParams{
		PinID:     pinID,
		CreatedAt: mappers.ToPgTimestamptz(since),
	})
	if err != nil {
		return nil, fmt.Errorf("count clicks by type: %w", err)
	}
	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.ClickType] = row.Clicks
	}
	return result, nil
}
