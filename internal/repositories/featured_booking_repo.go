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

// FeaturedBookingRepository 读取 board.featured_bookings。
type FeaturedBookingRepository struct {
	db      *pgxpool.Pool
	queries *boarddb.Queries
	log     *log.Helper
}

// NewFeaturedBookingRepository 构造仓储实例。
func NewFeaturedBookingRepository(db *pgxpool.Pool, logger log.Logger) *FeaturedBookingRepository {
	return &FeaturedBookingRepository{
		db:      db,
		queries: boarddb.New(db),
		log:     log.NewHelper(logger),
	}
}

// FindTodayPaidPinID 返回看板在 day 当天已支付的置顶 Pin，没有则返回 nil。
// day 取其自身时区的日历日期。
func (r *FeaturedBookingRepository) FindTodayPaidPinID(ctx context.Context, sess Session, boardID uuid.UUID, day time.Time) (*uuid.UUID, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	pinID, err := queries.FindTodayPaidFeaturedPinID(ctx, boarddb.FindTodayPaidFeaturedPinIDParams{
		BoardID:      boardID,
		FeaturedDate: mappers.ToPgDate(day),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find featured booking: %w", err)
	}
	return &pinID, nil
}

// Insert 写入置顶预订，供运维脚本与测试使用。
func (r *FeaturedBookingRepository) Insert(ctx context.Context, sess Session, booking po.FeaturedBooking) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	id := booking.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	status := booking.PaymentStatus
	if status == "" {
		status = po.PaymentStatusPending
	}
	if err := queries.InsertFeaturedBooking(ctx, boarddb.InsertFeaturedBookingParams{
		ID:            id,
		BoardID:       booking.BoardID,
		PinID:         booking.PinID,
		FeaturedDate:  mappers.ToPgDate(booking.FeaturedDate),
		PaymentStatus: status,
	}); err != nil {
		r.log.WithContext(ctx).Errorw("msg", "insert featured booking failed", "board_id", booking.BoardID, "error", err)
		return fmt.Errorf("insert featured booking: %w", err)
	}
	return nil
}
