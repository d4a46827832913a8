// Package mappers 提供数据库行与领域模型之间的转换工具。
package mappers

import (
	"time"

	"github.com/google/uuid"
	"github.com/localsquares/board-rotation/internal/models/po"
	boarddb "github.com/localsquares/board-rotation/internal/repositories/boarddb"

	"github.com/jackc/pgx/v5/pgtype"
)

// PinFromListRow 将 sqlc 结构转换为领域对象。
func PinFromListRow(row boarddb.ListActivePinsByBoardRow) *po.Pin {
	return PinFromRow(boarddb.GetPinRow(row))
}

// PinFromRow 将单行 Pin 查询结果转换为领域对象。
func PinFromRow(row boarddb.GetPinRow) *po.Pin {
	return &po.Pin{
		ID:                  row.ID,
		BoardID:             row.BoardID,
		UserID:              row.UserID,
		Title:               row.Title,
		Caption:             textPtr(row.Caption),
		ImageURL:            row.ImageUrl,
		ThumbnailURL:        textPtr(row.ThumbnailUrl),
		Status:              row.Status,
		Impressions24h:      row.Impressions24h,
		ViewCount:           row.ViewCount,
		ClickCount:          row.ClickCount,
		CreatedAt:           timestampPtr(row.CreatedAt),
		ContentUpdatedAt:    timestampPtr(row.ContentUpdatedAt),
		LastImpressionReset: timestampPtr(row.LastImpressionReset),
		SubscriptionStatus:  textPtr(row.SubscriptionStatus),
	}
}

// ToPgText 将 *string 转换为 pgtype.Text。
func ToPgText(value *string) pgtype.Text {
	if value == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *value, Valid: true}
}

// ToPgUUID 将 *uuid.UUID 转换为 pgtype.UUID。
func ToPgUUID(value *uuid.UUID) pgtype.UUID {
	if value == nil || *value == uuid.Nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *value, Valid: true}
}

// ToPgTimestamptzPtr 将 *time.Time 转换为 pgtype.Timestamptz。
func ToPgTimestamptzPtr(value *time.Time) pgtype.Timestamptz {
	if value == nil || value.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: value.UTC(), Valid: true}
}

// ToPgTimestamptz 将 time.Time 转换为 pgtype.Timestamptz，零值视为 NULL。
func ToPgTimestamptz(value time.Time) pgtype.Timestamptz {
	return ToPgTimestamptzPtr(&value)
}

// ToPgDate 取 value 所在时区的日历日期。
func ToPgDate(value time.Time) pgtype.Date {
	if value.IsZero() {
		return pgtype.Date{}
	}
	y, m, d := value.Date()
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func textPtr(value pgtype.Text) *string {
	if !value.Valid {
		return nil
	}
	return &value.String
}

func timestampPtr(value pgtype.Timestamptz) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time.UTC()
	return &t
}
