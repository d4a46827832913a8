// Package vo 定义向上层返回的看板视图对象。
package vo

import "time"

// PinCard 表示轮播结果中的单张卡片。
type PinCard struct {
	PinID        string     `json:"pin_id"`
	BoardID      string     `json:"board_id"`
	Title        string     `json:"title"`
	Caption      string     `json:"caption,omitempty"`
	ImageURL     string     `json:"image_url"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	Featured     bool       `json:"featured"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// RotationResponse 汇总一次轮播返回的数据。
type RotationResponse struct {
	BoardID     string    `json:"board_id"`
	Pins        []PinCard `json:"pins"`
	GeneratedAt time.Time `json:"generated_at"`
}

// PinStats 汇总 Pin 的近似曝光/点击统计。
type PinStats struct {
	PinID        string           `json:"pin_id"`
	Days         int              `json:"days"`
	Impressions  int64            `json:"impressions"`
	Clicks       int64            `json:"clicks"`
	ClicksByType map[string]int64 `json:"clicks_by_type"`
	CTR          float64          `json:"ctr"`
}
