package services

import (
	"time"

	"github.com/localsquares/board-rotation/internal/models/po"
)

// 权重模型参数。
const (
	NewCardBoostMax   = 2.0
	NewCardDecayHours = 72.0
	UpdateBoost       = 1.3
	UpdateBoostDays   = 7
	SeenPenalty       = 0.5
)

// PinWeight 计算 Pin 在本次轮播中的权重：
// 基础权重 1/(impressions_24h+1)，乘以新卡加成、更新加成与已看惩罚。
func PinWeight(pin *po.Pin, now time.Time, seenToday bool) float64 {
	if pin == nil {
		return 0
	}
	impressions := pin.Impressions24h
	if impressions < 0 {
		impressions = 0
	}
	weight := 1.0 / float64(impressions+1)
	weight *= NewCardBoost(pin.CreatedAt, now)
	weight *= ContentUpdateBoost(pin.ContentUpdatedAt, now)
	if seenToday {
		weight *= SeenPenalty
	}
	return weight
}

// NewCardBoost 返回新卡加成：创建时 2.0，72 小时内线性衰减到 1.0。
// createdAt 缺失时不加成。
func NewCardBoost(createdAt *time.Time, now time.Time) float64 {
	if createdAt == nil || createdAt.IsZero() {
		return 1.0
	}
	hours := now.Sub(*createdAt).Hours()
	if hours < 0 {
		hours = 0
	}
	if hours >= NewCardDecayHours {
		return 1.0
	}
	return NewCardBoostMax - (hours/NewCardDecayHours)*(NewCardBoostMax-1.0)
}

// ContentUpdateBoost 返回内容更新加成：更新后 7 个整天内为 1.3。
func ContentUpdateBoost(updatedAt *time.Time, now time.Time) float64 {
	if updatedAt == nil || updatedAt.IsZero() {
		return 1.0
	}
	days := int(now.Sub(*updatedAt) / (24 * time.Hour))
	if days < UpdateBoostDays {
		return UpdateBoost
	}
	return 1.0
}

// IsEligible 判断 Pin 是否可参与轮播。
// 未关联订阅的 Pin 始终可参与；关联了订阅的 Pin 仅在 active / past_due 时参与。
func IsEligible(pin *po.Pin) bool {
	if pin == nil {
		return false
	}
	if pin.SubscriptionStatus == nil {
		return true
	}
	switch *pin.SubscriptionStatus {
	case po.SubscriptionStatusActive, po.SubscriptionStatusPastDue:
		return true
	default:
		return false
	}
}
