package services

import "github.com/localsquares/board-rotation/internal/models/po"

// Rand 是轮播所需的随机源，*rand.Rand (math/rand/v2) 满足该接口。
type Rand interface {
	Float64() float64
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// WeightedItem 是参与加权洗牌的 (Pin, 权重) 对，仅在单次调用内存在。
type WeightedItem struct {
	Pin    *po.Pin
	Weight float64
}

// WeightedShuffle 按权重做无放回的顺序抽样：每一步被选中的概率与剩余条目中的权重成正比。
// 剩余权重和 <= 0 时，剩余条目改为均匀随机排列。
func WeightedShuffle(items []WeightedItem, rng Rand) []*po.Pin {
	if len(items) == 0 {
		return []*po.Pin{}
	}
	remaining := make([]WeightedItem, len(items))
	copy(remaining, items)
	result := make([]*po.Pin, 0, len(items))

	for len(remaining) > 0 {
		total := 0.0
		for _, item := range remaining {
			if item.Weight > 0 {
				total += item.Weight
			}
		}
		if total <= 0 {
			rest := make([]*po.Pin, len(remaining))
			for i, item := range remaining {
				rest[i] = item.Pin
			}
			rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
			return append(result, rest...)
		}

		pick := rng.Float64() * total
		chosen := len(remaining) - 1
		cumulative := 0.0
		for i, item := range remaining {
			if item.Weight > 0 {
				cumulative += item.Weight
			}
			if cumulative >= pick {
				chosen = i
				break
			}
		}
		result = append(result, remaining[chosen].Pin)
		remaining = append(remaining[:chosen], remaining[chosen+1:]...)
	}
	return result
}
