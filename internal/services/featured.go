package services

import "github.com/localsquares/board-rotation/internal/models/po"

// FeaturedPositions 是置顶 Pin 可以落入的下标（即第 1-4 位）。
var FeaturedPositions = []int{0, 1, 2, 3}

// InjectFeatured 将置顶 Pin 插入 FeaturedPositions 中均匀抽取的位置；
// 位置超出列表长度时追加到末尾。featured 为 nil 时原样返回。
func InjectFeatured(pins []*po.Pin, featured *po.Pin, rng Rand) []*po.Pin {
	if featured == nil {
		return pins
	}
	position := FeaturedPositions[rng.IntN(len(FeaturedPositions))]
	if position > len(pins) {
		position = len(pins)
	}
	result := make([]*po.Pin, 0, len(pins)+1)
	result = append(result, pins[:position]...)
	result = append(result, featured)
	result = append(result, pins[position:]...)
	return result
}
