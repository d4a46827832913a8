package services

import (
	"math/rand/v2"
	"time"
)

// RandFactory 为每次调用产生独立的随机源，避免并发请求共享未同步的生成器。
type RandFactory func() Rand

// Clock 返回当前时间。
type Clock func() time.Time

// NewRandFactory 返回默认的随机源工厂，每次调用以全局安全源播种一个新的 PCG。
func NewRandFactory() RandFactory {
	return func() Rand {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
}

// SeededRandFactory 返回固定种子的工厂，同一种子产生相同序列，用于可复现的测试。
func SeededRandFactory(seed uint64) RandFactory {
	return func() Rand {
		return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// NewClock 返回系统时钟。
func NewClock() Clock {
	return time.Now
}
