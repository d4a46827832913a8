package services

import "errors"

var (
	// ErrStoreUnavailable 表示内容存储不可用，调用方不应将其视为“没有内容”。
	ErrStoreUnavailable = errors.New("content store unavailable")
	// ErrInvalidArgument 表示请求参数非法。
	ErrInvalidArgument = errors.New("invalid argument")
)
