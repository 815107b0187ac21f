package xprocdata

import "errors"

var (
	// ErrNilStore 表示注入的诊断上下文 store 为 nil。
	ErrNilStore = errors.New("xprocdata: store is nil")
)
