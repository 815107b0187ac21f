package xmdc

import (
	"context"
	"errors"
	"log/slog"
	"sort"
)

// Handler 构造相关错误。
var (
	// ErrNilHandler 当 NewTagHandler 的 base handler 为 nil 时返回。
	ErrNilHandler = errors.New("xmdc: base handler is nil")

	// ErrNilStore 当 NewTagHandler 的 store 为 nil 时返回。
	ErrNilStore = errors.New("xmdc: store is nil")
)

// TagHandler 把诊断上下文条目自动附加到日志记录。
//
// 装饰模式实现，包装底层 slog.Handler，在 Handle() 时将 store 中的全部
// 条目追加为日志属性。配合 section 推送，作用域内发出的每条日志自动携带
// activityId、tenantId 等上下文字段。
//
// 设计决策: 条目按 key 排序后注入，保证同一组条目的输出顺序稳定
//（map 遍历顺序随机，直接注入会让日志行难以比对）。
type TagHandler struct {
	base  slog.Handler
	store Enumerable
}

// NewTagHandler 创建 TagHandler。
func NewTagHandler(base slog.Handler, store Enumerable) (*TagHandler, error) {
	if base == nil {
		return nil, ErrNilHandler
	}
	if store == nil {
		return nil, ErrNilStore
	}
	return &TagHandler{base: base, store: store}, nil
}

// Enabled 委托给底层 handler。
func (h *TagHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

// Handle 在调用底层 handler 前注入 store 中的全部条目。
//
// 重要：根据 slog 契约，必须 Clone record 后再修改，避免影响其他 handler。
func (h *TagHandler) Handle(ctx context.Context, r slog.Record) error {
	var attrs []slog.Attr
	h.store.Range(func(key, value string) bool {
		attrs = append(attrs, slog.String(key, value))
		return true
	})

	if len(attrs) > 0 {
		sort.Slice(attrs, func(i, j int) bool { return attrs[i].Key < attrs[j].Key })
		r = r.Clone()
		r.AddAttrs(attrs...)
	}

	return h.base.Handle(ctx, r)
}

// WithAttrs 返回带额外属性的新 handler。
func (h *TagHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TagHandler{base: h.base.WithAttrs(attrs), store: h.store}
}

// WithGroup 返回带分组的新 handler。
func (h *TagHandler) WithGroup(name string) slog.Handler {
	return &TagHandler{base: h.base.WithGroup(name), store: h.store}
}
