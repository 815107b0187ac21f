package xprocdata

// Option Context 构造选项。
type Option func(*Context)

// WithApplicationResolver 注入当前归属应用名称的解析器。
//
// 未注入时应用名称角色永远不会入栈，等价于环境中始终没有活跃应用。
func WithApplicationResolver(resolver ApplicationResolver) Option {
	return func(c *Context) { c.resolveApp = resolver }
}
