// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xmdc: 诊断上下文（MDC）存取与 slog 日志标注
//   - xprocdata: 流程执行上下文到诊断上下文的投影
//
// 设计原则：
//   - 诊断上下文作为显式协作方注入，不使用包级全局状态
//   - 自动把作用域内的流程上下文字段注入日志
//   - 通过配置停用的角色保证零运行时开销
package observability
