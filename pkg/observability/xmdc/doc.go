// Package xmdc 提供日志后端消费的诊断上下文（MDC）存取设施。
//
// # 核心功能
//
//   - [Store]: 最小键值契约（Get/Put/Remove），作为显式协作方注入使用方，
//     而非环境全局状态——便于用假实现测试，也让绑定假设显式化
//   - [MapStore]: 基于 map 的默认实现，同时支持 [Enumerable] 遍历
//   - [TagHandler]: slog.Handler 装饰器，把 Store 中的全部条目自动附加到
//     每条日志记录，使作用域内发出的日志自动携带上下文字段
//
// # 并发模型
//
// Go 没有 thread-local，对应模型是 goroutine 绑定：一个 MapStore 实例归属
// 一个工作单元（及其日志调用发生的 goroutine），不加锁。跨 goroutine 共享
// 同一实例属于未定义行为。除"同一 goroutine 内最后写入生效"外，Store 契约
// 不保证任何顺序语义。
package xmdc
