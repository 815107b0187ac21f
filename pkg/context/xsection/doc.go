// Package xsection 提供分段式（section-based）多属性值栈。
//
// 执行进入一层嵌套作用域时，调用 [Stack.PushSection] 把一组属性的新值入栈；
// 作用域退出时调用 [Stack.PopSection]，精确撤销该次入栈的全部条目并恢复
// 下层值。每个属性各自维护一个 LIFO 值栈，栈顶即当前生效值。
//
// # Section 语义
//
//   - 惰性物化：一次 PushSection 中至少有一个属性值真正发生变化时才会创建
//     section 记录；全部值与当前栈顶相同时不创建（PushSection 返回 false）。
//   - 按值去重：新值与当前栈顶相等（含空值等于空值）时跳过，不产生新帧。
//   - 空白属性名惰性：属性名为空白时静默忽略，永远不会被跟踪。
//   - 显式空值：通过 [Null] 推送的空值会占据一个可弹出的帧，弹出时恢复
//     下层值；对外读取时与"从未设置"同样表现为无值。
//
// # 调用纪律
//
// 每次返回 true 的 PushSection 必须与之后恰好一次 PopSection 配对，且弹出
// 顺序与推入顺序严格相反（镜像嵌套调用的进入/返回）。违反该纪律不会崩溃，
// 但会导致恢复出错误的值。多余的 PopSection 是安全空操作。
//
// # 并发模型
//
// 单 goroutine 约束：一个 Stack 实例归属一个逻辑工作单元，不加锁；
// 跨 goroutine 并发使用同一实例属于未定义行为。
package xsection
