// Package xprocdata 把流程执行的上下文数据投影到日志诊断上下文。
//
// 在 [github.com/omeyang/flowkit/pkg/context/xsection] 的分段式属性栈之上，
// 绑定固定的六个逻辑角色（活动 ID、应用名称、业务键、流程定义 ID、
// 流程实例 ID、租户 ID）到配置的诊断上下文键名，并把每次入栈/出栈即时
// 同步进注入的 [github.com/omeyang/flowkit/pkg/observability/xmdc.Store]，
// 使作用域内发出的日志自动携带流程上下文字段。
//
// # 典型流程
//
// 引擎执行每进入一层嵌套活动调用，用当前执行的上下文值开启一个 section；
// 调用返回时弹出该 section，诊断上下文随之恢复到外层作用域的值：
//
//	pd, _ := xprocdata.New(props, store)
//	if pd.PushSection(execution) {
//	    defer pd.PopSection()
//	}
//	// 此作用域内发出的日志自动携带 activityId、tenantId 等字段
//
// 跨嵌套引擎调用边界时，用 [Context.CaptureMDC] 把调用方留在诊断上下文中
// 的环境值记成一个隐式 section，嵌套调用结束后弹出即可原样恢复。
//
// # 角色停用
//
// 绑定为空白的角色在实例生命周期内保持停用；全部角色停用时，每个操作都是
// 除一次判断外零开销的空操作——通过配置关闭该特性没有运行时代价。
//
// # 生命周期与并发
//
// 一个实例归属一个顶层工作单元（如一次引擎命令执行），在其生命周期内
// section 严格 LIFO 嵌套地反复创建销毁。单 goroutine 约束，不加锁。
package xprocdata
