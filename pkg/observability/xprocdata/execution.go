package xprocdata

// =============================================================================
// 执行模型协作方
// =============================================================================

// Execution 执行模型协作方的只读访问接口。
//
// 每个访问器返回 (value, ok)；ok 为 false 表示该上下文值当前为空，
// 对应入栈一个显式空值（弹出时恢复下层值），而非跳过该属性。
type Execution interface {
	// ActivityID 当前活动 ID。
	ActivityID() (string, bool)

	// ProcessDefinitionID 流程定义 ID。
	ProcessDefinitionID() (string, bool)

	// ProcessInstanceID 流程实例 ID。
	ProcessInstanceID() (string, bool)

	// TenantID 租户 ID。
	TenantID() (string, bool)

	// BusinessKey 业务键。
	BusinessKey() (string, bool)
}

// ApplicationResolver 解析当前归属应用名称的环境能力。
//
// ok 为 false 表示当前没有可解析的归属应用，此时应用名称角色在本次
// section 中整体跳过（不同于推送显式空值——不会产生可弹出的帧）。
//
// 设计决策: 以注入的函数建模而非进程级全局查找，
// 避免把全局状态引入栈本身，也便于测试替换。
type ApplicationResolver func() (name string, ok bool)
