package xprocdata

import "strings"

// Properties 六个逻辑角色到诊断上下文键名的绑定。
//
// 空白（空或仅空白符）的绑定表示该角色在实例生命周期内永久停用。
// 启用键名的集合在构造时固定。
type Properties struct {
	// ActivityID 活动 ID 的键名。
	ActivityID string

	// ApplicationName 应用名称的键名。
	ApplicationName string

	// BusinessKey 业务键的键名。
	BusinessKey string

	// DefinitionID 流程定义 ID 的键名。
	DefinitionID string

	// InstanceID 流程实例 ID 的键名。
	InstanceID string

	// TenantID 租户 ID 的键名。
	TenantID string
}

// activeNames 返回非空白绑定的键名列表，顺序与角色声明顺序一致。
// 键名按原样保留（仅判空时做 TrimSpace）。
func (p Properties) activeNames() []string {
	names := make([]string, 0, 6)
	for _, name := range []string{
		p.ActivityID,
		p.ApplicationName,
		p.BusinessKey,
		p.DefinitionID,
		p.InstanceID,
		p.TenantID,
	} {
		if active(name) {
			names = append(names, name)
		}
	}
	return names
}

// active 判断键名绑定是否启用。
func active(name string) bool {
	return strings.TrimSpace(name) != ""
}
