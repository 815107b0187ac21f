package xprocconf

import "github.com/omeyang/flowkit/pkg/observability/xprocdata"

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式（推荐用于 K8s ConfigMap）。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// Config 日志上下文的键名绑定。
//
// 每个字段命名对应角色写入诊断上下文时使用的键名；空白值表示停用该角色。
type Config struct {
	// ActivityID 活动 ID 的键名。
	ActivityID string `koanf:"activity_id"`

	// ApplicationName 应用名称的键名。
	ApplicationName string `koanf:"application_name"`

	// BusinessKey 业务键的键名。默认停用，按需配置开启。
	BusinessKey string `koanf:"business_key"`

	// DefinitionID 流程定义 ID 的键名。
	DefinitionID string `koanf:"definition_id"`

	// InstanceID 流程实例 ID 的键名。
	InstanceID string `koanf:"instance_id"`

	// TenantID 租户 ID 的键名。
	TenantID string `koanf:"tenant_id"`
}

// Default 返回默认绑定。
//
// 业务键可能携带敏感业务数据，默认空白（停用），其余角色默认启用。
func Default() Config {
	return Config{
		ActivityID:      "activityId",
		ApplicationName: "applicationName",
		DefinitionID:    "processDefinitionId",
		InstanceID:      "processInstanceId",
		TenantID:        "tenantId",
	}
}

// Properties 转换为 xprocdata 使用的角色绑定。
func (c Config) Properties() xprocdata.Properties {
	return xprocdata.Properties{
		ActivityID:      c.ActivityID,
		ApplicationName: c.ApplicationName,
		BusinessKey:     c.BusinessKey,
		DefinitionID:    c.DefinitionID,
		InstanceID:      c.InstanceID,
		TenantID:        c.TenantID,
	}
}
