// Package xprocconf 加载日志上下文的键名绑定配置。
//
// 六个逻辑角色（活动 ID、应用名称、业务键、流程定义 ID、流程实例 ID、
// 租户 ID）各有一个字符串设置，命名写入诊断上下文时使用的键名；
// 设为空白即停用该角色。绑定默认位于配置树的 logging_context 键下：
//
//	logging_context:
//	  activity_id: activityId
//	  tenant_id: tenantId
//	  business_key: orderNumber
//
// # 加载语义
//
//   - 文件中未出现的键保持 [Default] 的默认值
//   - 文件中显式设为空字符串的键表示停用该角色（不会被默认值顶替）
//   - 支持 YAML/JSON，[Load] 按扩展名自动检测格式
//
// # 热更新
//
// [Watch] 基于 fsnotify 监视配置文件变更并带防抖地重新加载。已构造的
// 上下文实例的绑定在其生命周期内保持固定，变更只对之后创建的实例生效。
package xprocconf
