package xprocdata

import (
	"github.com/omeyang/flowkit/pkg/context/xsection"
	"github.com/omeyang/flowkit/pkg/observability/xmdc"
)

// Context 面向日志投影的流程数据上下文。
//
// 以 section 为单位跟踪推送的流程属性，并把每次变更即时同步进注入的
// 诊断上下文 store：入栈时写入新值（显式空值则移除键），出栈时恢复为
// 弹出后的最新生效值。诊断上下文因此始终反映最内层仍开启作用域的值。
type Context struct {
	stack      *xsection.Stack
	store      xmdc.Store
	props      Properties
	names      []string
	resolveApp ApplicationResolver
}

// New 创建 Context。
//
// props 中绑定为空白的角色在实例生命周期内保持停用；启用键名集合自此固定。
// store 为 nil 时返回 ErrNilStore。
func New(props Properties, store xmdc.Store, opts ...Option) (*Context, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	c := &Context{
		store: store,
		props: props,
		names: props.activeNames(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.stack = xsection.New(
		xsection.WithPushHook(c.storeValue),
		xsection.WithPopHook(c.storeValue),
	)
	return c, nil
}

// PushSection 开启新 section，把 execution 的当前上下文值入栈并同步诊断上下文。
//
// 本实例首个 section 入栈前会先清空诊断上下文中的全部启用键，避免上一个
// 无关上下文的残留条目泄漏进来。活动 ID、流程定义 ID、流程实例 ID、租户 ID
// 总是参与推送；应用名称仅在解析器报告有活跃应用时参与；业务键仅在配置了
// 键名时参与。每次真正入栈的值即时写入诊断上下文（显式空值则移除键）。
//
// 返回 true 表示至少一个属性发生变化，调用方随后必须配对调用一次
// [Context.PopSection]。没有任何启用角色时直接返回 false，零开销。
func (c *Context) PushSection(exec Execution) bool {
	if len(c.names) == 0 {
		return false
	}
	if !c.stack.Tracked() {
		c.ClearMDC()
	}

	entries := make([]xsection.Entry, 0, 6)
	entries = appendEntry(entries, c.props.ActivityID, exec.ActivityID)
	entries = appendEntry(entries, c.props.DefinitionID, exec.ProcessDefinitionID)
	entries = appendEntry(entries, c.props.InstanceID, exec.ProcessInstanceID)
	entries = appendEntry(entries, c.props.TenantID, exec.TenantID)

	if active(c.props.ApplicationName) && c.resolveApp != nil {
		if name, ok := c.resolveApp(); ok {
			entries = append(entries, xsection.Entry{
				Property: c.props.ApplicationName,
				Value:    xsection.String(name),
			})
		}
	}
	if active(c.props.BusinessKey) {
		entries = appendEntry(entries, c.props.BusinessKey, exec.BusinessKey)
	}

	return c.stack.PushSection(entries...)
}

// PopSection 弹出最近一个 section，并把每个被弹出属性的新栈顶重新同步
// 进诊断上下文（有值写入、无值移除）。没有启用角色或没有开启中的
// section 时为安全空操作。
func (c *Context) PopSection() {
	if len(c.names) == 0 {
		return
	}
	c.stack.PopSection()
}

// Latest 返回属性的当前生效值；未跟踪或当前为显式空值时 ok 为 false。
func (c *Context) Latest(property string) (string, bool) {
	return c.stack.Latest(property).Get()
}

// ClearMDC 无条件从诊断上下文移除全部启用键。
// 首个 section 入栈前自动调用，也可用于显式重置。
func (c *Context) ClearMDC() {
	for _, name := range c.names {
		c.store.Remove(name)
	}
}

// SyncMDC 把每个启用属性的当前生效值重新投影进诊断上下文。
//
// 用于其它代码路径可能越过本实例改写了诊断上下文之后的状态恢复。
// 本实例从未跟踪过任何值时不做任何事。
func (c *Context) SyncMDC() {
	if !c.stack.Tracked() {
		return
	}
	for _, name := range c.names {
		c.storeValue(name, c.stack.Latest(name))
	}
}

// CaptureMDC 以隐式 section 记住诊断上下文的当前值。
//
// 用于进入嵌套引擎调用的边界：嵌套调用需要继承调用方留在诊断上下文中的
// 环境值，并在退出时原样恢复。值从诊断上下文读取（而非 execution），
// 且静默入栈——诊断上下文已持有这些值，重复写回属于多余写入。
// 之后一次 [Context.PopSection] 即可撤销本次捕获。
func (c *Context) CaptureMDC() {
	if len(c.names) == 0 {
		return
	}
	entries := make([]xsection.Entry, 0, len(c.names))
	for _, name := range c.names {
		value := xsection.Null()
		if s, ok := c.store.Get(name); ok {
			value = xsection.String(s)
		}
		entries = append(entries, xsection.Entry{Property: name, Value: value})
	}
	c.stack.PushSectionWith(nil, entries...)
}

// storeValue 把属性的最新生效值同步进诊断上下文：有值写入，空值移除。
// 同时充当入栈与出栈回调（两者参数形状一致）。
func (c *Context) storeValue(property string, value xsection.Value) {
	if s, ok := value.Get(); ok {
		c.store.Put(property, s)
	} else {
		c.store.Remove(property)
	}
}

// appendEntry 当键名启用时追加一个候选条目；get 的 ok 为 false 时推送显式空值。
func appendEntry(entries []xsection.Entry, name string, get func() (string, bool)) []xsection.Entry {
	if !active(name) {
		return entries
	}
	value := xsection.Null()
	if s, ok := get(); ok {
		value = xsection.String(s)
	}
	return append(entries, xsection.Entry{Property: name, Value: value})
}
