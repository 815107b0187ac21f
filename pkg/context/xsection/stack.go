package xsection

import "strings"

// =============================================================================
// 回调与条目类型
// =============================================================================

// PushHook 值入栈后的同步回调。
//
// 在栈完成变更之后、PushSection 返回之前，对每个真正入栈的属性调用一次，
// 供观察方把变更镜像到别处（如诊断上下文）。value 为本次入栈的值。
type PushHook func(property string, value Value)

// PopHook 值出栈后的同步回调。
//
// 对被弹出 section 中的每个属性调用一次，top 为弹出后该属性的最新生效值
//（栈空或栈顶为显式空值时为 [Absent]），供观察方把外部状态恢复到下层值。
type PopHook func(property string, top Value)

// Entry 一次 section 推送中的一个候选属性值对。
type Entry struct {
	// Property 属性名，空白时该条目被静默忽略。
	Property string

	// Value 候选值。[Absent] 与 [Null] 等价处理（入栈为显式空值帧）。
	Value Value
}

// =============================================================================
// 构造选项
// =============================================================================

// Option Stack 构造选项。
type Option func(*Stack)

// WithPushHook 设置默认的入栈回调。未设置时入栈不产生任何外部副作用。
func WithPushHook(hook PushHook) Option {
	return func(s *Stack) { s.onPush = hook }
}

// WithPopHook 设置出栈回调。未设置时出栈不产生任何外部副作用。
func WithPopHook(hook PopHook) Option {
	return func(s *Stack) { s.onPop = hook }
}

// =============================================================================
// Stack 实现
// =============================================================================

// Stack 分段式多属性值栈。
//
// values 记录每个属性的值栈（切片尾部为栈顶）；sections 记录每个开启中
// section 涉及的属性名列表。不变量：对每个属性，所有存活 section 中该属性
// 出现的总次数等于其当前栈深与首个 section 之前栈深之差。
type Stack struct {
	values   map[string][]Value
	sections [][]string
	onPush   PushHook
	onPop    PopHook
}

// New 创建空的 Stack。
func New(opts ...Option) *Stack {
	s := &Stack{values: make(map[string][]Value)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PushSection 开启新 section，使用构造时注入的入栈回调。
//
// 逐条处理 entries：空白属性名跳过；新值与当前栈顶等价（空值等于空值、
// 字符串按内容比较）时跳过；否则惰性创建 section 记录、入栈新帧并触发回调。
// 返回 true 表示至少一个属性发生变化（创建了 section），调用方随后必须
// 配对调用一次 [Stack.PopSection]。
func (s *Stack) PushSection(entries ...Entry) bool {
	return s.pushSection(s.onPush, entries)
}

// PushSectionWith 使用指定回调开启新 section，语义与 [Stack.PushSection]
// 相同。hook 为 nil 时静默入栈（不触发任何入栈副作用）——用于值已经存在
// 于外部存储、重复写回属于多余写入的场景。
func (s *Stack) PushSectionWith(hook PushHook, entries ...Entry) bool {
	return s.pushSection(hook, entries)
}

func (s *Stack) pushSection(hook PushHook, entries []Entry) bool {
	opened := false
	for _, e := range entries {
		if strings.TrimSpace(e.Property) == "" {
			continue
		}
		if s.top(e.Property).equivalent(e.Value) {
			continue
		}
		if !opened {
			// 惰性物化：第一个真正变化的属性才创建 section 记录
			s.sections = append(s.sections, nil)
			opened = true
		}
		last := len(s.sections) - 1
		s.sections[last] = append(s.sections[last], e.Property)
		s.values[e.Property] = append(s.values[e.Property], normalize(e.Value))
		if hook != nil {
			hook(e.Property, e.Value)
		}
	}
	return opened
}

// PopSection 弹出最近创建的 section：对其中记录的每个属性恰好弹出一帧，
// 恢复下层值，并以弹出后的最新生效值触发出栈回调。
// 没有开启中的 section 时为安全空操作。
func (s *Stack) PopSection() {
	n := len(s.sections)
	if n == 0 {
		return
	}
	section := s.sections[n-1]
	s.sections[n-1] = nil
	s.sections = s.sections[:n-1]

	for _, property := range section {
		frames := s.values[property]
		if len(frames) == 0 {
			// 调用纪律被违反时栈可能已空，按无失败策略跳过
			continue
		}
		s.values[property] = frames[:len(frames)-1]
		if s.onPop != nil {
			s.onPop(property, s.Latest(property))
		}
	}
}

// Latest 返回属性的当前生效值。
//
// 未跟踪、栈已空或栈顶为显式空值时返回 [Absent]——显式空值帧只作为内部
// 占位存在，不从这里暴露。
func (s *Stack) Latest(property string) Value {
	frames := s.values[property]
	if len(frames) == 0 {
		return Absent()
	}
	if top := frames[len(frames)-1]; top.IsPresent() {
		return top
	}
	return Absent()
}

// Tracked 判断是否有任何属性曾经入过栈。
//
// 属性条目在其值栈清空后仍保留在内部映射中，因此一旦返回 true 便在
// 实例生命周期内保持 true。
func (s *Stack) Tracked() bool {
	return len(s.values) > 0
}

// top 返回属性的原始栈顶（含显式空值帧），栈空时为 Absent。去重比较用。
func (s *Stack) top(property string) Value {
	frames := s.values[property]
	if len(frames) == 0 {
		return Absent()
	}
	return frames[len(frames)-1]
}
