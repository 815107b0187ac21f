package xsection

// =============================================================================
// Value 三态变体
// =============================================================================

// valueKind 区分 Value 的三种状态。
type valueKind uint8

const (
	kindAbsent  valueKind = iota // 无值（栈上没有条目）
	kindNull                     // 显式空值（占位帧，弹出时恢复下层值）
	kindPresent                  // 有具体字符串值
)

// Value 表示属性栈中的一个值：present(string) | 显式空值 | 无值。
//
// 设计决策: 使用变体类型而非保留字符串哨兵标记"显式空值"，
// 真实值不可能与内部占位碰撞，消除整类冲突缺陷。
type Value struct {
	str  string
	kind valueKind
}

// String 构造携带具体字符串的 Value。
func String(s string) Value {
	return Value{str: s, kind: kindPresent}
}

// Null 构造显式空值。
//
// 与 [Absent] 的区别：显式空值入栈后占据一个可弹出的帧，
// 弹出时恢复该属性的下层值；对外读取时两者同样表现为无值。
func Null() Value {
	return Value{kind: kindNull}
}

// Absent 构造无值状态。
func Absent() Value {
	return Value{kind: kindAbsent}
}

// Get 返回字符串值；ok 为 false 表示显式空值或无值。
func (v Value) Get() (string, bool) {
	return v.str, v.kind == kindPresent
}

// IsPresent 判断是否携带具体字符串值。
func (v Value) IsPresent() bool {
	return v.kind == kindPresent
}

// IsNullish 判断是否为显式空值或无值。
// 入栈去重时两种空态视为相等。
func (v Value) IsNullish() bool {
	return v.kind != kindPresent
}

// equivalent 去重语义下的相等：两种空态互相等价，present 比较字符串内容。
func (v Value) equivalent(o Value) bool {
	if v.kind != kindPresent {
		return o.kind != kindPresent
	}
	return o.kind == kindPresent && v.str == o.str
}

// normalize 把 absent 候选折算为显式空值：帧必须可弹出，absent 无法占位。
func normalize(v Value) Value {
	if v.kind == kindAbsent {
		return Null()
	}
	return v
}
