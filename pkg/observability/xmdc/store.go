package xmdc

// =============================================================================
// Store 契约
// =============================================================================

// Store 诊断上下文的最小键值契约。
//
// 使用方把它当作注入的显式协作方，而非通过包级全局访问。
// 契约刻意最小化：除同一 goroutine 内最后写入生效外不做任何假设。
type Store interface {
	// Get 读取键的当前值；ok 为 false 表示键不存在。
	Get(key string) (value string, ok bool)

	// Put 写入键值，覆盖已有值。
	Put(key, value string)

	// Remove 移除键；键不存在时为空操作。
	Remove(key string)
}

// Enumerable 可遍历的诊断上下文，供日志 handler 枚举全部条目。
type Enumerable interface {
	// Range 遍历所有条目；fn 返回 false 时提前终止。遍历顺序不确定。
	Range(fn func(key, value string) bool)
}

// =============================================================================
// MapStore 实现
// =============================================================================

// MapStore 基于 map 的 Store 实现，同时实现 Enumerable。
//
// 单 goroutine 约束：一个实例与其工作单元绑定在同一 goroutine 上
//（Go 对应 thread-local MDC 的模型），不加锁。
type MapStore struct {
	entries map[string]string
}

// NewMapStore 创建空的 MapStore。
func NewMapStore() *MapStore {
	return &MapStore{entries: make(map[string]string)}
}

// Get 读取键的当前值。
func (m *MapStore) Get(key string) (string, bool) {
	value, ok := m.entries[key]
	return value, ok
}

// Put 写入键值。
func (m *MapStore) Put(key, value string) {
	m.entries[key] = value
}

// Remove 移除键。
func (m *MapStore) Remove(key string) {
	delete(m.entries, key)
}

// Range 遍历所有条目。
func (m *MapStore) Range(fn func(key, value string) bool) {
	for key, value := range m.entries {
		if !fn(key, value) {
			return
		}
	}
}

// Len 返回条目数量。
func (m *MapStore) Len() int {
	return len(m.entries)
}
