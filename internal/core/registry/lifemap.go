// Package registry 实现弱追踪注册表与生命联动映射
package registry

import "sync"

// ============================================================================
// LifeLinkedMap 实现
// ============================================================================

// LifeLinkedMap 生命联动映射
//
// 键控强持有集合：条目由两端生命周期钩子显式增删（配线时
// Add，任一端销毁时 Remove/Clear），映射本身不做垃圾回收，
// 但容忍被指对象先行死亡——Get 对已死条目返回零值。
//
// 键为对端稳定标识（字符串 Uid）或输入法的 MethodKey。
type LifeLinkedMap[K comparable, V Element] struct {
	mu      sync.Mutex
	entries map[K]V
}

// NewLifeLinkedMap 创建生命联动映射
func NewLifeLinkedMap[K comparable, V Element]() *LifeLinkedMap[K, V] {
	return &LifeLinkedMap[K, V]{
		entries: make(map[K]V),
	}
}

// Add 记录条目
//
// 同键覆盖旧值，返回被覆盖的旧值（零值表示无旧值）。
func (m *LifeLinkedMap[K, V]) Add(key K, v V) (old V, replaced bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	old, replaced = m.entries[key]
	m.entries[key] = v
	return old, replaced
}

// Get 按键查找
//
// 条目不存在或被指对象已死时返回零值。已死条目在此惰性摘除。
func (m *LifeLinkedMap[K, V]) Get(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if !v.Alive() {
		delete(m.entries, key)
		var zero V
		return zero, false
	}
	return v, true
}

// Remove 摘除条目，返回被摘除的值供调用方善后
func (m *LifeLinkedMap[K, V]) Remove(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.entries[key]
	if ok {
		delete(m.entries, key)
	}
	return v, ok
}

// Drain 清空映射，返回全部条目供调用方逐一销毁
func (m *LifeLinkedMap[K, V]) Drain() []V {
	m.mu.Lock()
	defer m.mu.Unlock()

	values := make([]V, 0, len(m.entries))
	for _, v := range m.entries {
		values = append(values, v)
	}
	clear(m.entries)
	return values
}

// Len 返回当前条目数
func (m *LifeLinkedMap[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
