// Package registry 实现弱追踪注册表与生命联动映射
package registry

import (
	"slices"
	"sync"

	pkgif "github.com/lumenxr/go-lumenxr/pkg/interfaces"
)

// Element 注册表元素约束
//
// 元素必须可比较（以对象标识判等，通常为指针类型）且可判活。
type Element interface {
	comparable
	pkgif.Living
}

// Handle 注册条目句柄
//
// Add 返回的句柄用于 Remove。句柄进程内单调分配，不复用。
type Handle uint64

// ============================================================================
// Registry 实现
// ============================================================================

// Registry 弱追踪注册表
//
// 记录某能力类型的全部存活实例。注册表不延长元素寿命语义：
// 元素销毁后（Alive 返回 false）即从一切快照中消失，真正的
// 表项由销毁路径调用 Remove 摘除。
//
// 同一实现亦用作输入法的 captures 集合：Add 幂等，Contains
// 在元素销毁后退化为 false。
type Registry[T Element] struct {
	mu      sync.RWMutex
	next    Handle
	entries map[Handle]T
	index   map[T]Handle
}

// New 创建注册表
func New[T Element]() *Registry[T] {
	return &Registry[T]{
		entries: make(map[Handle]T),
		index:   make(map[T]Handle),
	}
}

// Add 注册实例，返回句柄
//
// 幂等：同一实例重复注册返回首次分配的句柄，成员不变。
func (r *Registry[T]) Add(v T) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.index[v]; ok {
		return h
	}
	r.next++
	h := r.next
	r.entries[h] = v
	r.index[v] = h
	return h
}

// Remove 按句柄注销
//
// 句柄未知时为空操作。
func (r *Registry[T]) Remove(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.entries[h]
	if !ok {
		return
	}
	delete(r.entries, h)
	delete(r.index, v)
}

// RemoveValue 按实例注销
//
// 实例不在表中时为空操作。
func (r *Registry[T]) RemoveValue(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.index[v]
	if !ok {
		return
	}
	delete(r.entries, h)
	delete(r.index, v)
}

// Contains 判断实例是否在表中且仍存活
//
// 实例已销毁时退化为 false，即使表项尚未被摘除。
func (r *Registry[T]) Contains(v T) bool {
	r.mu.RLock()
	_, ok := r.index[v]
	r.mu.RUnlock()
	return ok && v.Alive()
}

// GetValidContents 返回存活实例的时点快照
//
// 快照按注册先后排序（句柄单调），同距排序因此可复现。读锁
// 下复制成员表，锁外过滤已销毁实例。并发 Add/Remove 的结果
// 只会是快照前或快照后的集合，不会出现部分条目。
func (r *Registry[T]) GetValidContents() []T {
	r.mu.RLock()
	handles := make([]Handle, 0, len(r.entries))
	for h := range r.entries {
		handles = append(handles, h)
	}
	slices.Sort(handles)
	copied := make([]T, 0, len(handles))
	for _, h := range handles {
		copied = append(copied, r.entries[h])
	}
	r.mu.RUnlock()

	valid := copied[:0]
	for _, v := range copied {
		if v.Alive() {
			valid = append(valid, v)
		}
	}
	return valid
}

// Clear 清空全部表项
//
// captures 集合每个评估周期结束后整体清空，未被重新声明的
// 捕获随之失效。
func (r *Registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.entries)
	clear(r.index)
}

// Len 返回当前表项数（含尚未摘除的已销毁实例）
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
