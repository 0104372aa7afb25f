// Package input 实现输入法/处理器的匹配与捕获协议
package input

import (
	"sync/atomic"

	"github.com/lumenxr/go-lumenxr/internal/core/registry"
)

// ============================================================================
// Manager 实现
// ============================================================================

// Manager 输入子系统的进程级注册表集合
//
// 两张弱追踪注册表记录全部存活的输入法与处理器。按依赖注入
// 传递而非环境全局态，契约不变（见 Fx 模块）。
type Manager struct {
	methods  *registry.Registry[*InputMethod]
	handlers *registry.Registry[*InputHandler]

	// 配线/拆线累计数，供指标模块读取
	wirings   atomic.Uint64
	teardowns atomic.Uint64
}

// NewManager 创建注册表集合
func NewManager() *Manager {
	return &Manager{
		methods:  registry.New[*InputMethod](),
		handlers: registry.New[*InputHandler](),
	}
}

// Methods 返回存活输入法的时点快照
func (m *Manager) Methods() []*InputMethod {
	return m.methods.GetValidContents()
}

// Handlers 返回存活处理器的时点快照
func (m *Manager) Handlers() []*InputHandler {
	return m.handlers.GetValidContents()
}

// NumMethods 返回当前输入法表项数
func (m *Manager) NumMethods() int {
	return m.methods.Len()
}

// NumHandlers 返回当前处理器表项数
func (m *Manager) NumHandlers() int {
	return m.handlers.Len()
}

// Wirings 返回累计配线次数
func (m *Manager) Wirings() uint64 {
	return m.wirings.Load()
}

// Teardowns 返回累计拆线次数
func (m *Manager) Teardowns() uint64 {
	return m.teardowns.Load()
}
