// Package alias 实现能力域限定的节点别名
package alias

import (
	"fmt"
	"sync/atomic"

	"github.com/lumenxr/go-lumenxr/internal/core/scene"
	pkgif "github.com/lumenxr/go-lumenxr/pkg/interfaces"
	"github.com/lumenxr/go-lumenxr/pkg/lib/log"
	"github.com/lumenxr/go-lumenxr/pkg/types"
)

var logger = log.Logger("core/alias")

// AspectName 别名能力名
const AspectName = "alias"

// 确保实现了接口
var (
	_ pkgif.Aspect = (*Alias)(nil)
	_ pkgif.Living = (*Alias)(nil)
)

// ============================================================================
// Alias 实现
// ============================================================================

// Alias 能力域限定的节点别名
//
// 持有方命名空间内的代理节点转发白名单内的操作/事件到目标
// 节点。disabled 状态下不转发服务端事件（用于「对端已存在但
// 尚未获得捕获通道」的建模）。
type Alias struct {
	// node 代理节点，挂载于持有方客户端命名空间
	node *scene.Node
	// target 目标节点，非占有引用，死亡后惰性清理
	target *scene.Node
	// holder 持有方客户端，Connected 为线上判据
	holder *scene.Client

	info    types.AliasInfo
	enabled atomic.Bool
}

// Create 创建别名
//
// 在 holder 的命名空间 parentPath/name 处挂载代理节点。构造
// 失败（客户端断开、目标无主、路径冲突）返回错误，调用方
// 容忍为空操作。新别名默认启用。
func Create(holder *scene.Client, parentPath, name string, target *scene.Node, info types.AliasInfo) (*Alias, error) {
	if holder == nil || !holder.Connected() {
		return nil, types.ErrClientGone
	}
	if target == nil || !target.Alive() {
		return nil, types.ErrNodeGone
	}
	if _, ok := target.GetClient(); !ok {
		return nil, types.ErrNoOwningClient
	}

	path := parentPath + "/" + name
	node, err := scene.NewNode(holder, path)
	if err != nil {
		return nil, fmt.Errorf("create alias node: %w", err)
	}

	a := &Alias{
		node:   node,
		target: target,
		holder: holder,
		info:   info.Clone(),
	}
	a.enabled.Store(true)

	if err := node.AddAspect(a); err != nil {
		// 新建节点不可能已有别名能力；防御性回收
		node.Destroy()
		return nil, err
	}

	logger.Debug("alias created",
		"path", path,
		"target", log.TruncateID(target.Uid().String(), 8))
	return a, nil
}

// AspectName 返回能力种类名称
func (a *Alias) AspectName() string {
	return AspectName
}

// Alive 返回别名是否可达
//
// 代理节点或目标节点任一死亡即不可达。
func (a *Alias) Alive() bool {
	return a.node.Alive() && a.target.Alive()
}

// Node 返回代理节点
func (a *Alias) Node() *scene.Node {
	return a.node
}

// Path 返回代理节点路径
func (a *Alias) Path() string {
	return a.node.Path()
}

// Target 解析目标节点
//
// 目标已销毁返回失败。
func (a *Alias) Target() (*scene.Node, bool) {
	if !a.target.Alive() {
		return nil, false
	}
	return a.target, true
}

// Enabled 返回别名是否启用
func (a *Alias) Enabled() bool {
	return a.enabled.Load()
}

// SetEnabled 设置启用状态
func (a *Alias) SetEnabled(enabled bool) {
	a.enabled.Store(enabled)
}

// AllowsMethod 判断远程操作是否在白名单内
func (a *Alias) AllowsMethod(name string) bool {
	return a.info.AllowsMethod(name)
}

// SendSignal 经别名向持有方客户端转发服务端事件
//
// 別名被禁用、事件不在白名单内、或任一端已死亡时静默丢弃
// （尽力而为，与通知投递同一语义）。
func (a *Alias) SendSignal(signal string, payload any) {
	if !a.enabled.Load() || !a.info.AllowsSignal(signal) || !a.Alive() {
		return
	}
	if !a.holder.Connected() {
		return
	}
	_ = a.holder.SendSignal(a.node.Path(), signal, payload)
}

// Destroy 销毁别名
//
// 销毁代理节点；目标节点不受影响。由持有方生命联动映射的
// 清理路径调用，幂等。
func (a *Alias) Destroy() {
	a.node.Destroy()
}
