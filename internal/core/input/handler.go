// Package input 实现输入法/处理器的匹配与捕获协议
package input

import (
	"fmt"

	"github.com/lumenxr/go-lumenxr/internal/core/alias"
	"github.com/lumenxr/go-lumenxr/internal/core/fields"
	"github.com/lumenxr/go-lumenxr/internal/core/registry"
	"github.com/lumenxr/go-lumenxr/internal/core/scene"
	pkgif "github.com/lumenxr/go-lumenxr/pkg/interfaces"
	"github.com/lumenxr/go-lumenxr/pkg/lib/log"
	"github.com/lumenxr/go-lumenxr/pkg/types"
)

// HandlerAspectName 处理器能力名
const HandlerAspectName = "input_handler"

// 确保实现了接口
var (
	_ pkgif.Aspect         = (*InputHandler)(nil)
	_ pkgif.Living         = (*InputHandler)(nil)
	_ scene.TeardownAspect = (*InputHandler)(nil)
)

// ============================================================================
// InputHandler 实现
// ============================================================================

// InputHandler 输入处理器
//
// 代表一个由距离场界定的输入接收区域。输入法经别名看到它的
// 受限视图；它经反向别名（初始禁用的捕获通道）看到输入法。
type InputHandler struct {
	node    *scene.Node
	uid     types.Uid
	field   fields.Field
	manager *Manager
	handle  registry.Handle

	// methodAliases 处理器侧的输入法别名（捕获通道），键为
	// 输入法 MethodKey（槽位式键，地址不参与）
	methodAliases *registry.LifeLinkedMap[types.MethodKey, *alias.Alias]
}

// AddHandlerTo 在节点上附加处理器能力
//
// field 为该处理器的距离场（非占有引用）。创建时对每个存活
// 的输入法执行对称配线。
func AddHandlerTo(mgr *Manager, node *scene.Node, field fields.Field) (*InputHandler, error) {
	if field == nil || !field.Alive() {
		return nil, fmt.Errorf("input handler needs a live field")
	}

	h := &InputHandler{
		node:          node,
		uid:           node.Uid(),
		field:         field,
		manager:       mgr,
		methodAliases: registry.NewLifeLinkedMap[types.MethodKey, *alias.Alias](),
	}

	// 先入册后快照配线：并发创建的输入法至少有一方能看到对方，
	// 双方都看到时重复配线由别名路径冲突与映射替换收敛
	h.handle = mgr.handlers.Add(h)
	for _, m := range mgr.methods.GetValidContents() {
		m.handleNewHandler(h)
		m.makeAlias(h)
	}

	if err := node.AddAspect(h); err != nil {
		h.OnNodeDestroy()
		return nil, err
	}

	logger.Debug("input handler created",
		"handler", log.TruncateID(h.uid.String(), 8))
	return h, nil
}

// HandlerOf 查找节点的处理器能力
func HandlerOf(node *scene.Node) (*InputHandler, error) {
	return scene.AspectOf[*InputHandler](node, HandlerAspectName)
}

// AspectName 返回能力种类名称
func (h *InputHandler) AspectName() string {
	return HandlerAspectName
}

// Alive 返回所属节点是否存活
func (h *InputHandler) Alive() bool {
	return h.node.Alive()
}

// Node 返回所属节点
func (h *InputHandler) Node() *scene.Node {
	return h.node
}

// Uid 返回稳定标识
func (h *InputHandler) Uid() types.Uid {
	return h.uid
}

// Field 返回距离场
func (h *InputHandler) Field() fields.Field {
	return h.field
}

// MethodAlias 查找某输入法的捕获通道别名
//
// 未配线或别名已死返回失败（惰性清理）。
func (h *InputHandler) MethodAlias(key types.MethodKey) (*alias.Alias, bool) {
	return h.methodAliases.Get(key)
}

// GrantCaptureChannel 启用某输入法的捕获通道
//
// 帧调度首次向处理器投递该输入法时调用：对端从「存在但未
// 授权」转为可发捕获事件。
func (h *InputHandler) GrantCaptureChannel(key types.MethodKey) {
	if a, ok := h.methodAliases.Get(key); ok {
		a.SetEnabled(true)
	}
}

// OnNodeDestroy 节点销毁回调
//
// 注销注册表、拆除两侧别名并通知各输入法。captures 集合不
// 主动摘除：成员判活即退化为未捕获。
func (h *InputHandler) OnNodeDestroy() {
	h.manager.handlers.Remove(h.handle)

	for _, a := range h.methodAliases.Drain() {
		a.Destroy()
	}
	for _, m := range h.manager.methods.GetValidContents() {
		m.handleDropHandler(h)
	}

	logger.Debug("input handler destroyed",
		"handler", log.TruncateID(h.uid.String(), 8))
}
