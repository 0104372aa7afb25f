// Package input 实现输入法/处理器的匹配与捕获协议
package input

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lumenxr/go-lumenxr/internal/core/alias"
	"github.com/lumenxr/go-lumenxr/internal/core/fields"
	"github.com/lumenxr/go-lumenxr/internal/core/registry"
	"github.com/lumenxr/go-lumenxr/internal/core/scene"
	"github.com/lumenxr/go-lumenxr/internal/core/spatial"
	pkgif "github.com/lumenxr/go-lumenxr/pkg/interfaces"
	"github.com/lumenxr/go-lumenxr/pkg/lib/log"
	"github.com/lumenxr/go-lumenxr/pkg/types"
)

var logger = log.Logger("core/input")

// MethodAspectName 输入法能力名
const MethodAspectName = "input_method"

// 远程事件名
const (
	// SignalCapture 捕获通道事件（处理器侧输入法别名的唯一白名单项）
	SignalCapture = "capture"
	// SignalCreateHandler 处理器可达通知
	SignalCreateHandler = "create_handler"
	// SignalDestroyHandler 处理器移除通知
	SignalDestroyHandler = "destroy_handler"
)

// captureBias 捕获偏置系数
//
// 已捕获的处理器距离减半：粘性目标，防止边界抖动。
const captureBias = 0.5

// 确保实现了接口
var (
	_ pkgif.Aspect         = (*InputMethod)(nil)
	_ pkgif.Living         = (*InputMethod)(nil)
	_ scene.TeardownAspect = (*InputMethod)(nil)
)

// ============================================================================
// 通知负载
// ============================================================================

// CreateHandlerPayload 处理器可达通知负载
type CreateHandlerPayload struct {
	Uid      types.Uid `json:"uid"`
	NodePath string    `json:"node_path"`
}

// DestroyHandlerPayload 处理器移除通知负载
type DestroyHandlerPayload struct {
	Uid types.Uid `json:"uid"`
}

// ============================================================================
// InputMethod 实现
// ============================================================================

// InputMethod 输入法
//
// 代表一个产生输入的设备源，锚定在空间能力上。空间锚点创建
// 时绑定，此后不变；输入数据变体创建时确定，整个生命周期
// 不得更换。
//
// 字段锁约定：data、datamap、顺序覆盖各自独立持锁；enabled
// 为原子量；captures 与别名映射自带锁。
type InputMethod struct {
	node    *scene.Node
	uid     types.Uid
	key     types.MethodKey
	spatial *spatial.Spatial
	manager *Manager
	handle  registry.Handle

	enabled atomic.Bool

	dataMu   sync.Mutex
	data     pkgif.InputData
	dataType pkgif.InputDataType

	datamapMu sync.Mutex
	datamap   types.Datamap

	// captures 当前捕获本输入法的处理器集合；成员销毁后查询
	// 退化为未捕获，每个评估周期末整体清空
	captures *registry.Registry[*InputHandler]

	// handlerAliases 输入法侧的处理器别名（含嵌套场别名），
	// 键为处理器 uid / uid+"-field"
	handlerAliases *registry.LifeLinkedMap[string, *alias.Alias]

	orderMu sync.Mutex
	order   handlerOrder
}

// AddMethodTo 在节点上附加输入法能力
//
// 节点必须已附加空间能力（唯一锚点）。创建时对每个存活的
// 处理器执行配线；与并发创建的处理器之间，较晚创建的一方
// 会在其自身创建路径补齐配线。
func AddMethodTo(mgr *Manager, node *scene.Node, data pkgif.InputData, datamap types.Datamap) (*InputMethod, error) {
	if data == nil || !data.Type().Valid() {
		return nil, fmt.Errorf("input method needs a valid payload variant")
	}
	sp, err := spatial.Of(node)
	if err != nil {
		return nil, fmt.Errorf("input method needs spatial anchor: %w", err)
	}

	m := &InputMethod{
		node:           node,
		uid:            node.Uid(),
		key:            types.NextMethodKey(),
		spatial:        sp,
		manager:        mgr,
		data:           data,
		dataType:       data.Type(),
		datamap:        datamap,
		captures:       registry.New[*InputHandler](),
		handlerAliases: registry.NewLifeLinkedMap[string, *alias.Alias](),
		order:          automaticOrder(),
	}
	m.enabled.Store(true)

	// 先入册后快照配线：并发创建的处理器至少有一方能看到对方，
	// 双方都看到时重复配线由别名路径冲突与映射替换收敛
	m.handle = mgr.methods.Add(m)
	for _, h := range mgr.handlers.GetValidContents() {
		m.handleNewHandler(h)
		m.makeAlias(h)
	}

	if err := node.AddAspect(m); err != nil {
		m.OnNodeDestroy()
		return nil, err
	}

	logger.Debug("input method created",
		"method", log.TruncateID(m.uid.String(), 8),
		"type", string(m.dataType))
	return m, nil
}

// MethodOf 查找节点的输入法能力
func MethodOf(node *scene.Node) (*InputMethod, error) {
	return scene.AspectOf[*InputMethod](node, MethodAspectName)
}

// AspectName 返回能力种类名称
func (m *InputMethod) AspectName() string {
	return MethodAspectName
}

// Alive 返回所属节点是否存活
func (m *InputMethod) Alive() bool {
	return m.node.Alive()
}

// Node 返回所属节点
func (m *InputMethod) Node() *scene.Node {
	return m.node
}

// Uid 返回稳定标识
func (m *InputMethod) Uid() types.Uid {
	return m.uid
}

// Key 返回进程内唯一键（处理器侧别名映射的键）
func (m *InputMethod) Key() types.MethodKey {
	return m.key
}

// Enabled 返回输入法是否启用
func (m *InputMethod) Enabled() bool {
	return m.enabled.Load()
}

// SetEnabled 设置启用状态
func (m *InputMethod) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

// Data 返回当前输入数据
func (m *InputMethod) Data() pkgif.InputData {
	m.dataMu.Lock()
	defer m.dataMu.Unlock()
	return m.data
}

// Datamap 返回当前附加数据
func (m *InputMethod) Datamap() types.Datamap {
	m.datamapMu.Lock()
	defer m.datamapMu.Unlock()
	return m.datamap
}

// ============================================================================
// 配线算法
// ============================================================================

// handleNewHandler 输入法侧配线
//
// 在输入法所属客户端命名空间创建处理器别名（只暴露
// get_transform），处理器带场能力时再挂一层嵌套场别名（固定
// 共享白名单），最后向输入法所属客户端发处理器可达通知。
// 任何一步对端不可达都静默放弃：对端自身的销毁路径会独立
// 清理。
func (m *InputMethod) handleNewHandler(h *InputHandler) {
	if !m.node.Alive() {
		return
	}
	methodClient, ok := m.node.GetClient()
	if !ok {
		return
	}
	handlerNode := h.node
	if !handlerNode.Alive() {
		return
	}

	handlerAlias, err := alias.Create(methodClient, m.node.Path(), h.uid.String(), handlerNode, types.AliasInfo{
		ServerMethods: []string{spatial.OpGetTransform},
	})
	if err != nil {
		return
	}
	if old, replaced := m.handlerAliases.Add(h.uid.String(), handlerAlias); replaced {
		old.Destroy()
	}

	// 处理器的场：嵌套别名，固定共享白名单
	if fieldNode := h.field.Node(); fieldNode.Alive() {
		fieldAlias, err := alias.Create(methodClient, handlerAlias.Path(), "field", fieldNode, fields.AliasInfo)
		if err != nil {
			return
		}
		if old, replaced := m.handlerAliases.Add(h.uid.String()+"-field", fieldAlias); replaced {
			old.Destroy()
		}
	}

	m.manager.wirings.Add(1)
	// 尽力而为：所属客户端可能正在断开
	_ = methodClient.SendSignal(m.node.Path(), SignalCreateHandler, CreateHandlerPayload{
		Uid:      h.uid,
		NodePath: handlerNode.Path(),
	})
}

// makeAlias 处理器侧配线
//
// 在处理器所属客户端命名空间创建输入法别名，只暴露 capture
// 事件，初始禁用：对端已存在但尚未获得捕获通道。键为输入法
// 的 MethodKey。
func (m *InputMethod) makeAlias(h *InputHandler) {
	if !m.node.Alive() || !h.node.Alive() {
		return
	}
	handlerClient, ok := h.node.GetClient()
	if !ok {
		return
	}

	methodAlias, err := alias.Create(handlerClient, h.node.Path(), m.uid.String(), m.node, types.AliasInfo{
		ServerSignals: []string{SignalCapture},
	})
	if err != nil {
		return
	}
	methodAlias.SetEnabled(false)

	if old, replaced := h.methodAliases.Add(m.key, methodAlias); replaced {
		old.Destroy()
	}
}

// handleDropHandler 拆除输入法侧对某处理器的配线
//
// 摘除两条别名并发处理器移除通知（尽力而为）。
func (m *InputMethod) handleDropHandler(h *InputHandler) {
	uid := h.uid.String()
	if a, ok := m.handlerAliases.Remove(uid); ok {
		a.Destroy()
	}
	if a, ok := m.handlerAliases.Remove(uid + "-field"); ok {
		a.Destroy()
	}
	m.manager.teardowns.Add(1)

	if !m.node.Alive() {
		return
	}
	if methodClient, ok := m.node.GetClient(); ok {
		_ = methodClient.SendSignal(m.node.Path(), SignalDestroyHandler, DestroyHandlerPayload{Uid: h.uid})
	}
}

// wired 判断与某处理器的输入法侧配线是否就绪
func (m *InputMethod) wired(h *InputHandler) bool {
	_, ok := m.handlerAliases.Get(h.uid.String())
	return ok
}

// ============================================================================
// 排序
// ============================================================================

// CompareDistance 返回对某处理器的排序距离
//
// 委托当前输入数据变体的度量，处理器在 captures 集合内时
// 减半（粘性目标偏置）。处理器已销毁返回 +Inf。
func (m *InputMethod) CompareDistance(h *InputHandler) float32 {
	if h == nil || !h.Alive() {
		return float32(math.Inf(1))
	}

	m.dataMu.Lock()
	data := m.data
	m.dataMu.Unlock()

	distance := data.Distance(m.spatial.Transform(), h.field)
	if m.captures.Contains(h) {
		distance *= captureBias
	}
	return distance
}

// TrueDistance 返回未偏置的几何距离
//
// 供需要真实距离的调用方使用（如在界判定），不受捕获状态
// 影响。
func (m *InputMethod) TrueDistance(field pkgif.Field) float32 {
	if field == nil {
		return float32(math.Inf(1))
	}

	m.dataMu.Lock()
	data := m.data
	m.dataMu.Unlock()

	return data.Distance(m.spatial.Transform(), field)
}

// TargetOrder 返回本评估周期的处理器传播顺序
//
// 手动覆盖时按给定顺序（过滤已死亡/未配线条目）；否则取
// 存活且已配线的处理器按 CompareDistance 升序。未配线对端
// 降级为不可达，不参与排序。
func (m *InputMethod) TargetOrder() []*InputHandler {
	m.orderMu.Lock()
	ord := m.order
	m.orderMu.Unlock()

	if ord.mode == OrderManual {
		out := make([]*InputHandler, 0, len(ord.manual))
		for _, h := range ord.manual {
			if h.Alive() && m.wired(h) {
				out = append(out, h)
			}
		}
		return out
	}

	live := m.manager.handlers.GetValidContents()
	out := make([]*InputHandler, 0, len(live))
	for _, h := range live {
		if m.wired(h) {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return m.CompareDistance(out[i]) < m.CompareDistance(out[j])
	})
	return out
}

// ============================================================================
// 捕获
// ============================================================================

// Capture 记录处理器对本输入法的捕获声明
//
// 同帧、幂等、只增：重复捕获为空操作。粘性需要每个评估周期
// 重新声明，周期末集合整体清空。
func (m *InputMethod) Capture(h *InputHandler) {
	m.captures.Add(h)
}

// Captured 判断处理器是否捕获了本输入法
//
// 处理器销毁后退化为未捕获。
func (m *InputMethod) Captured(h *InputHandler) bool {
	return m.captures.Contains(h)
}

// ClearCaptures 清空捕获集合
//
// 由帧调度在每个评估周期末调用。
func (m *InputMethod) ClearCaptures() {
	m.captures.Clear()
}

// ============================================================================
// 数据更新
// ============================================================================

// SetData 整体替换输入数据
//
// 变体必须与创建时一致，违者返回 types.ErrInputTypeChanged。
func (m *InputMethod) SetData(data pkgif.InputData) error {
	if data == nil {
		return fmt.Errorf("%w: nil payload", types.ErrInputTypeChanged)
	}

	m.dataMu.Lock()
	defer m.dataMu.Unlock()

	if data.Type() != m.dataType {
		return fmt.Errorf("%w: have %s, got %s", types.ErrInputTypeChanged, m.dataType, data.Type())
	}
	m.data = data
	return nil
}

// SetDatamapValue 整体替换附加数据
func (m *InputMethod) SetDatamapValue(datamap types.Datamap) {
	m.datamapMu.Lock()
	m.datamap = datamap
	m.datamapMu.Unlock()
}

// SetOrder 设置处理器顺序覆盖
//
// handlers 为空回退自动排序。
func (m *InputMethod) SetOrder(handlers []*InputHandler) {
	m.orderMu.Lock()
	if len(handlers) == 0 {
		m.order = automaticOrder()
	} else {
		m.order = manualOrder(handlers)
	}
	m.orderMu.Unlock()
}

// OrderMode 返回当前排序模式
func (m *InputMethod) OrderMode() OrderMode {
	m.orderMu.Lock()
	defer m.orderMu.Unlock()
	return m.order.mode
}

// ============================================================================
// 善后
// ============================================================================

// OnNodeDestroy 节点销毁回调
//
// 注销注册表、拆除两侧别名。与后续查找原子：此后任何经
// 生命联动映射的查找都只会得到空。
func (m *InputMethod) OnNodeDestroy() {
	m.manager.methods.Remove(m.handle)
	m.captures.Clear()

	for _, a := range m.handlerAliases.Drain() {
		a.Destroy()
	}
	for _, h := range m.manager.handlers.GetValidContents() {
		if a, ok := h.methodAliases.Remove(m.key); ok {
			a.Destroy()
		}
	}

	logger.Debug("input method destroyed",
		"method", log.TruncateID(m.uid.String(), 8))
}
