// Package scene 实现场景图粘合层
package scene

import (
	"fmt"
	"sync"
	"sync/atomic"

	pkgif "github.com/lumenxr/go-lumenxr/pkg/interfaces"
	"github.com/lumenxr/go-lumenxr/pkg/lib/log"
	"github.com/lumenxr/go-lumenxr/pkg/types"
)

var nodeLogger = log.Logger("core/scene/node")

// 确保实现了接口
var _ pkgif.Living = (*Node)(nil)

// ============================================================================
// Node 实现
// ============================================================================

// TeardownAspect 可选的能力善后契约
//
// 节点销毁时按附加顺序回调，能力对象在此解除配线（注销
// 注册表、清理生命联动映射）。
type TeardownAspect interface {
	// OnNodeDestroy 节点销毁回调
	OnNodeDestroy()
}

// Node 可寻址服务端对象
//
// 归属于单一客户端的命名空间，承载开放能力集合。能力对象
// 不拥有节点，只持有非占有回指。
//
// 字段锁约定：能力表由 aspectsMu 保护；其余字段创建后只读
// 或自带原子性。同一节点不同字段可并发修改。
type Node struct {
	uid   types.Uid
	path  string
	owner types.Uid
	dir   *Directory

	destroyed atomic.Bool

	aspectsMu sync.Mutex
	aspects   map[string]pkgif.Aspect
	// 附加顺序，销毁时按序善后
	aspectOrder []string
}

// NewNode 创建节点并挂载到客户端命名空间
//
// 路径冲突或客户端已断开时失败。
func NewNode(owner *Client, path string) (*Node, error) {
	n := &Node{
		uid:     types.NewUid(),
		path:    path,
		owner:   owner.Uid(),
		dir:     owner.dir,
		aspects: make(map[string]pkgif.Aspect),
	}
	if err := owner.mount(path, n); err != nil {
		return nil, fmt.Errorf("mount node at %q: %w", path, err)
	}
	return n, nil
}

// Uid 返回节点稳定标识
func (n *Node) Uid() types.Uid {
	return n.uid
}

// Path 返回节点在所属命名空间内的路径
func (n *Node) Path() string {
	return n.path
}

// Alive 返回节点是否仍然存活
func (n *Node) Alive() bool {
	return !n.destroyed.Load()
}

// GetClient 升级所属客户端引用
//
// 客户端已断开时返回失败。
func (n *Node) GetClient() (*Client, bool) {
	return n.dir.Get(n.owner)
}

// AddAspect 附加能力对象
//
// 同种能力重复附加返回 types.ErrAspectExists。
func (n *Node) AddAspect(a pkgif.Aspect) error {
	if !n.Alive() {
		return types.ErrNodeDestroyed
	}

	n.aspectsMu.Lock()
	defer n.aspectsMu.Unlock()

	name := a.AspectName()
	if _, ok := n.aspects[name]; ok {
		return fmt.Errorf("%w: %s", types.ErrAspectExists, name)
	}
	n.aspects[name] = a
	n.aspectOrder = append(n.aspectOrder, name)
	return nil
}

// GetAspect 按能力名查找
//
// 缺少该能力返回 types.ErrAspectNotFound。
func (n *Node) GetAspect(name string) (pkgif.Aspect, error) {
	n.aspectsMu.Lock()
	defer n.aspectsMu.Unlock()

	a, ok := n.aspects[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrAspectNotFound, name)
	}
	return a, nil
}

// Destroy 确定性销毁节点
//
// 从所属命名空间卸载，按附加顺序回调能力善后钩子。幂等，
// 与后续查找原子：销毁后 Alive 立即返回 false。
func (n *Node) Destroy() {
	if !n.destroyed.CompareAndSwap(false, true) {
		return
	}

	if client, ok := n.dir.Get(n.owner); ok {
		client.unmount(n.path, n)
	}

	// 锁内收集善后钩子，能力表不在锁外触碰
	n.aspectsMu.Lock()
	teardowns := make([]TeardownAspect, 0, len(n.aspectOrder))
	for _, name := range n.aspectOrder {
		if td, ok := n.aspects[name].(TeardownAspect); ok {
			teardowns = append(teardowns, td)
		}
	}
	n.aspectsMu.Unlock()

	for _, td := range teardowns {
		td.OnNodeDestroy()
	}

	nodeLogger.Debug("node destroyed",
		"node", log.TruncateID(n.uid.String(), 8),
		"path", n.path)
}

// ============================================================================
// 泛型能力查找
// ============================================================================

// AspectOf 按具体类型查找能力
//
// 节点缺少该类型能力时返回 types.ErrAspectNotFound。
func AspectOf[T pkgif.Aspect](n *Node, name string) (T, error) {
	var zero T
	a, err := n.GetAspect(name)
	if err != nil {
		return zero, err
	}
	t, ok := a.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s has unexpected type %T", types.ErrAspectNotFound, name, a)
	}
	return t, nil
}
