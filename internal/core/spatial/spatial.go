// Package spatial 实现空间位姿能力
//
// Spatial 是附加在节点上的 3D 位姿能力，输入法以其为空间锚点
// 做距离计算（非占有引用）。完整的空间变换树由外部空间框架
// 负责，这里只维护单节点位姿。
//
// # 架构定位
//
// Tier: Core Layer Level 2
//
// 依赖关系：
//   - 依赖：pkg/types, scene
//   - 被依赖：fields, input
package spatial

import (
	"fmt"
	"sync"

	"github.com/lumenxr/go-lumenxr/internal/core/scene"
	pkgif "github.com/lumenxr/go-lumenxr/pkg/interfaces"
	"github.com/lumenxr/go-lumenxr/pkg/types"
)

// AspectName 空间能力名
const AspectName = "spatial"

// OpGetTransform 读取位姿的远程操作名
//
// 输入法侧的处理器别名只暴露这一个操作。
const OpGetTransform = "get_transform"

// 确保实现了接口
var (
	_ pkgif.Aspect = (*Spatial)(nil)
	_ pkgif.Living = (*Spatial)(nil)
)

// ============================================================================
// Spatial 实现
// ============================================================================

// Spatial 空间位姿能力
//
// 位姿字段独立持锁，同节点其他字段可并发修改。
type Spatial struct {
	node *scene.Node

	mu   sync.Mutex
	pose types.Pose
}

// AddTo 在节点上附加空间能力
func AddTo(node *scene.Node, pose types.Pose) (*Spatial, error) {
	s := &Spatial{
		node: node,
		pose: pose,
	}
	if err := node.AddAspect(s); err != nil {
		return nil, fmt.Errorf("attach spatial: %w", err)
	}
	return s, nil
}

// Of 查找节点的空间能力
func Of(node *scene.Node) (*Spatial, error) {
	return scene.AspectOf[*Spatial](node, AspectName)
}

// AspectName 返回能力种类名称
func (s *Spatial) AspectName() string {
	return AspectName
}

// Alive 返回所属节点是否存活
func (s *Spatial) Alive() bool {
	return s.node.Alive()
}

// Node 返回所属节点
func (s *Spatial) Node() *scene.Node {
	return s.node
}

// Transform 读取当前位姿
func (s *Spatial) Transform() types.Pose {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pose
}

// SetTransform 整体替换位姿
func (s *Spatial) SetTransform(pose types.Pose) {
	s.mu.Lock()
	s.pose = pose
	s.mu.Unlock()
}
