// Package fields 实现距离场能力
package fields

import (
	"fmt"
	"sync"

	"github.com/lumenxr/go-lumenxr/internal/core/scene"
	"github.com/lumenxr/go-lumenxr/internal/core/spatial"
	"github.com/lumenxr/go-lumenxr/pkg/types"
)

// 确保实现了接口
var _ Field = (*SphereField)(nil)

// ============================================================================
// SphereField 实现
// ============================================================================

// SphereField 球形距离场
//
// 球心取所属节点空间能力的当前位置，距离为欧氏距离减半径
// （场内为负）。
type SphereField struct {
	node    *scene.Node
	spatial *spatial.Spatial

	mu     sync.Mutex
	radius float32
}

// AddSphereTo 在节点上附加球形距离场
//
// 节点必须已附加空间能力。
func AddSphereTo(node *scene.Node, radius float32) (*SphereField, error) {
	sp, err := spatial.Of(node)
	if err != nil {
		return nil, fmt.Errorf("sphere field needs spatial anchor: %w", err)
	}

	f := &SphereField{
		node:    node,
		spatial: sp,
		radius:  radius,
	}
	if err := node.AddAspect(f); err != nil {
		return nil, fmt.Errorf("attach sphere field: %w", err)
	}
	return f, nil
}

// AspectName 返回能力种类名称
func (f *SphereField) AspectName() string {
	return AspectName
}

// Alive 返回所属节点是否存活
func (f *SphereField) Alive() bool {
	return f.node.Alive()
}

// Node 返回所属节点
func (f *SphereField) Node() *scene.Node {
	return f.node
}

// Radius 返回半径
func (f *SphereField) Radius() float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.radius
}

// SetRadius 设置半径
func (f *SphereField) SetRadius(radius float32) {
	f.mu.Lock()
	f.radius = radius
	f.mu.Unlock()
}

// Distance 返回点到球面的有符号距离
func (f *SphereField) Distance(point types.Vector3) float32 {
	center := f.spatial.Transform().Position
	return point.DistanceTo(center) - f.Radius()
}
