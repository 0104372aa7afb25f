// Package fields 实现距离场能力
package fields

import (
	"fmt"
	"math"
	"sync"

	"github.com/lumenxr/go-lumenxr/internal/core/scene"
	"github.com/lumenxr/go-lumenxr/internal/core/spatial"
	"github.com/lumenxr/go-lumenxr/pkg/types"
)

// 确保实现了接口
var _ Field = (*BoxField)(nil)

// ============================================================================
// BoxField 实现
// ============================================================================

// BoxField 轴对齐盒形距离场
//
// 盒心取所属节点空间能力的当前位置。朝向暂不参与距离计算，
// 面板类处理器的盒场默认轴对齐。
type BoxField struct {
	node    *scene.Node
	spatial *spatial.Spatial

	mu   sync.Mutex
	half types.Vector3
}

// AddBoxTo 在节点上附加盒形距离场
//
// half 为三轴半边长，节点必须已附加空间能力。
func AddBoxTo(node *scene.Node, half types.Vector3) (*BoxField, error) {
	sp, err := spatial.Of(node)
	if err != nil {
		return nil, fmt.Errorf("box field needs spatial anchor: %w", err)
	}

	f := &BoxField{
		node:    node,
		spatial: sp,
		half:    half,
	}
	if err := node.AddAspect(f); err != nil {
		return nil, fmt.Errorf("attach box field: %w", err)
	}
	return f, nil
}

// AspectName 返回能力种类名称
func (f *BoxField) AspectName() string {
	return AspectName
}

// Alive 返回所属节点是否存活
func (f *BoxField) Alive() bool {
	return f.node.Alive()
}

// Node 返回所属节点
func (f *BoxField) Node() *scene.Node {
	return f.node
}

// Distance 返回点到盒面的有符号距离
func (f *BoxField) Distance(point types.Vector3) float32 {
	center := f.spatial.Transform().Position

	f.mu.Lock()
	half := f.half
	f.mu.Unlock()

	// 标准盒 SDF：q = |p-c| - half
	q := types.Vector3{
		X: abs(point.X-center.X) - half.X,
		Y: abs(point.Y-center.Y) - half.Y,
		Z: abs(point.Z-center.Z) - half.Z,
	}
	outside := types.Vector3{X: max32(q.X, 0), Y: max32(q.Y, 0), Z: max32(q.Z, 0)}
	inside := min32(max32(q.X, max32(q.Y, q.Z)), 0)
	return outside.Length() + inside
}

func abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
