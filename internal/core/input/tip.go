// Package input 实现输入法/处理器的匹配与捕获协议
//
// 本文件定义笔尖输入变体。
package input

import (
	pkgif "github.com/lumenxr/go-lumenxr/pkg/interfaces"
	"github.com/lumenxr/go-lumenxr/pkg/types"
)

// 确保实现了接口
var _ pkgif.InputData = Tip{}

// Tip 笔尖/触点输入数据
//
// 取触点本身度量：触点位置经空间锚点换算后对场表面取距离，
// 再减去触点半径。
type Tip struct {
	// Origin 触点位置（锚点坐标系）
	Origin types.Vector3 `json:"origin"`
	// Radius 触点半径
	Radius float32 `json:"radius"`
}

// Type 返回变体标签
func (Tip) Type() pkgif.InputDataType {
	return pkgif.InputTypeTip
}

// Distance 返回触点到距离场的度量距离
func (t Tip) Distance(anchor types.Pose, field pkgif.Field) float32 {
	return field.Distance(anchor.Position.Add(t.Origin)) - t.Radius
}
