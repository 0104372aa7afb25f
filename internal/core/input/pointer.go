// Package input 实现输入法/处理器的匹配与捕获协议
//
// 本文件定义指针输入变体。
package input

import (
	pkgif "github.com/lumenxr/go-lumenxr/pkg/interfaces"
	"github.com/lumenxr/go-lumenxr/pkg/types"
)

// 确保实现了接口
var _ pkgif.InputData = Pointer{}

// Pointer 指针（射线）输入数据
//
// 取最近命中点度量：射线原点经空间锚点换算后，对场表面取
// 距离。原点/朝向为锚点坐标系内的相对量。
type Pointer struct {
	// Origin 射线原点（锚点坐标系）
	Origin types.Vector3 `json:"origin"`
	// Orientation 射线朝向
	Orientation types.Quaternion `json:"orientation"`
	// Deepest 当前帧最深命中信息，由设备侧更新，核心透传
	Deepest types.Vector3 `json:"deepest"`
}

// Type 返回变体标签
func (Pointer) Type() pkgif.InputDataType {
	return pkgif.InputTypePointer
}

// Distance 返回指针到距离场的度量距离
func (p Pointer) Distance(anchor types.Pose, field pkgif.Field) float32 {
	origin := anchor.Position.Add(p.Origin)
	return field.Distance(origin)
}
