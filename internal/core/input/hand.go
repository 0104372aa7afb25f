// Package input 实现输入法/处理器的匹配与捕获协议
//
// 本文件定义手部输入变体。
package input

import (
	"math"

	pkgif "github.com/lumenxr/go-lumenxr/pkg/interfaces"
	"github.com/lumenxr/go-lumenxr/pkg/types"
)

// 确保实现了接口
var _ pkgif.InputData = Hand{}

// Hand 手部骨骼输入数据
//
// 取最近指尖度量：全部指尖位置经空间锚点换算后，对场表面
// 取最小距离。关节全集由设备侧提供，核心只消费指尖。
type Hand struct {
	// Right 是否右手
	Right bool `json:"right"`
	// TipPositions 指尖位置（锚点坐标系），顺序拇指→小指
	TipPositions []types.Vector3 `json:"tip_positions"`
	// PalmPosition 掌心位置（锚点坐标系）
	PalmPosition types.Vector3 `json:"palm_position"`
}

// Type 返回变体标签
func (Hand) Type() pkgif.InputDataType {
	return pkgif.InputTypeHand
}

// Distance 返回最近指尖到距离场的度量距离
//
// 没有指尖数据时退化为掌心距离。
func (h Hand) Distance(anchor types.Pose, field pkgif.Field) float32 {
	if len(h.TipPositions) == 0 {
		return field.Distance(anchor.Position.Add(h.PalmPosition))
	}

	nearest := float32(math.Inf(1))
	for _, tip := range h.TipPositions {
		d := field.Distance(anchor.Position.Add(tip))
		if d < nearest {
			nearest = d
		}
	}
	return nearest
}
