// Package interfaces 定义 LumenXR 公共接口
//
// 本文件定义距离场能力契约。
package interfaces

import "github.com/lumenxr/go-lumenxr/pkg/types"

// Field 定义距离场接口
//
// 距离场描述一个输入接收区域的几何范围。本核心只消费
// Distance：给定世界坐标系中的一点，返回到场表面的有符号
// 距离（场内为负）。具体几何实现不在本核心范围内。
type Field interface {
	Aspect
	Living

	// Distance 返回点到场表面的有符号距离
	Distance(point types.Vector3) float32
}
