// Package interfaces 定义 LumenXR 公共接口
//
// 本文件定义输入数据变体契约。
package interfaces

import "github.com/lumenxr/go-lumenxr/pkg/types"

// ============================================================================
//                              InputDataType
// ============================================================================

// InputDataType 输入数据变体标签
//
// 变体集合封闭：指针、手、笔尖。输入法创建时确定变体，
// 此后整个生命周期不得更换（SetInput 会校验并拒绝更换）。
type InputDataType string

const (
	// InputTypePointer 指针（射线）输入
	InputTypePointer InputDataType = "pointer"

	// InputTypeHand 手部骨骼输入
	InputTypeHand InputDataType = "hand"

	// InputTypeTip 笔尖/触点输入
	InputTypeTip InputDataType = "tip"
)

// Valid 判断变体标签是否合法
func (t InputDataType) Valid() bool {
	switch t {
	case InputTypePointer, InputTypeHand, InputTypeTip:
		return true
	}
	return false
}

// ============================================================================
//                              InputData
// ============================================================================

// InputData 定义输入数据变体接口
//
// 每个变体定义自己的距离度量：指针取最近命中点，手取最近
// 指尖，笔尖取触点本身。距离通过输入法的空间锚点换算到
// 场所在坐标系。
type InputData interface {
	// Type 返回变体标签
	Type() InputDataType

	// Distance 返回经空间锚点换算后，该输入到距离场的度量距离
	Distance(anchor types.Pose, field Field) float32
}

// ============================================================================
//                              SignalSender
// ============================================================================

// SignalSender 定义服务端到客户端的单向通知契约
//
// 通知为尽力而为：目标客户端可能正在断开，投递失败由实现
// 吞掉，调用方不感知。
type SignalSender interface {
	// SendSignal 向客户端发送一条单向通知
	SendSignal(nodePath, signal string, payload any) error

	// Connected 返回客户端连接是否仍然存活
	Connected() bool
}
