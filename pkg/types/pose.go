// Package types 定义 LumenXR 的基础类型
//
// 本文件定义空间位姿类型。位姿数学只覆盖本核心需要的最小集合，
// 完整的空间变换由外部空间框架负责。
package types

import "math"

// ============================================================================
//                              Vector3
// ============================================================================

// Vector3 三维向量
type Vector3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Add 向量加法
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub 向量减法
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Length 向量长度
func (v Vector3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// DistanceTo 到另一点的欧氏距离
func (v Vector3) DistanceTo(o Vector3) float32 {
	return v.Sub(o).Length()
}

// ============================================================================
//                              Quaternion
// ============================================================================

// Quaternion 旋转四元数
type Quaternion struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
	W float32 `json:"w"`
}

// IdentityQuaternion 单位旋转
var IdentityQuaternion = Quaternion{W: 1}

// ============================================================================
//                              Pose
// ============================================================================

// Pose 空间位姿（位置 + 朝向）
//
// 本核心只读取 Position 做距离计算，Orientation 原样透传给
// 距离场实现（例如指针射线方向）。
type Pose struct {
	Position    Vector3    `json:"position"`
	Orientation Quaternion `json:"orientation"`
}

// IdentityPose 原点位姿
var IdentityPose = Pose{Orientation: IdentityQuaternion}

// PoseAt 返回指定位置、单位朝向的位姿
func PoseAt(position Vector3) Pose {
	return Pose{Position: position, Orientation: IdentityQuaternion}
}
