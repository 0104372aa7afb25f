// Package interfaces 定义 LumenXR 公共接口
//
// 本文件定义节点能力契约。
package interfaces

// Aspect 定义节点能力接口
//
// 能力对象附加在节点上，通过名称区分种类。同一节点同种能力
// 至多附加一个。
type Aspect interface {
	// AspectName 返回能力种类名称（如 "spatial"、"input_method"）
	AspectName() string
}

// Living 定义存活性契约
//
// 弱追踪注册表以此判定条目是否仍然有效：对象销毁后 Alive
// 必须立即返回 false，使快照读取方静默跳过该条目。
type Living interface {
	// Alive 返回对象是否仍然存活
	Alive() bool
}
