// Package types 定义 LumenXR 的基础类型
//
// 本文件定义对象标识类型。
package types

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// ============================================================================
//                              Uid - 稳定字符串标识
// ============================================================================

// Uid 节点/能力对象的稳定标识符
//
// 在对象整个生命周期内不变，跨客户端边界传递（别名键、
// 处理器创建/销毁通知都以 Uid 为准）。
//
// 外部表示格式：
//   - String(): UUID 字符串（用户可读）
//   - ShortString(): 前 8 个字符（日志简短标识）
type Uid string

// EmptyUid 空标识
const EmptyUid Uid = ""

// NewUid 生成新的随机标识
func NewUid() Uid {
	return Uid(uuid.NewString())
}

// String 返回完整字符串表示
func (u Uid) String() string {
	return string(u)
}

// ShortString 返回短字符串表示
//
// 格式：前 8 个字符，用于日志中的简短标识。
func (u Uid) ShortString() string {
	if len(u) > 8 {
		return string(u[:8])
	}
	return string(u)
}

// IsEmpty 判断是否为空标识
func (u Uid) IsEmpty() bool {
	return u == EmptyUid
}

// ============================================================================
//                              MethodKey - 槽位式标识
// ============================================================================

// MethodKey 输入法对象的进程内唯一键
//
// 处理器侧保存「处理器 → 输入法」别名时以 MethodKey 为键。
// 采用单调递增计数器而非对象地址：地址在并发创建/销毁周期中
// 可能被复用，计数器键永不复用。
type MethodKey uint64

// EmptyMethodKey 空键，不会被 NextMethodKey 返回
const EmptyMethodKey MethodKey = 0

var methodKeyCounter atomic.Uint64

// NextMethodKey 分配下一个 MethodKey
//
// 进程内单调递增，从 1 开始，并发安全。
func NextMethodKey() MethodKey {
	return MethodKey(methodKeyCounter.Add(1))
}

// IsEmpty 判断是否为空键
func (k MethodKey) IsEmpty() bool {
	return k == EmptyMethodKey
}
