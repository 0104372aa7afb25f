// Package types 定义 LumenXR 的基础类型
//
// 本文件定义所有公共错误类型。
package types

import "errors"

// ============================================================================
//                              能力相关错误
// ============================================================================

var (
	// ErrAspectNotFound 节点缺少所需能力
	ErrAspectNotFound = errors.New("aspect not found on node")

	// ErrAspectExists 节点已附加同类能力
	ErrAspectExists = errors.New("aspect already attached to node")

	// ErrInputTypeChanged 输入数据变体与创建时不一致
	ErrInputTypeChanged = errors.New("input data type must stay fixed for the method's lifetime")
)

// ============================================================================
//                              节点/客户端相关错误
// ============================================================================

var (
	// ErrNodeDestroyed 节点已销毁
	ErrNodeDestroyed = errors.New("node destroyed")

	// ErrNodeGone 弱引用目标节点已不存在
	ErrNodeGone = errors.New("node no longer reachable")

	// ErrClientGone 客户端连接已断开
	ErrClientGone = errors.New("client disconnected")

	// ErrNoOwningClient 节点没有可解析的所属客户端
	ErrNoOwningClient = errors.New("node has no resolvable owning client")

	// ErrPathOccupied 命名空间挂载路径冲突
	ErrPathOccupied = errors.New("namespace path already occupied")

	// ErrInvalidPath 非法命名空间路径
	ErrInvalidPath = errors.New("invalid namespace path")
)

// ============================================================================
//                              调度相关错误
// ============================================================================

var (
	// ErrLoopClosed 帧调度循环已关闭
	ErrLoopClosed = errors.New("dispatch loop closed")

	// ErrLoopRunning 帧调度循环已在运行
	ErrLoopRunning = errors.New("dispatch loop already running")
)
