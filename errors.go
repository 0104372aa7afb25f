package lumenxr

import "errors"

// 公共错误定义
var (
	// ErrNotStarted 服务端未启动
	ErrNotStarted = errors.New("server not started")

	// ErrAlreadyStarted 服务端已启动
	ErrAlreadyStarted = errors.New("server already started")

	// ErrServerClosed 服务端已关闭
	ErrServerClosed = errors.New("server closed")
)
