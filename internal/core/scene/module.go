// Package scene 实现场景图粘合层
package scene

import (
	"context"

	"go.uber.org/fx"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Result Fx 模块输出结果
type Result struct {
	fx.Out

	Directory *Directory
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("scene",
		fx.Provide(ProvideDirectory),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideDirectory 提供客户端目录实例
func ProvideDirectory() Result {
	return Result{
		Directory: NewDirectory(),
	}
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In
	LC        fx.Lifecycle
	Directory *Directory
}

// registerLifecycle 注册生命周期
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return nil
		},
		OnStop: func(_ context.Context) error {
			// 目录停止（客户端断开由传输层驱动，此处无特殊逻辑）
			return nil
		},
	})
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "scene"
	// Description 模块描述
	Description = "场景图粘合层，提供节点/客户端/目录最小框架"
)
