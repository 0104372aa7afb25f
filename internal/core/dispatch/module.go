// Package dispatch 实现输入帧调度循环
package dispatch

import (
	"context"
	"time"

	"go.uber.org/fx"

	"github.com/lumenxr/go-lumenxr/internal/core/input"
)

// ============================================================================
// Fx 模块
// ============================================================================

// ModuleInput 定义模块输入依赖
type ModuleInput struct {
	fx.In

	Manager *input.Manager

	// Interval 评估周期（可选，缺省 90Hz）
	Interval time.Duration `name:"frame_interval" optional:"true"`

	// Observer 帧耗时观察回调（可选，指标模块提供）
	Observer func(time.Duration) `name:"frame_observer" optional:"true"`
}

// Result Fx 模块输出结果
type Result struct {
	fx.Out

	Loop *Loop
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("dispatch",
		fx.Provide(ProvideLoop),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideLoop 提供帧调度循环实例
func ProvideLoop(input ModuleInput) Result {
	opts := []Option{}
	if input.Interval > 0 {
		opts = append(opts, WithInterval(input.Interval))
	}
	if input.Observer != nil {
		opts = append(opts, WithFrameObserver(input.Observer))
	}
	return Result{
		Loop: NewLoop(input.Manager, opts...),
	}
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In
	LC   fx.Lifecycle
	Loop *Loop
}

// registerLifecycle 注册生命周期
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// 循环寿命超出启动阶段，挂到后台上下文
			return input.Loop.Start(context.Background())
		},
		OnStop: func(_ context.Context) error {
			return input.Loop.Close()
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
	Name = "dispatch"
	// Description 模块描述
	Description = "输入帧调度循环，按固定频率驱动排序、投递与捕获清理"
)
