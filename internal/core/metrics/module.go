// Package metrics 提供输入子系统的指标采集
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/lumenxr/go-lumenxr/internal/core/input"
	"github.com/lumenxr/go-lumenxr/internal/core/scene"
)

// ============================================================================
// Fx 模块
// ============================================================================

// ModuleInput 定义模块输入依赖
type ModuleInput struct {
	fx.In

	Manager   *input.Manager
	Directory *scene.Directory
}

// Result Fx 模块输出结果
type Result struct {
	fx.Out

	Collector *Collector
	Registry  *prometheus.Registry

	// Observer 帧耗时观察回调，供帧调度模块接入
	Observer func(time.Duration) `name:"frame_observer"`
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("metrics",
		fx.Provide(ProvideCollector),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideCollector 提供指标采集器实例
//
// 注册表由模块自建并对外提供，外部聚合方从注册表 Gather。
func ProvideCollector(input ModuleInput) (Result, error) {
	reg := prometheus.NewRegistry()

	col, err := NewCollector(reg, input.Manager, input.Directory)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Collector: col,
		Registry:  reg,
		Observer:  col.ObserveFrame,
	}, nil
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In
	LC        fx.Lifecycle
	Collector *Collector
}

// registerLifecycle 注册生命周期
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return nil
		},
		OnStop: func(_ context.Context) error {
			// 采集器只读，无需停止逻辑
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
	Name = "metrics"
	// Description 模块描述
	Description = "Prometheus 指标采集，覆盖注册表数量、配线计数与帧耗时"
)
