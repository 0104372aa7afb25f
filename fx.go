package lumenxr

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/lumenxr/go-lumenxr/config"
	"github.com/lumenxr/go-lumenxr/pkg/lib/log"

	"github.com/lumenxr/go-lumenxr/internal/core/dispatch"
	"github.com/lumenxr/go-lumenxr/internal/core/input"
	"github.com/lumenxr/go-lumenxr/internal/core/metrics"
	"github.com/lumenxr/go-lumenxr/internal/core/scene"
)

var fxLogger = log.Logger("lumenxr/fx")

// buildFxApp 构建 Fx 应用
//
// 组装所有内部模块，采用条件加载策略：
//   - 核心模块：必须加载（Scene, Input）
//   - 条件模块：根据配置加载（Metrics, Dispatch）
//   - 扩展模块：用户自定义 Fx 选项
//
// 加载顺序（按依赖）：
//  1. Scene（客户端目录）
//  2. Input（输入注册表）
//  3. Metrics（指标采集，依赖 Scene + Input）
//  4. Dispatch（帧调度，依赖 Input，可选接入 Metrics 观察回调）
func buildFxApp(o *options, srv *Server) *fx.App {
	cfg := o.config

	modules := []fx.Option{
		// 配置注入
		fx.Supply(cfg),

		// 核心模块（必须）
		scene.Module(),
		input.Module(),
	}

	// 指标采集（条件加载）
	if cfg.Metrics.Enabled {
		modules = append(modules, metrics.Module())
	}

	// 帧调度（条件加载）
	if cfg.Input.EnableDispatch {
		modules = append(modules,
			fx.Provide(fx.Annotated{
				Name: "frame_interval",
				Target: func(cfg *config.Config) time.Duration {
					return cfg.Input.FrameInterval()
				},
			}),
			dispatch.Module(),
		)
	}

	// 用户扩展
	if len(o.userFxOptions) > 0 {
		modules = append(modules, o.userFxOptions...)
	}

	// Server 组件注入
	modules = append(modules, fx.Invoke(injectServerComponents(srv)))

	// Fx 自身的事件日志只在 debug 级别输出
	modules = append(modules, fx.WithLogger(func() fxevent.Logger {
		if cfg.Log.Level == "debug" {
			logger, err := zap.NewDevelopment()
			if err == nil {
				return &fxevent.ZapLogger{Logger: logger}
			}
			fxLogger.Warn("falling back to silent fx logger", "err", err)
		}
		return &fxevent.ZapLogger{Logger: zap.NewNop()}
	}))

	return fx.New(modules...)
}

// serverInjectParams Server 组件注入参数
type serverInjectParams struct {
	fx.In

	Directory *scene.Directory
	Manager   *input.Manager

	// 条件加载的模块可能不存在
	Loop      *dispatch.Loop       `optional:"true"`
	Collector *metrics.Collector   `optional:"true"`
	Registry  *prometheus.Registry `optional:"true"`
}

// injectServerComponents 创建 Server 组件注入函数
func injectServerComponents(srv *Server) any {
	return func(params serverInjectParams) {
		srv.dir = params.Directory
		srv.mgr = params.Manager
		srv.loop = params.Loop
		srv.collector = params.Collector
		srv.registry = params.Registry
	}
}
