package lumenxr

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/multierr"

	"github.com/lumenxr/go-lumenxr/config"
	"github.com/lumenxr/go-lumenxr/pkg/lib/log"

	"github.com/lumenxr/go-lumenxr/internal/core/dispatch"
	"github.com/lumenxr/go-lumenxr/internal/core/input"
	"github.com/lumenxr/go-lumenxr/internal/core/metrics"
	"github.com/lumenxr/go-lumenxr/internal/core/scene"
)

// ════════════════════════════════════════════════════════════════════════════
//                              版本信息
// ════════════════════════════════════════════════════════════════════════════

// Version 当前版本
const Version = "v0.1.0-beta.1"

// BuildInfo 构建信息（通过 ldflags 注入）
var (
	// GitCommit Git 提交哈希
	GitCommit string

	// BuildDate 构建日期
	BuildDate string
)

// VersionInfo 返回完整版本信息字符串
func VersionInfo() string {
	info := "LumenXR " + Version
	if GitCommit != "" {
		info += " (" + log.TruncateID(GitCommit, 8) + ")"
	}
	if BuildDate != "" {
		info += " built " + BuildDate
	}
	return info
}

// ════════════════════════════════════════════════════════════════════════════
//                              Server 门面
// ════════════════════════════════════════════════════════════════════════════

var logger = log.Logger("lumenxr")

// Server LumenXR 服务端门面
//
// 组装并持有输入核心的全部模块，暴露客户端接入与注册表访问
// 入口。生命周期：New → Start → Stop/Close。
type Server struct {
	cfg *config.Config
	app *fx.App

	// 由 Fx 图注入
	dir       *scene.Directory
	mgr       *input.Manager
	loop      *dispatch.Loop
	collector *metrics.Collector
	registry  *prometheus.Registry

	mu      sync.Mutex
	started bool
	closed  bool
}

// New 创建服务端
//
// 应用选项、校验配置并构建依赖图。此时后台循环尚未启动，
// 需调用 Start。
func New(opts ...Option) (*Server, error) {
	o := newOptions()
	if err := o.apply(opts); err != nil {
		return nil, err
	}

	applyLogConfig(o.config.Log)

	srv := &Server{cfg: o.config}
	srv.app = buildFxApp(o, srv)
	if err := srv.app.Err(); err != nil {
		return nil, err
	}
	return srv, nil
}

// Start 启动服务端
//
// 触发全部模块的 OnStart 钩子（含帧调度循环）。重复启动返回
// ErrAlreadyStarted，已关闭返回 ErrServerClosed。
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrServerClosed
	}
	if s.started {
		return ErrAlreadyStarted
	}

	if err := s.app.Start(ctx); err != nil {
		return err
	}
	s.started = true

	logger.Info("server started",
		"version", Version,
		"frameRate", s.cfg.Input.FrameRate,
		"dispatch", s.cfg.Input.EnableDispatch,
		"metrics", s.cfg.Metrics.Enabled)
	return nil
}

// Stop 停止服务端
//
// 触发全部模块的 OnStop 钩子。未启动返回 ErrNotStarted。
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}

	err := s.app.Stop(ctx)
	s.started = false

	logger.Info("server stopped")
	return err
}

// Close 停止并关闭服务端
//
// 断开全部在线客户端（级联销毁其命名空间），随后停止模块。
// 幂等；关闭后不可再启动。
func (s *Server) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	started := s.started
	s.started = false
	s.mu.Unlock()

	var errs error
	if s.dir != nil {
		for _, c := range s.dir.Clients() {
			c.Disconnect()
		}
	}
	if started {
		errs = multierr.Append(errs, s.app.Stop(ctx))
	}

	logger.Info("server closed")
	return errs
}

// ════════════════════════════════════════════════════════════════════════════
//                              访问入口
// ════════════════════════════════════════════════════════════════════════════

// NewClient 接入一个客户端
//
// 缓冲容量取自场景配置。客户端断开由调用方经 Disconnect
// 驱动。
func (s *Server) NewClient() *scene.Client {
	return scene.NewClient(s.dir,
		scene.WithSignalBuffer(s.cfg.Scene.SignalBuffer),
		scene.WithResolveCacheSize(s.cfg.Scene.ResolveCacheSize))
}

// Config 返回生效配置
func (s *Server) Config() *config.Config {
	return s.cfg
}

// Directory 返回客户端目录
func (s *Server) Directory() *scene.Directory {
	return s.dir
}

// InputManager 返回输入注册表集合
func (s *Server) InputManager() *input.Manager {
	return s.mgr
}

// Loop 返回帧调度循环
//
// 帧调度被禁用时返回 nil（集成方自行单步驱动）。
func (s *Server) Loop() *dispatch.Loop {
	return s.loop
}

// MetricsRegistry 返回指标注册表
//
// 指标被禁用时返回 nil。
func (s *Server) MetricsRegistry() *prometheus.Registry {
	return s.registry
}

// ════════════════════════════════════════════════════════════════════════════
//                              内部辅助
// ════════════════════════════════════════════════════════════════════════════

// applyLogConfig 应用日志配置到进程默认 logger
func applyLogConfig(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = log.LevelDebug
	case "warn":
		level = log.LevelWarn
	case "error":
		level = log.LevelError
	default:
		level = log.LevelInfo
	}

	var out *os.File
	switch cfg.Output {
	case "stderr", "":
		out = os.Stderr
	case "stdout":
		out = os.Stdout
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			logger.Warn("cannot open log file, falling back to stderr",
				"path", cfg.Output, "err", err)
			out = os.Stderr
		} else {
			out = f
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		log.SetDefault(log.NewJSON(out, opts))
	} else {
		log.SetDefault(log.New(out, opts))
	}
}
