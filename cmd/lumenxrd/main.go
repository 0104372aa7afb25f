// Package main 提供 lumenxrd 命令行入口
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/lumenxr/go-lumenxr"
	"github.com/lumenxr/go-lumenxr/pkg/lib/log"
)

var logger = log.Logger("lumenxr/cmd")

// ═══════════════════════════════════════════════════════════════════════════
// 命令行参数
// ═══════════════════════════════════════════════════════════════════════════
//
// 设计原则：
//
//	命令行参数：运行时覆盖 / 快速测试（「这次运行」想怎么跑）
//	JSON 配置文件：持久化配置 / 长期运行（「这台终端」的固定配置）
var (
	// 运行时参数（快速指定）
	configFile = flag.String("config", "", "配置文件路径")
	preset     = flag.String("preset", "desktop", "预设配置 (headset/desktop/kiosk/minimal)")
	frameRate  = flag.Int("frame-rate", 0, "输入评估频率 Hz（0 = 使用配置值）")

	// 日志参数
	logLevel = flag.String("log-level", "", "日志级别 (debug/info/warn/error)")

	// 指标参数
	metricsListen = flag.String("metrics-listen", "", "指标暴露地址（覆盖配置值）")

	// 信息显示
	showVersion = flag.Bool("version", false, "显示版本信息")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	if *showVersion {
		fmt.Println(lumenxr.VersionInfo())
		return nil
	}

	opts := buildOptions()
	srv, err := lumenxr.New(opts...)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	// Ctrl-C / SIGTERM 触发优雅退出
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	// 指标暴露端点
	cfg := srv.Config()
	if cfg.Metrics.Enabled && srv.MetricsRegistry() != nil {
		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, promhttp.HandlerFor(
			srv.MetricsRegistry(), promhttp.HandlerOpts{}))
		metricsSrv := &http.Server{
			Addr:              cfg.Metrics.Listen,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			logger.Info("metrics endpoint listening",
				"addr", cfg.Metrics.Listen, "path", cfg.Metrics.Path)
			if err := metricsSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return metricsSrv.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		return nil
	})

	logger.Info("lumenxrd running", "version", lumenxr.Version)
	err = g.Wait()

	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if cerr := srv.Close(closeCtx); cerr != nil {
		logger.Warn("close failed", "err", cerr)
		if err == nil {
			err = cerr
		}
	}
	return err
}

// buildOptions 将命令行参数转换为服务端选项
func buildOptions() []lumenxr.Option {
	opts := []lumenxr.Option{}

	if *configFile != "" {
		opts = append(opts, lumenxr.WithConfigFile(*configFile))
	}
	opts = append(opts, lumenxr.WithPreset(*preset))

	if *frameRate > 0 {
		opts = append(opts, lumenxr.WithFrameRate(*frameRate))
	}
	if *logLevel != "" {
		opts = append(opts, lumenxr.WithLogLevel(*logLevel))
	}
	if *metricsListen != "" {
		opts = append(opts, lumenxr.WithMetricsListen(*metricsListen))
	}
	return opts
}
