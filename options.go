package lumenxr

import (
	"fmt"

	"go.uber.org/fx"

	"github.com/lumenxr/go-lumenxr/config"
)

// Option 用户配置选项函数
type Option func(*options) error

// options 内部选项结构
type options struct {
	config *config.Config

	// userFxOptions 用户自定义 Fx 扩展
	userFxOptions []fx.Option
}

// newOptions 创建默认选项
func newOptions() *options {
	return &options{
		config: config.NewConfig(),
	}
}

// apply 按出现顺序应用全部选项并校验最终配置
//
// 选项按序生效：预设在前、细粒度覆盖在后是惯用写法。
func (o *options) apply(opts []Option) error {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return err
		}
	}
	return o.config.Validate()
}

// WithConfig 使用完整配置
//
// 与其他选项叠加时，后出现的选项覆盖前者的字段。
func WithConfig(cfg *config.Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return fmt.Errorf("config is nil")
		}
		o.config = config.CloneConfig(cfg)
		return nil
	}
}

// WithConfigFile 从 JSON 文件加载配置
func WithConfigFile(path string) Option {
	return func(o *options) error {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		o.config = cfg
		return nil
	}
}

// WithPreset 应用预设配置
//
// 支持 "headset"、"desktop"、"kiosk"、"minimal"。立即生效，
// 之后出现的选项可覆盖预设字段。
func WithPreset(name string) Option {
	return func(o *options) error {
		return config.ApplyPreset(o.config, name)
	}
}

// WithFrameRate 设置输入评估频率（Hz）
func WithFrameRate(hz int) Option {
	return func(o *options) error {
		o.config.Input.FrameRate = hz
		return nil
	}
}

// WithDispatch 控制是否启动帧调度循环
func WithDispatch(enable bool) Option {
	return func(o *options) error {
		o.config.Input.EnableDispatch = enable
		return nil
	}
}

// WithMetrics 控制是否启用指标采集
func WithMetrics(enable bool) Option {
	return func(o *options) error {
		o.config.Metrics.Enabled = enable
		return nil
	}
}

// WithMetricsListen 设置指标暴露地址
func WithMetricsListen(addr string) Option {
	return func(o *options) error {
		o.config.Metrics.Listen = addr
		return nil
	}
}

// WithLogLevel 设置日志级别
//
// 取值 "debug"、"info"、"warn"、"error"。
func WithLogLevel(level string) Option {
	return func(o *options) error {
		o.config.Log.Level = level
		return nil
	}
}

// WithFxOption 注入用户自定义 Fx 选项
//
// 供集成方挂接额外的模块或 Invoke 钩子。
func WithFxOption(opts ...fx.Option) Option {
	return func(o *options) error {
		o.userFxOptions = append(o.userFxOptions, opts...)
		return nil
	}
}
