// Package config 提供统一的配置管理
package config

import "fmt"

// MetricsConfig 指标采集配置
type MetricsConfig struct {
	// Enabled 是否启用指标采集
	// 默认值: true
	Enabled bool `json:"enabled"`

	// Listen 指标暴露地址
	// 默认值: "127.0.0.1:9464"
	Listen string `json:"listen"`

	// Path 指标暴露路径
	// 默认值: "/metrics"
	Path string `json:"path"`
}

// DefaultMetricsConfig 返回默认的指标配置
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled: true,
		Listen:  "127.0.0.1:9464",
		Path:    "/metrics",
	}
}

// Validate 验证指标配置的有效性
func (c *MetricsConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Listen == "" {
		return fmt.Errorf("metrics: listen cannot be empty when enabled")
	}
	if c.Path == "" || c.Path[0] != '/' {
		return fmt.Errorf("metrics: path must start with '/', got %q", c.Path)
	}
	return nil
}
