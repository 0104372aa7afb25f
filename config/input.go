// Package config 提供统一的配置管理
package config

import (
	"fmt"
	"time"
)

// InputConfig 输入子系统配置
//
// 控制帧调度循环的频率与开关。捕获偏置等协议常量不在配置
// 范围内：它们是多客户端间的行为契约，不随部署变化。
type InputConfig struct {
	// EnableDispatch 是否启动帧调度循环
	// 关闭后输入评估需由集成方自行单步驱动
	// 默认值: true
	EnableDispatch bool `json:"enable_dispatch"`

	// FrameRate 评估频率（Hz）
	// 默认值: 90（主流头显刷新率）
	FrameRate int `json:"frame_rate"`
}

// DefaultInputConfig 返回默认的输入配置
func DefaultInputConfig() InputConfig {
	return InputConfig{
		EnableDispatch: true,
		FrameRate:      90,
	}
}

// Validate 验证输入配置的有效性
func (c *InputConfig) Validate() error {
	if c.FrameRate <= 0 {
		return fmt.Errorf("input: frame_rate must be positive, got %d", c.FrameRate)
	}
	if c.FrameRate > 1000 {
		return fmt.Errorf("input: frame_rate %d exceeds 1000Hz", c.FrameRate)
	}
	return nil
}

// FrameInterval 返回评估周期
func (c *InputConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}
