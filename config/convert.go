// Package config 提供统一的配置管理
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// FromJSON 从 JSON 数据创建配置
//
// 未出现的字段保留默认值，JSON 格式与 Config 结构体一一对应。
//
// 示例 JSON:
//
//	{
//	  "log": {"level": "debug"},
//	  "input": {"frame_rate": 120}
//	}
func FromJSON(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// ToJSON 序列化配置为 JSON
func ToJSON(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	return json.MarshalIndent(cfg, "", "  ")
}

// LoadFile 从文件加载配置
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return FromJSON(data)
}

// SaveFile 保存配置到文件
func SaveFile(cfg *Config, path string) error {
	data, err := ToJSON(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ApplyPreset 应用预设配置
//
// Preset 提供了针对不同部署形态优化的配置组合。
// 该函数将预设应用到配置上。
//
// 支持的预设：
//   - "headset": 头显优化（高帧率）
//   - "desktop": 桌面端默认
//   - "kiosk": 展示终端优化
//   - "minimal": 最小配置
func ApplyPreset(cfg *Config, presetName string) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	switch presetName {
	case "headset":
		return applyHeadsetPreset(cfg)
	case "desktop":
		return applyDesktopPreset(cfg)
	case "kiosk":
		return applyKioskPreset(cfg)
	case "minimal":
		return applyMinimalPreset(cfg)
	case "":
		// 空预设，不做任何操作
		return nil
	default:
		return fmt.Errorf("unknown preset: %s", presetName)
	}
}

// applyHeadsetPreset 应用头显预设
//
// 头显配置优化：
//   - 高评估频率，匹配面板刷新率
//   - 更大的客户端事件通道，容纳手部输入的事件峰值
func applyHeadsetPreset(cfg *Config) error {
	cfg.Input.FrameRate = 120
	cfg.Scene.SignalBuffer = 256
	cfg.Scene.ResolveCacheSize = 512
	return nil
}

// applyDesktopPreset 应用桌面端预设
func applyDesktopPreset(_ *Config) error {
	// 使用默认配置（已经针对桌面优化）
	return nil
}

// applyKioskPreset 应用展示终端预设
//
// 展示终端配置优化：
//   - 长驻运行，启用指标便于远程巡检
//   - 客户端数量固定且少，降低评估频率省功耗
func applyKioskPreset(cfg *Config) error {
	cfg.Input.FrameRate = 72
	cfg.Metrics.Enabled = true
	cfg.Log.Format = "json"
	return nil
}

// applyMinimalPreset 应用最小预设
//
// 最小配置优化：
//   - 禁用帧调度与指标，集成方自行驱动
//   - 极小缓冲，适合测试和开发
func applyMinimalPreset(cfg *Config) error {
	cfg.Input.EnableDispatch = false
	cfg.Input.FrameRate = 30
	cfg.Metrics.Enabled = false
	cfg.Scene.SignalBuffer = 8
	cfg.Scene.ResolveCacheSize = 16
	return nil
}

// MergeConfigs 合并多个配置
//
// 将多个配置合并为一个，后面的配置会完全覆盖前面的配置。
// 用于实现配置的分层覆盖（默认配置 -> 预设配置 -> 用户配置）。
//
// 合并策略：后者完全覆盖前者
//   - 如果需要逐字段合并，请在调用前手动处理
//   - nil 配置会被跳过
func MergeConfigs(configs ...*Config) (*Config, error) {
	if len(configs) == 0 {
		return NewConfig(), nil
	}

	var result *Config
	for _, cfg := range configs {
		if cfg != nil {
			result = cfg
		}
	}

	if result == nil {
		return NewConfig(), nil
	}
	return result, nil
}

// CloneConfig 克隆配置
//
// 创建配置的拷贝，用于安全地修改配置而不影响原始配置。
// 所有子配置均为值类型，浅拷贝即深拷贝。
func CloneConfig(cfg *Config) *Config {
	if cfg == nil {
		return nil
	}
	cloned := *cfg
	return &cloned
}
