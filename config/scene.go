// Package config 提供统一的配置管理
package config

import "fmt"

// SceneConfig 场景图配置
//
// 控制客户端事件通道与路径解析缓存的容量。事件通道满时投递
// 丢弃计数，缓存满时按 LRU 逐出。
type SceneConfig struct {
	// SignalBuffer 每个客户端的事件通道容量
	// 默认值: 64
	SignalBuffer int `json:"signal_buffer"`

	// ResolveCacheSize 每个客户端的路径解析 LRU 缓存容量
	// 默认值: 256
	ResolveCacheSize int `json:"resolve_cache_size"`
}

// DefaultSceneConfig 返回默认的场景图配置
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		SignalBuffer:     64,
		ResolveCacheSize: 256,
	}
}

// Validate 验证场景图配置的有效性
func (c *SceneConfig) Validate() error {
	if c.SignalBuffer <= 0 {
		return fmt.Errorf("scene: signal_buffer must be positive, got %d", c.SignalBuffer)
	}
	if c.ResolveCacheSize <= 0 {
		return fmt.Errorf("scene: resolve_cache_size must be positive, got %d", c.ResolveCacheSize)
	}
	return nil
}
