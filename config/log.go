// Package config 提供统一的配置管理
package config

import "fmt"

// LogConfig 日志配置
//
// 控制结构化日志的级别、格式与输出位置。级别解析由日志包
// 完成，这里只做取值校验。
type LogConfig struct {
	// Level 日志级别
	// 取值: "debug" | "info" | "warn" | "error"
	// 默认值: "info"
	Level string `json:"level"`

	// Format 输出格式
	// 取值: "text" | "json"
	// 默认值: "text"
	Format string `json:"format"`

	// Output 输出目标
	// 取值: "stderr"、"stdout" 或文件路径
	// 默认值: "stderr"
	Output string `json:"output"`
}

// DefaultLogConfig 返回默认的日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  "info",
		Format: "text",
		Output: "stderr",
	}
}

// Validate 验证日志配置的有效性
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log: unknown level %q", c.Level)
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log: unknown format %q", c.Format)
	}
	if c.Output == "" {
		return fmt.Errorf("log: output cannot be empty")
	}
	return nil
}
