// Package config 提供统一的配置管理
package config

import (
	"encoding/json"
	"fmt"
	"time"
)

// Duration 是支持 JSON 字符串解析的 time.Duration 包装类型
//
// 配置文件中的时间量（帧间隔、停机宽限等）既可写可读字符串，
// 也可写纳秒数:
//   - 字符串: "11ms"（约 90Hz 帧间隔）、"8.3ms"、"10s" 等
//   - 数字: 纳秒数
//
// 使用示例:
//
//	type InputConfig struct {
//	    FrameInterval Duration `json:"frame_interval"`
//	}
//
//	// JSON: {"frame_interval": "11ms"} 或 {"frame_interval": 11111111}
type Duration time.Duration

// UnmarshalJSON 实现 json.Unmarshaler 接口
//
// 先按字符串经 time.ParseDuration 解析，失败再按纳秒数解析。
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		duration, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration string %q: %w", s, err)
		}
		*d = Duration(duration)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*d = Duration(n)
		return nil
	}

	return fmt.Errorf("duration must be a string (e.g., \"11ms\") or number (nanoseconds)")
}

// MarshalJSON 实现 json.Marshaler 接口
//
// 输出为人类可读的字符串格式
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Duration 返回底层的 time.Duration 值
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// String 返回字符串表示
func (d Duration) String() string {
	return time.Duration(d).String()
}
