// Package types 定义 LumenXR 的基础类型
//
// 本文件定义输入设备附加数据（Datamap）。
package types

import "encoding/json"

// ============================================================================
//                              Datamap
// ============================================================================

// Datamap 输入法附带的键值数据块
//
// 承载设备自定义状态（按键、捏合强度、滚轮增量等），本核心不
// 解释其内容，只做整体替换与透传。替换语义为「整块换新」，
// 不做增量合并。
//
// Datamap 为值语义：通过 NewDatamap 构造后内部表不再被外部
// 持有，读取方使用 Get/Keys，不暴露内部 map。
type Datamap struct {
	entries map[string]any
}

// NewDatamap 构造 Datamap
//
// 复制传入的键值表，构造后与原表脱离。传入 nil 等价于空表。
func NewDatamap(entries map[string]any) Datamap {
	m := make(map[string]any, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return Datamap{entries: m}
}

// Get 读取指定键
func (d Datamap) Get(key string) (any, bool) {
	v, ok := d.entries[key]
	return v, ok
}

// Keys 返回全部键的快照
func (d Datamap) Keys() []string {
	keys := make([]string, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, k)
	}
	return keys
}

// Len 返回键数量
func (d Datamap) Len() int {
	return len(d.entries)
}

// MarshalJSON 实现 json.Marshaler
//
// 序列化为普通 JSON 对象，供事件投递透传。
func (d Datamap) MarshalJSON() ([]byte, error) {
	if d.entries == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d.entries)
}
