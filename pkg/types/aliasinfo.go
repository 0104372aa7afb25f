// Package types 定义 LumenXR 的基础类型
//
// 本文件定义别名操作白名单。
package types

import "slices"

// ============================================================================
//                              AliasInfo
// ============================================================================

// AliasInfo 别名的操作白名单
//
// 别名只对目标节点暴露白名单内的远程可调用操作与服务端事件，
// 白名单之外的一切对别名持有方不可见。AliasInfo 为纯值类型，
// 构造后不再修改。
type AliasInfo struct {
	// ServerSignals 允许经由别名发出的服务端单向事件名
	ServerSignals []string `json:"server_signals"`

	// ServerMethods 允许经由别名调用的远程操作名
	ServerMethods []string `json:"server_methods"`
}

// AllowsSignal 判断事件名是否在白名单内
func (a AliasInfo) AllowsSignal(name string) bool {
	return slices.Contains(a.ServerSignals, name)
}

// AllowsMethod 判断操作名是否在白名单内
func (a AliasInfo) AllowsMethod(name string) bool {
	return slices.Contains(a.ServerMethods, name)
}

// Clone 返回深拷贝
//
// 白名单切片在多个别名间共享时，持有方各自克隆，互不影响。
func (a AliasInfo) Clone() AliasInfo {
	return AliasInfo{
		ServerSignals: slices.Clone(a.ServerSignals),
		ServerMethods: slices.Clone(a.ServerMethods),
	}
}
