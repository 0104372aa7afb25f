// Package fields 实现距离场能力
//
// 距离场描述输入接收区域的几何范围。本核心只依赖有符号距离
// 这一个契约；这里提供球与盒两种最小实现，复杂几何属外部
// 协作者。
//
// # 架构定位
//
// Tier: Core Layer Level 2
//
// 依赖关系：
//   - 依赖：pkg/types, scene, spatial
//   - 被依赖：input
package fields

import (
	"github.com/lumenxr/go-lumenxr/internal/core/scene"
	pkgif "github.com/lumenxr/go-lumenxr/pkg/interfaces"
	"github.com/lumenxr/go-lumenxr/pkg/types"
)

// AspectName 距离场能力名
const AspectName = "field"

// OpDistance 距离查询的远程操作名
const OpDistance = "distance"

// AliasInfo 距离场别名的固定共享白名单
//
// 输入法侧的嵌套场别名一律使用本白名单。
var AliasInfo = types.AliasInfo{
	ServerMethods: []string{OpDistance},
}

// Field 距离场能力契约（含节点访问）
//
// 在公共 Field 契约之上补充所属节点访问，供配线算法创建
// 嵌套场别名。
type Field interface {
	pkgif.Field

	// Node 返回所属节点
	Node() *scene.Node
}

// Of 查找节点的距离场能力
func Of(node *scene.Node) (Field, error) {
	return scene.AspectOf[Field](node, AspectName)
}
