// Package input 实现输入法/处理器的匹配与捕获协议
//
// 本文件定义输入法节点的远程可调用操作面。外层分发框架负责
// 反序列化与按客户端路由；到达这里的调用已定位到节点，每个
// 操作先校验节点确实附有对应能力。
package input

import (
	"fmt"

	"github.com/lumenxr/go-lumenxr/internal/core/scene"
	pkgif "github.com/lumenxr/go-lumenxr/pkg/interfaces"
	"github.com/lumenxr/go-lumenxr/pkg/types"
)

// 远程操作名
const (
	OpSetInput        = "set_input"
	OpSetDatamap      = "set_datamap"
	OpSetHandlerOrder = "set_handler_order"
	OpCapture         = "capture"
)

// SetInput 整体替换输入数据
//
// 节点缺少输入法能力时拒绝；变体与创建时不一致时拒绝
// （types.ErrInputTypeChanged，见包文档）。
func SetInput(node *scene.Node, _ *scene.Client, data pkgif.InputData) error {
	m, err := MethodOf(node)
	if err != nil {
		return err
	}
	return m.SetData(data)
}

// SetDatamap 整体替换附加数据
func SetDatamap(node *scene.Node, _ *scene.Client, datamap types.Datamap) error {
	m, err := MethodOf(node)
	if err != nil {
		return err
	}
	m.SetDatamapValue(datamap)
	return nil
}

// SetHandlerOrder 设置或清除处理器顺序覆盖
//
// handlers 中不带处理器能力的节点静默过滤，不拒绝整个调用；
// 空列表回退自动排序。
func SetHandlerOrder(node *scene.Node, _ *scene.Client, handlers []*scene.Node) error {
	m, err := MethodOf(node)
	if err != nil {
		return err
	}

	resolved := make([]*InputHandler, 0, len(handlers))
	for _, hn := range handlers {
		if hn == nil {
			continue
		}
		h, err := HandlerOf(hn)
		if err != nil {
			continue
		}
		resolved = append(resolved, h)
	}
	m.SetOrder(resolved)
	return nil
}

// Capture 记录处理器对输入法的捕获声明
//
// handlerNode 缺少处理器能力时拒绝；否则幂等加入 captures
// 集合。
func Capture(node *scene.Node, _ *scene.Client, handlerNode *scene.Node) error {
	m, err := MethodOf(node)
	if err != nil {
		return err
	}
	if handlerNode == nil {
		return fmt.Errorf("%w: %s", types.ErrAspectNotFound, HandlerAspectName)
	}
	h, err := HandlerOf(handlerNode)
	if err != nil {
		return err
	}

	m.Capture(h)
	return nil
}
