// Package input 实现输入法/处理器的匹配与捕获协议
//
// 本文件定义处理器顺序的带标签变体。
package input

// OrderMode 排序模式标签
type OrderMode int

const (
	// OrderAutomatic 自动排序：按 CompareDistance 升序
	OrderAutomatic OrderMode = iota
	// OrderManual 手动覆盖：按客户端给定顺序
	OrderManual
)

// handlerOrder 处理器顺序状态
//
// 带标签变体 {Automatic, Manual(列表)}：回退自动排序是一次
// 标签切换而非空值判定。manual 中为非占有引用，消费时按
// 存活性过滤。
type handlerOrder struct {
	mode   OrderMode
	manual []*InputHandler
}

// automaticOrder 自动排序状态
func automaticOrder() handlerOrder {
	return handlerOrder{mode: OrderAutomatic}
}

// manualOrder 手动覆盖状态
func manualOrder(handlers []*InputHandler) handlerOrder {
	return handlerOrder{mode: OrderManual, manual: handlers}
}
