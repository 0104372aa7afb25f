// Package dispatch 实现输入帧调度循环
//
// 循环按固定频率（默认 90Hz）驱动输入评估：对每个启用的输入
// 法解析处理器传播顺序，向顺序内的处理器投递输入帧事件，并在
// 周期末清空该输入法的捕获集合（捕获需每周期重新声明）。
//
// # 快速开始
//
//	loop := dispatch.NewLoop(mgr)
//	if err := loop.Start(ctx); err != nil { ... }
//	defer loop.Close()
//
// 测试中可注入模拟时钟：
//
//	mock := clock.NewMock()
//	loop := dispatch.NewLoop(mgr, dispatch.WithClock(mock))
//
// # 架构定位
//
// 本包只读取输入注册表的时点快照，不持有任何输入法/处理器的
// 占有引用；对端不可达（别名未配线、客户端已断开）时该投递
// 静默跳过。
//
// # 并发安全
//
// Loop 的 Start/Stop/Close 可被多 goroutine 调用；帧评估在单
// 一循环 goroutine 内串行执行。
package dispatch
