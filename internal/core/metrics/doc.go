// Package metrics 提供输入子系统的指标采集
//
// 基于 Prometheus 客户端库暴露运行指标：
//   - 即时数量（GaugeFunc 抓取时直读注册表）：存活输入法、
//     处理器、客户端
//   - 累计计数（CounterFunc 直读原子计数器）：配线、拆线、
//     事件丢弃
//   - 帧评估耗时直方图与有效帧率（由帧调度经观察回调喂入）
//
// # 快速开始
//
//	reg := prometheus.NewRegistry()
//	col, err := metrics.NewCollector(reg, mgr, dir)
//	if err != nil { ... }
//
//	loop := dispatch.NewLoop(mgr,
//	    dispatch.WithFrameObserver(col.ObserveFrame))
//
// # 架构定位
//
// 本模块只读：所有即时指标在抓取时对注册表取时点快照，不持有
// 任何输入对象的占有引用，也不参与任何协议路径。
//
// # 并发安全
//
// Collector 的全部方法并发安全：GaugeFunc/CounterFunc 读取的
// 计数自带锁或为原子量，FrameMeter 内部持锁。
package metrics
