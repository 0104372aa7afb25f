// Package input 实现输入法/处理器的匹配与捕获协议
//
// 这是本仓库的核心子系统：一侧是输入法（InputMethod，指针、
// 手等产生输入的设备源），一侧是处理器（InputHandler，由距离
// 场界定的输入接收区域），两侧分属不同客户端。包内实现：
//
//   - 进程级弱追踪注册表（经 Manager 注入，便于测试）
//   - 创建时对称配线：为每对 (输入法, 处理器) 建立双向别名
//     并записи入各自的生命联动映射
//   - 排序（CompareDistance，捕获减半偏置）与手动顺序覆盖
//   - 捕获协议（幂等、累加、需每个评估周期重新声明）
//   - 远程可调用操作面（SetInput/SetDatamap/SetHandlerOrder/Capture）
//   - 处理器创建/销毁的尽力而为通知
//
// # 配对状态机
//
//	未配线 ──双方都存在──▶ 已配线 ──capture──▶ 捕获中
//
// 任一端销毁时双向别名随生命联动映射条目一并拆除，无独立
// 拆线状态。创建序交错时，较晚创建的一方在自己的创建路径里
// 补齐配线，任何配对都不会被永久遗漏。
//
// # 架构定位
//
// Tier: Core Layer Level 3
//
// 依赖关系：
//   - 依赖：registry, scene, alias, spatial, fields
//   - 被依赖：dispatch, metrics
//
// # 并发安全
//
// 每个可变字段独立持锁（enabled、payload、datamap、captures、
// 顺序覆盖、别名映射）。除配线算法短暂持有对端生命联动映射
// 锁外，任何操作同时至多持有一把对象锁。
package input
