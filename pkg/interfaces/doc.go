// Package interfaces 定义 LumenXR 公共接口
//
// 本包汇集跨模块协作契约，不含任何实现：
//
//   - Aspect / Living：节点能力与存活性契约
//   - Field：距离场能力契约
//   - InputData：输入数据变体契约（指针/手/笔尖）
//   - SignalSender：服务端到客户端单向通知契约
//
// # 架构定位
//
// Tier: Foundation Layer Level 0（仅依赖 pkg/types）
//
// 依赖关系：
//   - 依赖：pkg/types
//   - 被依赖：全部 internal/core 模块
package interfaces
