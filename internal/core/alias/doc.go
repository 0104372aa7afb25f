// Package alias 实现能力域限定的节点别名
//
// 别名把客户端 A 所有的节点桥接进客户端 B 的命名空间，只暴露
// 显式白名单内的远程可调用操作与服务端事件，其余一概不可见。
// 这是一道按字段执行的安全边界，不只是数据结构。
//
// 别名本身没有独立生命周期逻辑：它的存在完全由持有它的
// 生命联动映射条目支配；任一端（持有方条目、目标节点）先行
// 死亡，别名即不可达并在下次查找时被惰性清理。
//
// # 构造失败语义
//
// 以下情况构造失败，调用方必须容忍为局部空操作，不得向上
// 传播为致命错误（对端自身的销毁路径会独立完成清理）：
//   - 请求方客户端连接已断开
//   - 目标节点没有可解析的所属客户端
//   - 挂载路径冲突
//
// # 架构定位
//
// Tier: Core Layer Level 2
//
// 依赖关系：
//   - 依赖：pkg/types, scene
//   - 被依赖：input
package alias
