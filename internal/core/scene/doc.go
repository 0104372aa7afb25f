// Package scene 实现场景图粘合层
//
// 提供本核心消费的最小节点/客户端框架：
//   - Node：可寻址服务端对象，挂载于所属客户端命名空间，
//     承载零或多个能力对象（Aspect）
//   - Client：客户端连接的服务端投影，含存活标志、路径命名
//     空间与尽力而为的单向通知队列
//   - Directory：进程级客户端目录，节点到所属客户端的
//     非占有回指经由目录按标识升级
//
// 完整的节点/能力分发框架（远程调用反序列化与路由）不在
// 本核心范围内，这里只实现别名与输入路由所依赖的窄接口。
//
// # 快速开始
//
//	dir := scene.NewDirectory()
//	client := scene.NewClient(dir)
//
//	node, _ := scene.NewNode(client, "/input/method/m0")
//	node.AddAspect(someAspect)
//
//	sp, err := scene.AspectOf[*spatial.Spatial](node)
//
//	node.Destroy() // 确定性销毁，级联能力対象善后
//
// # 架构定位
//
// Tier: Core Layer Level 1
//
// 依赖关系：
//   - 依赖：pkg/types, pkg/interfaces
//   - 被依赖：alias, spatial, fields, input
//
// # 并发安全
//
// 每个可变字段独立持锁：能力表、命名空间、通知队列互不阻塞。
// 同一节点不同字段可被不同客户端线程并发修改。
package scene
