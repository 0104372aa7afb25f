// Package registry 实现弱追踪注册表与生命联动映射
//
// 提供能力对象的两类基础集合：
//   - Registry：进程级弱追踪集合，记录某能力类型的全部存活实例，
//     支持任意客户端线程并发注册/注销，读取方获得时点快照
//   - LifeLinkedMap：键控强持有集合，条目寿命与持有方/被指方
//     生命周期联动，由生命周期钩子显式清理
//
// # 快速开始
//
//	reg := registry.New[*InputHandler]()
//
//	// 注册（构造时）
//	h := reg.Add(handler)
//
//	// 时点快照（静默跳过已销毁实例）
//	for _, hd := range reg.GetValidContents() {
//	    // ...
//	}
//
//	// 注销（销毁时）
//	reg.Remove(h)
//
// # 架构定位
//
// Tier: Core Layer Level 1（无内部依赖）
//
// 依赖关系：
//   - 依赖：pkg/interfaces
//   - 被依赖：scene, input, dispatch
//
// # 并发安全
//
// Registry 使用 sync.RWMutex 保护成员表：
//   - Add/Remove：写锁，摊销 O(1)
//   - GetValidContents：读锁下复制快照，O(n)，读取方看不到半写条目
//
// 快照在锁外过滤已销毁实例，与并发 Add/Remove 的交错结果
// 只会是「注册前集合」或「注册后集合」，不会出现部分条目。
package registry
