// Package types 定义 LumenXR 的基础类型
//
// 这是整个系统的最底层包，不依赖任何其他 lumenxr 内部包。
// 所有类型都是纯值类型，用于在各模块间传递数据：
//
//   - Uid / MethodKey：对象标识
//   - Vector3 / Quaternion / Pose：空间位姿
//   - Datamap：输入设备附加数据
//   - AliasInfo：别名操作白名单
//   - 公共错误定义
//
// # 架构定位
//
// Tier: Foundation Layer Level 0（无依赖）
//
// 依赖关系：
//   - 依赖：无（仅标准库与 google/uuid）
//   - 被依赖：pkg/interfaces 及全部 internal/core 模块
package types
