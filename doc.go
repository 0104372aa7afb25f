// Package lumenxr 提供多客户端空间显示服务端的输入核心
//
// LumenXR 是一个空间显示协议的服务端库，本仓库实现其输入子
// 系统：客户端把输入设备（指针、手、笔尖）注册为输入法，把
// 接收区域注册为处理器，服务端按帧完成两者的匹配、排序与
// 捕获仲裁，并经能力域限定的别名向各客户端暴露受限视图。
//
// # 核心概念
//
// LumenXR 围绕四个核心概念构建：
//
//   - Node: 客户端命名空间内的场景图对象，能力经 Aspect 附加
//   - Alias: 能力域限定的节点别名，跨客户端的受限视图
//   - InputMethod / InputHandler: 输入源与接收区域
//   - Loop: 帧调度循环，按固定频率驱动排序、投递与捕获清理
//
// # 快速开始
//
//	import "github.com/lumenxr/go-lumenxr"
//
//	// 1. 创建并启动服务端
//	srv, err := lumenxr.New(
//	    lumenxr.WithPreset("headset"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer srv.Close()
//
//	// 2. 接入客户端并注册输入对象
//	client := srv.NewClient()
//	node, _ := scene.NewNode(client, "/input/pointer")
//	spatial.AddTo(node, types.IdentityPose)
//	input.AddMethodTo(srv.InputManager(), node, input.Pointer{}, datamap)
//
// # API 层次结构
//
//   - 根包：Server 门面（组装、生命周期、配置）
//   - internal/core/*: 注册表、场景图、别名、空间、场、输入、
//     帧调度、指标各模块
//   - pkg/types、pkg/interfaces: 跨模块共享的基础类型与接口
package lumenxr
