// Package input 实现输入法/处理器的匹配与捕获协议
//
// 本文件提供测试辅助对象。
package input

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/lumenxr/go-lumenxr/internal/core/fields"
	"github.com/lumenxr/go-lumenxr/internal/core/scene"
	"github.com/lumenxr/go-lumenxr/internal/core/spatial"
	"github.com/lumenxr/go-lumenxr/pkg/types"
)

// testWorld 测试场景：两个客户端与一套注册表
type testWorld struct {
	dir           *scene.Directory
	methodClient  *scene.Client
	handlerClient *scene.Client
	mgr           *Manager

	seq atomic.Uint64
}

// newTestWorld 构造测试场景
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	dir := scene.NewDirectory()
	return &testWorld{
		dir:           dir,
		methodClient:  scene.NewClient(dir),
		handlerClient: scene.NewClient(dir),
		mgr:           NewManager(),
	}
}

// makeHandler 创建带球场的处理器
func (w *testWorld) makeHandler(t *testing.T, at types.Vector3, radius float32) *InputHandler {
	t.Helper()
	node, err := scene.NewNode(w.handlerClient, fmt.Sprintf("/input/handler/%d", w.seq.Add(1)))
	if err != nil {
		t.Fatalf("NewNode() failed: %v", err)
	}
	if _, err := spatial.AddTo(node, types.PoseAt(at)); err != nil {
		t.Fatalf("spatial.AddTo() failed: %v", err)
	}
	field, err := fields.AddSphereTo(node, radius)
	if err != nil {
		t.Fatalf("AddSphereTo() failed: %v", err)
	}
	h, err := AddHandlerTo(w.mgr, node, field)
	if err != nil {
		t.Fatalf("AddHandlerTo() failed: %v", err)
	}
	return h
}

// makeMethod 创建指针输入法
func (w *testWorld) makeMethod(t *testing.T, at types.Vector3) *InputMethod {
	t.Helper()
	node, err := scene.NewNode(w.methodClient, fmt.Sprintf("/input/method/%d", w.seq.Add(1)))
	if err != nil {
		t.Fatalf("NewNode() failed: %v", err)
	}
	if _, err := spatial.AddTo(node, types.PoseAt(at)); err != nil {
		t.Fatalf("spatial.AddTo() failed: %v", err)
	}
	m, err := AddMethodTo(w.mgr, node, Pointer{}, types.NewDatamap(nil))
	if err != nil {
		t.Fatalf("AddMethodTo() failed: %v", err)
	}
	return m
}

// drainSignals 清空客户端通知队列并返回事件名序列
func drainSignals(c *scene.Client) []scene.Signal {
	var out []scene.Signal
	for {
		select {
		case sig := <-c.Signals():
			out = append(out, sig)
		default:
			return out
		}
	}
}
