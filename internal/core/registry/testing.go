// Package registry 实现弱追踪注册表与生命联动映射
//
// 本文件提供测试辅助对象。
package registry

import "sync/atomic"

// testElement 测试用可判活元素
type testElement struct {
	name  string
	alive atomic.Bool
}

// newTestElement 创建存活状态的测试元素
func newTestElement(name string) *testElement {
	e := &testElement{name: name}
	e.alive.Store(true)
	return e
}

// Alive 返回元素是否存活
func (e *testElement) Alive() bool {
	return e.alive.Load()
}

// destroy 模拟对象销毁
func (e *testElement) destroy() {
	e.alive.Store(false)
}
