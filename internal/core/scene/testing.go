// Package scene 实现场景图粘合层
//
// 本文件提供测试辅助对象。
package scene

// testAspect 测试用能力对象
type testAspect struct {
	name       string
	tornDown   bool
	onTeardown func()
}

// AspectName 返回能力种类名称
func (a *testAspect) AspectName() string {
	return a.name
}

// OnNodeDestroy 节点销毁回调
func (a *testAspect) OnNodeDestroy() {
	a.tornDown = true
	if a.onTeardown != nil {
		a.onTeardown()
	}
}
