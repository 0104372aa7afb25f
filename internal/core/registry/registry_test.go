package registry

import "testing"

// ============================================================================
// 基础功能测试
// ============================================================================

// TestRegistry_AddRemove 测试注册与注销
func TestRegistry_AddRemove(t *testing.T) {
	reg := New[*testElement]()
	e := newTestElement("a")

	h := reg.Add(e)
	if got := reg.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}

	reg.Remove(h)
	if got := reg.Len(); got != 0 {
		t.Errorf("Len() after Remove = %d, want 0", got)
	}
}

// TestRegistry_AddIdempotent 测试重复注册幂等
func TestRegistry_AddIdempotent(t *testing.T) {
	reg := New[*testElement]()
	e := newTestElement("a")

	h1 := reg.Add(e)
	h2 := reg.Add(e)

	if h1 != h2 {
		t.Errorf("Add() twice returned different handles: %d, %d", h1, h2)
	}
	if got := reg.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

// TestRegistry_RemoveUnknownHandle 测试未知句柄注销为空操作
func TestRegistry_RemoveUnknownHandle(t *testing.T) {
	reg := New[*testElement]()
	reg.Add(newTestElement("a"))

	reg.Remove(Handle(9999))

	if got := reg.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

// TestRegistry_GetValidContents 测试快照过滤已销毁实例
func TestRegistry_GetValidContents(t *testing.T) {
	reg := New[*testElement]()
	a := newTestElement("a")
	b := newTestElement("b")
	reg.Add(a)
	reg.Add(b)

	b.destroy()

	contents := reg.GetValidContents()
	if len(contents) != 1 {
		t.Fatalf("GetValidContents() = %d entries, want 1", len(contents))
	}
	if contents[0] != a {
		t.Errorf("GetValidContents()[0] = %v, want a", contents[0].name)
	}
}

// TestRegistry_Contains 测试成员判定
func TestRegistry_Contains(t *testing.T) {
	reg := New[*testElement]()
	a := newTestElement("a")
	b := newTestElement("b")
	reg.Add(a)

	if !reg.Contains(a) {
		t.Error("Contains(a) = false, want true")
	}
	if reg.Contains(b) {
		t.Error("Contains(b) = true, want false")
	}

	// 实例销毁后成员判定退化为 false
	a.destroy()
	if reg.Contains(a) {
		t.Error("Contains(destroyed a) = true, want false")
	}
}

// TestRegistry_Clear 测试整体清空
func TestRegistry_Clear(t *testing.T) {
	reg := New[*testElement]()
	a := newTestElement("a")
	reg.Add(a)
	reg.Add(newTestElement("b"))

	reg.Clear()

	if got := reg.Len(); got != 0 {
		t.Errorf("Len() after Clear = %d, want 0", got)
	}
	if reg.Contains(a) {
		t.Error("Contains(a) after Clear = true, want false")
	}
}

// TestRegistry_RemoveValue 测试按实例注销
func TestRegistry_RemoveValue(t *testing.T) {
	reg := New[*testElement]()
	a := newTestElement("a")
	reg.Add(a)

	reg.RemoveValue(a)
	if got := reg.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}

	// 不在表中的实例为空操作
	reg.RemoveValue(newTestElement("b"))
}

// TestRegistry_SnapshotInsertionOrder 测试快照按注册先后排序
func TestRegistry_SnapshotInsertionOrder(t *testing.T) {
	reg := New[*testElement]()
	a := newTestElement("a")
	b := newTestElement("b")
	c := newTestElement("c")
	reg.Add(a)
	hb := reg.Add(b)
	reg.Add(c)

	want := []*testElement{a, b, c}
	for i, v := range reg.GetValidContents() {
		if v != want[i] {
			t.Fatalf("GetValidContents()[%d] = %s, want %s", i, v.name, want[i].name)
		}
	}

	// 摘除后重新注册排到末尾（句柄单调，不复用）
	reg.Remove(hb)
	reg.Add(b)
	want = []*testElement{a, c, b}
	for i, v := range reg.GetValidContents() {
		if v != want[i] {
			t.Fatalf("after re-add: GetValidContents()[%d] = %s, want %s", i, v.name, want[i].name)
		}
	}
}
