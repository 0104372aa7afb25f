package registry

import "testing"

// ============================================================================
// LifeLinkedMap 测试
// ============================================================================

// TestLifeLinkedMap_AddGet 测试记录与查找
func TestLifeLinkedMap_AddGet(t *testing.T) {
	m := NewLifeLinkedMap[string, *testElement]()
	a := newTestElement("a")

	if _, replaced := m.Add("k", a); replaced {
		t.Error("Add() on empty key reported replacement")
	}

	got, ok := m.Get("k")
	if !ok || got != a {
		t.Errorf("Get(k) = %v, %v; want a, true", got, ok)
	}
}

// TestLifeLinkedMap_AddReplace 测试同键覆盖
func TestLifeLinkedMap_AddReplace(t *testing.T) {
	m := NewLifeLinkedMap[string, *testElement]()
	a := newTestElement("a")
	b := newTestElement("b")

	m.Add("k", a)
	old, replaced := m.Add("k", b)

	if !replaced || old != a {
		t.Errorf("Add() replacement = %v, %v; want a, true", old, replaced)
	}
	if got, _ := m.Get("k"); got != b {
		t.Errorf("Get(k) = %v, want b", got)
	}
}

// TestLifeLinkedMap_GetDead 测试被指对象死亡后查找返回空
func TestLifeLinkedMap_GetDead(t *testing.T) {
	m := NewLifeLinkedMap[string, *testElement]()
	a := newTestElement("a")
	m.Add("k", a)

	a.destroy()

	if _, ok := m.Get("k"); ok {
		t.Error("Get(k) after referent death = present, want absent")
	}
	// 惰性摘除后条目应消失
	if got := m.Len(); got != 0 {
		t.Errorf("Len() after lazy prune = %d, want 0", got)
	}
}

// TestLifeLinkedMap_Remove 测试摘除返回原值
func TestLifeLinkedMap_Remove(t *testing.T) {
	m := NewLifeLinkedMap[string, *testElement]()
	a := newTestElement("a")
	m.Add("k", a)

	got, ok := m.Remove("k")
	if !ok || got != a {
		t.Errorf("Remove(k) = %v, %v; want a, true", got, ok)
	}
	if _, ok := m.Remove("k"); ok {
		t.Error("Remove(k) twice = present, want absent")
	}
}

// TestLifeLinkedMap_Drain 测试整体清空
func TestLifeLinkedMap_Drain(t *testing.T) {
	m := NewLifeLinkedMap[int, *testElement]()
	m.Add(1, newTestElement("a"))
	m.Add(2, newTestElement("b"))

	drained := m.Drain()
	if len(drained) != 2 {
		t.Errorf("Drain() = %d entries, want 2", len(drained))
	}
	if got := m.Len(); got != 0 {
		t.Errorf("Len() after Drain = %d, want 0", got)
	}
}
