package registry

import (
	"fmt"
	"sync"
	"testing"
)

// ============================================================================
// 并发测试
// ============================================================================

// TestConcurrent_AddRemoveWhileSnapshot 测试快照与并发增删不冲突
//
// 一个线程持续读取快照，多个线程并发注册/注销，快照结果只能
// 是某个时点的完整集合，不会出现半写条目或崩溃。
func TestConcurrent_AddRemoveWhileSnapshot(t *testing.T) {
	reg := New[*testElement]()

	const writers = 8
	const perWriter = 200

	done := make(chan struct{})
	var readerWG sync.WaitGroup
	var wg sync.WaitGroup

	// 快照读取线程
	readerWG.Add(1)
	go func() {
		defer readerWG.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			for _, e := range reg.GetValidContents() {
				if e == nil {
					t.Error("snapshot yielded nil entry")
					return
				}
			}
		}
	}()

	// 并发写入线程
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				e := newTestElement(fmt.Sprintf("w%d-%d", id, j))
				h := reg.Add(e)
				e.destroy()
				reg.Remove(h)
			}
		}(i)
	}

	// 写入线程结束后停止快照线程
	wg.Wait()
	close(done)
	readerWG.Wait()

	if got := reg.Len(); got != 0 {
		t.Errorf("Len() after all removals = %d, want 0", got)
	}
}

// TestConcurrent_SnapshotConsistency 测试并发注册期间快照前后一致
//
// 注册 H3 的同时迭代快照，结果必须是注册前或注册后的集合。
func TestConcurrent_SnapshotConsistency(t *testing.T) {
	reg := New[*testElement]()
	h1 := newTestElement("h1")
	h2 := newTestElement("h2")
	reg.Add(h1)
	reg.Add(h2)

	const rounds = 500
	var wg sync.WaitGroup
	wg.Add(2)

	h3 := newTestElement("h3")

	go func() {
		defer wg.Done()
		reg.Add(h3)
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			n := len(reg.GetValidContents())
			if n != 2 && n != 3 {
				t.Errorf("snapshot size = %d, want 2 or 3", n)
				return
			}
		}
	}()

	wg.Wait()

	if n := len(reg.GetValidContents()); n != 3 {
		t.Errorf("final snapshot size = %d, want 3", n)
	}
}

// TestConcurrent_LifeLinkedMap 测试生命联动映射并发增删查
func TestConcurrent_LifeLinkedMap(t *testing.T) {
	m := NewLifeLinkedMap[int, *testElement]()

	const goroutines = 8
	const perGoroutine = 200

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				key := id*perGoroutine + j
				m.Add(key, newTestElement("e"))
				m.Get(key)
				m.Remove(key)
			}
		}(i)
	}
	wg.Wait()

	if got := m.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}
