package input

import (
	"fmt"
	"sync"
	"testing"

	"github.com/lumenxr/go-lumenxr/internal/core/fields"
	"github.com/lumenxr/go-lumenxr/internal/core/scene"
	"github.com/lumenxr/go-lumenxr/internal/core/spatial"
	"github.com/lumenxr/go-lumenxr/pkg/types"
)

// ============================================================================
// 并发安全测试
// ============================================================================

// spawnHandler 与 makeHandler 等价，但可在 goroutine 中调用
// （goroutine 内禁止 t.Fatalf）。
func (w *testWorld) spawnHandler(at types.Vector3, radius float32) (*InputHandler, error) {
	node, err := scene.NewNode(w.handlerClient, fmt.Sprintf("/input/handler/%d", w.seq.Add(1)))
	if err != nil {
		return nil, err
	}
	if _, err := spatial.AddTo(node, types.PoseAt(at)); err != nil {
		return nil, err
	}
	field, err := fields.AddSphereTo(node, radius)
	if err != nil {
		return nil, err
	}
	return AddHandlerTo(w.mgr, node, field)
}

// spawnMethod 与 makeMethod 等价，但可在 goroutine 中调用
func (w *testWorld) spawnMethod(at types.Vector3) (*InputMethod, error) {
	node, err := scene.NewNode(w.methodClient, fmt.Sprintf("/input/method/%d", w.seq.Add(1)))
	if err != nil {
		return nil, err
	}
	if _, err := spatial.AddTo(node, types.PoseAt(at)); err != nil {
		return nil, err
	}
	return AddMethodTo(w.mgr, node, Pointer{}, types.NewDatamap(nil))
}

// TestConcurrent_CreateDestroyStorm 验证并发创建/销毁风暴下无竞态
//
// 多个 goroutine 同时创建并销毁处理器与输入法，另一组 goroutine
// 持续读取排序快照。结束后注册表回到空态。
func TestConcurrent_CreateDestroyStorm(t *testing.T) {
	w := newTestWorld(t)

	const (
		writers = 4
		rounds  = 50
	)

	// 常驻输入法，为读者提供稳定排序入口
	pivot := w.makeMethod(t, types.Vector3{})

	var wg sync.WaitGroup
	done := make(chan struct{})

	// 读者：持续对快照排序与比距
	var readerWG sync.WaitGroup
	readerWG.Add(1)
	go func() {
		defer readerWG.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			for _, h := range pivot.TargetOrder() {
				pivot.CompareDistance(h)
			}
		}
	}()

	// 写者：交替创建/销毁两类对象
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				h, err := w.spawnHandler(types.Vector3{X: float32(id)}, 1)
				if err != nil {
					t.Errorf("spawnHandler() failed: %v", err)
					return
				}
				m, err := w.spawnMethod(types.Vector3{Y: float32(id)})
				if err != nil {
					t.Errorf("spawnMethod() failed: %v", err)
					return
				}
				pivot.Capture(h)
				m.node.Destroy()
				h.node.Destroy()
			}
		}(i)
	}

	wg.Wait()
	close(done)
	readerWG.Wait()

	// 风暴后只剩常驻输入法
	if got := w.mgr.NumMethods(); got != 1 {
		t.Errorf("NumMethods() = %d after storm, want 1", got)
	}
	if got := w.mgr.NumHandlers(); got != 0 {
		t.Errorf("NumHandlers() = %d after storm, want 0", got)
	}
	if got := len(pivot.TargetOrder()); got != 0 {
		t.Errorf("TargetOrder() has %d entries after storm, want 0", got)
	}
}

// TestConcurrent_SimultaneousPairCreation 验证并发创建不漏配线
//
// 输入法与处理器各自先入册再快照对侧，任一交错下至少有一方
// 能看到另一方并补齐配线，配对不会被永久遗漏。
func TestConcurrent_SimultaneousPairCreation(t *testing.T) {
	const rounds = 50

	for r := 0; r < rounds; r++ {
		w := newTestWorld(t)

		start := make(chan struct{})
		var (
			wg sync.WaitGroup
			h  *InputHandler
			m  *InputMethod
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-start
			var err error
			if h, err = w.spawnHandler(types.Vector3{}, 1); err != nil {
				t.Errorf("spawnHandler() failed: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			<-start
			var err error
			if m, err = w.spawnMethod(types.Vector3{X: 3}); err != nil {
				t.Errorf("spawnMethod() failed: %v", err)
			}
		}()
		close(start)
		wg.Wait()
		if t.Failed() {
			return
		}

		if !m.wired(h) {
			t.Fatalf("round %d: method side not wired to handler", r)
		}
		if _, ok := h.MethodAlias(m.Key()); !ok {
			t.Fatalf("round %d: handler side missing capture channel", r)
		}
		if order := m.TargetOrder(); len(order) != 1 || order[0] != h {
			t.Fatalf("round %d: TargetOrder() = %v, want exactly the handler", r, order)
		}
	}
}

// TestConcurrent_CaptureWhileRanking 验证捕获与排序可交错执行
func TestConcurrent_CaptureWhileRanking(t *testing.T) {
	w := newTestWorld(t)

	m := w.makeMethod(t, types.Vector3{})
	handlers := make([]*InputHandler, 8)
	for i := range handlers {
		handlers[i] = w.makeHandler(t, types.Vector3{X: float32(i + 2)}, 1)
	}

	var wg sync.WaitGroup
	for _, h := range handlers {
		wg.Add(1)
		go func(h *InputHandler) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				m.Capture(h)
				m.TargetOrder()
				m.ClearCaptures()
			}
		}(h)
	}
	wg.Wait()

	// 全部清捕后回到未偏置距离
	for i, h := range handlers {
		want := float32(i + 1) // |x| - r = (i+2) - 1
		approx(t, m.CompareDistance(h), want, "post-storm CompareDistance")
	}
}
