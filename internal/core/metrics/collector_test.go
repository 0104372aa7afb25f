package metrics

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/lumenxr/go-lumenxr/internal/core/fields"
	"github.com/lumenxr/go-lumenxr/internal/core/input"
	"github.com/lumenxr/go-lumenxr/internal/core/scene"
	"github.com/lumenxr/go-lumenxr/internal/core/spatial"
	"github.com/lumenxr/go-lumenxr/pkg/types"
)

// ============================================================================
// 测试辅助
// ============================================================================

type testWorld struct {
	dir           *scene.Directory
	methodClient  *scene.Client
	handlerClient *scene.Client
	mgr           *input.Manager

	seq atomic.Uint64
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	dir := scene.NewDirectory()
	return &testWorld{
		dir:           dir,
		methodClient:  scene.NewClient(dir),
		handlerClient: scene.NewClient(dir),
		mgr:           input.NewManager(),
	}
}

func (w *testWorld) makeHandler(t *testing.T, at types.Vector3) *input.InputHandler {
	t.Helper()
	node, err := scene.NewNode(w.handlerClient, fmt.Sprintf("/input/handler/%d", w.seq.Add(1)))
	if err != nil {
		t.Fatalf("NewNode() failed: %v", err)
	}
	if _, err := spatial.AddTo(node, types.PoseAt(at)); err != nil {
		t.Fatalf("spatial.AddTo() failed: %v", err)
	}
	field, err := fields.AddSphereTo(node, 1)
	if err != nil {
		t.Fatalf("AddSphereTo() failed: %v", err)
	}
	h, err := input.AddHandlerTo(w.mgr, node, field)
	if err != nil {
		t.Fatalf("AddHandlerTo() failed: %v", err)
	}
	return h
}

func (w *testWorld) makeMethod(t *testing.T, at types.Vector3) *input.InputMethod {
	t.Helper()
	node, err := scene.NewNode(w.methodClient, fmt.Sprintf("/input/method/%d", w.seq.Add(1)))
	if err != nil {
		t.Fatalf("NewNode() failed: %v", err)
	}
	if _, err := spatial.AddTo(node, types.PoseAt(at)); err != nil {
		t.Fatalf("spatial.AddTo() failed: %v", err)
	}
	m, err := input.AddMethodTo(w.mgr, node, input.Pointer{}, types.NewDatamap(nil))
	if err != nil {
		t.Fatalf("AddMethodTo() failed: %v", err)
	}
	return m
}

// expectMetric 校验单个指标的当前值
func expectMetric(t *testing.T, reg *prometheus.Registry, name, help, kind string, value float64) {
	t.Helper()
	exposition := fmt.Sprintf("# HELP %s %s\n# TYPE %s %s\n%s %g\n",
		name, help, name, kind, name, value)
	if err := testutil.GatherAndCompare(reg, strings.NewReader(exposition), name); err != nil {
		t.Errorf("metric %s mismatch: %v", name, err)
	}
}

// ============================================================================
// 采集器测试
// ============================================================================

// TestCollector_LiveObjectGauges 验证即时数量指标直读注册表
func TestCollector_LiveObjectGauges(t *testing.T) {
	w := newTestWorld(t)
	reg := prometheus.NewRegistry()
	if _, err := NewCollector(reg, w.mgr, w.dir); err != nil {
		t.Fatalf("NewCollector() failed: %v", err)
	}

	w.makeMethod(t, types.Vector3{})
	h1 := w.makeHandler(t, types.Vector3{X: 2})
	w.makeHandler(t, types.Vector3{X: 5})

	expectMetric(t, reg, "lumenxr_input_methods", "当前存活的输入法数量", "gauge", 1)
	expectMetric(t, reg, "lumenxr_input_handlers", "当前存活的输入处理器数量", "gauge", 2)
	expectMetric(t, reg, "lumenxr_scene_clients", "当前在线的客户端数量", "gauge", 2)

	// 销毁即时反映
	h1.Node().Destroy()
	expectMetric(t, reg, "lumenxr_input_handlers", "当前存活的输入处理器数量", "gauge", 1)
}

// TestCollector_WiringCounters 验证配线/拆线累计计数
func TestCollector_WiringCounters(t *testing.T) {
	w := newTestWorld(t)
	reg := prometheus.NewRegistry()
	if _, err := NewCollector(reg, w.mgr, w.dir); err != nil {
		t.Fatalf("NewCollector() failed: %v", err)
	}

	w.makeMethod(t, types.Vector3{})
	h := w.makeHandler(t, types.Vector3{X: 2})
	w.makeHandler(t, types.Vector3{X: 5})

	expectMetric(t, reg, "lumenxr_input_wirings_total",
		"输入法与处理器的累计配线次数", "counter", 2)

	h.Node().Destroy()
	expectMetric(t, reg, "lumenxr_input_teardowns_total",
		"输入法与处理器的累计拆线次数", "counter", 1)
}

// TestCollector_ObserveFrame 验证帧观察回调喂入帧率计
func TestCollector_ObserveFrame(t *testing.T) {
	w := newTestWorld(t)
	reg := prometheus.NewRegistry()
	col, err := NewCollector(reg, w.mgr, w.dir)
	if err != nil {
		t.Fatalf("NewCollector() failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		col.ObserveFrame(5 * time.Millisecond)
	}

	if got := col.FrameMeter().Total(); got != 3 {
		t.Errorf("FrameMeter().Total() = %d, want 3", got)
	}
	if n, err := testutil.GatherAndCount(reg, "lumenxr_frame_duration_seconds"); err != nil || n != 1 {
		t.Errorf("GatherAndCount(frame_duration) = (%d, %v), want (1, nil)", n, err)
	}
}

// TestCollector_DuplicateRegistration 验证重复注册返回错误
func TestCollector_DuplicateRegistration(t *testing.T) {
	w := newTestWorld(t)
	reg := prometheus.NewRegistry()
	if _, err := NewCollector(reg, w.mgr, w.dir); err != nil {
		t.Fatalf("first NewCollector() failed: %v", err)
	}
	if _, err := NewCollector(reg, w.mgr, w.dir); err == nil {
		t.Error("second NewCollector() on same registry should fail")
	}
}
