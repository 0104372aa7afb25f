package lumenxr

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lumenxr/go-lumenxr/internal/core/fields"
	"github.com/lumenxr/go-lumenxr/internal/core/input"
	"github.com/lumenxr/go-lumenxr/internal/core/scene"
	"github.com/lumenxr/go-lumenxr/internal/core/spatial"
	"github.com/lumenxr/go-lumenxr/pkg/types"
)

// ============================================================================
// 门面测试
// ============================================================================

// TestServer_LifecycleMinimal 验证最小配置下的生命周期状态机
func TestServer_LifecycleMinimal(t *testing.T) {
	srv, err := New(WithPreset("minimal"))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// 最小预设关闭帧调度与指标
	if srv.Loop() != nil {
		t.Error("minimal preset should not build a dispatch loop")
	}
	if srv.MetricsRegistry() != nil {
		t.Error("minimal preset should not build a metrics registry")
	}
	if srv.InputManager() == nil || srv.Directory() == nil {
		t.Fatal("core components missing after New()")
	}

	ctx := context.Background()
	if err := srv.Start(ctx); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if err := srv.Start(ctx); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start() = %v, want ErrAlreadyStarted", err)
	}

	c := srv.NewClient()
	if !c.Connected() {
		t.Error("NewClient() returned a disconnected client")
	}

	if err := srv.Stop(ctx); err != nil {
		t.Fatalf("Stop() failed: %v", err)
	}
	if err := srv.Stop(ctx); !errors.Is(err, ErrNotStarted) {
		t.Errorf("second Stop() = %v, want ErrNotStarted", err)
	}

	if err := srv.Close(ctx); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := srv.Start(ctx); !errors.Is(err, ErrServerClosed) {
		t.Errorf("Start() after Close() = %v, want ErrServerClosed", err)
	}
	if err := srv.Close(ctx); err != nil {
		t.Errorf("idempotent Close() = %v, want nil", err)
	}

	// Close 断开全部客户端
	if c.Connected() {
		t.Error("client still connected after Close()")
	}
}

// TestServer_FullStackInputFlow 验证完整配置下的端到端输入流
func TestServer_FullStackInputFlow(t *testing.T) {
	srv, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if srv.Loop() == nil {
		t.Fatal("default config should build a dispatch loop")
	}
	if srv.MetricsRegistry() == nil {
		t.Fatal("default config should build a metrics registry")
	}

	ctx := context.Background()
	if err := srv.Start(ctx); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	defer srv.Close(ctx)

	handlerClient := srv.NewClient()
	hNode, err := scene.NewNode(handlerClient, "/input/handler/demo")
	if err != nil {
		t.Fatalf("NewNode() failed: %v", err)
	}
	if _, err := spatial.AddTo(hNode, types.IdentityPose); err != nil {
		t.Fatalf("spatial.AddTo() failed: %v", err)
	}
	field, err := fields.AddSphereTo(hNode, 1)
	if err != nil {
		t.Fatalf("AddSphereTo() failed: %v", err)
	}
	if _, err := input.AddHandlerTo(srv.InputManager(), hNode, field); err != nil {
		t.Fatalf("AddHandlerTo() failed: %v", err)
	}

	methodClient := srv.NewClient()
	mNode, err := scene.NewNode(methodClient, "/input/pointer")
	if err != nil {
		t.Fatalf("NewNode() failed: %v", err)
	}
	if _, err := spatial.AddTo(mNode, types.PoseAt(types.Vector3{X: 3})); err != nil {
		t.Fatalf("spatial.AddTo() failed: %v", err)
	}
	m, err := input.AddMethodTo(srv.InputManager(), mNode, input.Pointer{}, types.NewDatamap(nil))
	if err != nil {
		t.Fatalf("AddMethodTo() failed: %v", err)
	}

	if got := len(m.TargetOrder()); got != 1 {
		t.Errorf("TargetOrder() size = %d, want 1", got)
	}

	// 调度循环按真实时钟运行，等到至少一帧投递
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && srv.Loop().Frames() == 0 {
		time.Sleep(5 * time.Millisecond)
	}
	if srv.Loop().Frames() == 0 {
		t.Error("dispatch loop did not evaluate any frame")
	}
}

// TestNew_OptionOrdering 验证预设与覆盖的先后语义
func TestNew_OptionOrdering(t *testing.T) {
	srv, err := New(WithPreset("headset"), WithFrameRate(60), WithDispatch(false), WithMetrics(false))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if got := srv.Config().Input.FrameRate; got != 60 {
		t.Errorf("FrameRate = %d, want the later option to win (60)", got)
	}
	// 头显预设的其余字段保留
	if got := srv.Config().Scene.SignalBuffer; got != 256 {
		t.Errorf("SignalBuffer = %d, want 256 from headset preset", got)
	}
}

// TestNew_RejectsInvalid 验证非法配置与预设被拒绝
func TestNew_RejectsInvalid(t *testing.T) {
	if _, err := New(WithFrameRate(-5)); err == nil {
		t.Error("New() with negative frame rate should fail")
	}
	if _, err := New(WithPreset("server")); err == nil {
		t.Error("New() with unknown preset should fail")
	}
	if _, err := New(WithConfigFile("/nonexistent/lumenxr.json")); err == nil {
		t.Error("New() with missing config file should fail")
	}
	if _, err := New(WithConfig(nil)); err == nil {
		t.Error("New() with nil config should fail")
	}
}
