package scene

import (
	"errors"
	"testing"

	"github.com/lumenxr/go-lumenxr/pkg/types"
)

// ============================================================================
// Client 测试
// ============================================================================

// TestClient_SendSignal 测试通知投递
func TestClient_SendSignal(t *testing.T) {
	dir := NewDirectory()
	client := NewClient(dir)

	if err := client.SendSignal("/n", "create_handler", "payload"); err != nil {
		t.Fatalf("SendSignal() failed: %v", err)
	}

	select {
	case sig := <-client.Signals():
		if sig.Name != "create_handler" || sig.NodePath != "/n" {
			t.Errorf("Signals() = %+v", sig)
		}
	default:
		t.Fatal("Signals() empty after SendSignal")
	}
}

// TestClient_SendSignalDisconnected 测试断开后投递失败
func TestClient_SendSignalDisconnected(t *testing.T) {
	dir := NewDirectory()
	client := NewClient(dir)
	client.Disconnect()

	err := client.SendSignal("/n", "create_handler", nil)
	if !errors.Is(err, types.ErrClientGone) {
		t.Errorf("SendSignal() after disconnect = %v, want ErrClientGone", err)
	}
}

// TestClient_SendSignalOverflow 测试队列满时丢弃不阻塞
func TestClient_SendSignalOverflow(t *testing.T) {
	dir := NewDirectory()
	client := NewClient(dir)

	for i := 0; i < defaultSignalBuffer+10; i++ {
		if err := client.SendSignal("/n", "tick", i); err != nil {
			t.Fatalf("SendSignal() #%d failed: %v", i, err)
		}
	}

	if got := client.DroppedSignals(); got != 10 {
		t.Errorf("DroppedSignals() = %d, want 10", got)
	}
}

// TestClient_ResolveCache 测试路径解析缓存失效
func TestClient_ResolveCache(t *testing.T) {
	dir := NewDirectory()
	client := NewClient(dir)
	n, _ := NewNode(client, "/test/a")

	// 预热缓存
	if _, ok := client.Resolve("/test/a"); !ok {
		t.Fatal("Resolve() miss on mounted path")
	}

	n.Destroy()

	if _, ok := client.Resolve("/test/a"); ok {
		t.Error("Resolve() after Destroy still hits cache")
	}

	// 同路径重新挂载解析到新节点
	n2, err := NewNode(client, "/test/a")
	if err != nil {
		t.Fatalf("NewNode() remount failed: %v", err)
	}
	got, ok := client.Resolve("/test/a")
	if !ok || got != n2 {
		t.Error("Resolve() after remount did not return new node")
	}
}

// TestClient_DisconnectIdempotent 测试断开幂等
func TestClient_DisconnectIdempotent(t *testing.T) {
	dir := NewDirectory()
	client := NewClient(dir)

	client.Disconnect()
	client.Disconnect()

	if client.Connected() {
		t.Error("Connected() after Disconnect = true")
	}
}
