// Package dispatch 实现输入帧调度循环
package dispatch

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/errgroup"

	"github.com/lumenxr/go-lumenxr/internal/core/input"
	"github.com/lumenxr/go-lumenxr/pkg/lib/log"
	"github.com/lumenxr/go-lumenxr/pkg/types"
)

var logger = log.Logger("core/dispatch")

// SignalInput 输入帧事件名
//
// 每帧向传播顺序内的处理器所属客户端投递，路径为处理器节点。
const SignalInput = "input"

// DefaultFrameInterval 默认评估周期（90Hz）
const DefaultFrameInterval = time.Second / 90

// ============================================================================
//                              帧事件负载
// ============================================================================

// FrameEvent 输入帧事件负载
//
// MethodAlias 为该输入法在处理器命名空间内的捕获通道别名路径，
// 处理器经此路径回发 capture 事件。
type FrameEvent struct {
	MethodUid   types.Uid     `json:"method_uid"`
	MethodAlias string        `json:"method_alias,omitempty"`
	DataType    string        `json:"data_type"`
	Order       int           `json:"order"`
	Captured    bool          `json:"captured"`
	Datamap     types.Datamap `json:"datamap"`
}

// ============================================================================
//                              Loop 实现
// ============================================================================

// Loop 帧调度循环
//
// 生命周期：未启动 → 运行中 → 已停止 → 已关闭。Stop 后可再次
// Start；Close 后不可。
type Loop struct {
	mgr      *input.Manager
	clk      clock.Clock
	interval time.Duration
	observe  func(time.Duration)

	frames atomic.Uint64

	mu      sync.Mutex
	cancel  context.CancelFunc
	group   *errgroup.Group
	running bool
	closed  bool
}

// Option 循环配置项
type Option func(*Loop)

// WithClock 注入时钟（测试用模拟时钟）
func WithClock(clk clock.Clock) Option {
	return func(l *Loop) { l.clk = clk }
}

// WithInterval 设置评估周期
func WithInterval(interval time.Duration) Option {
	return func(l *Loop) {
		if interval > 0 {
			l.interval = interval
		}
	}
}

// WithFrameObserver 注册帧耗时观察回调（指标模块接入点）
func WithFrameObserver(fn func(time.Duration)) Option {
	return func(l *Loop) { l.observe = fn }
}

// NewLoop 创建帧调度循环
func NewLoop(mgr *input.Manager, opts ...Option) *Loop {
	l := &Loop{
		mgr:      mgr,
		clk:      clock.New(),
		interval: DefaultFrameInterval,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start 启动循环
//
// 已在运行返回 types.ErrLoopRunning，已关闭返回
// types.ErrLoopClosed。传入的 ctx 取消等价于 Stop。
func (l *Loop) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return types.ErrLoopClosed
	}
	if l.running {
		return types.ErrLoopRunning
	}

	runCtx, cancel := context.WithCancel(ctx)
	g, runCtx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return l.run(runCtx)
	})

	l.cancel = cancel
	l.group = g
	l.running = true

	logger.Info("dispatch loop started", "interval", l.interval.String())
	return nil
}

// Stop 停止循环并等待循环 goroutine 退出
//
// 未启动为空操作。
func (l *Loop) Stop() error {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return nil
	}
	cancel, g := l.cancel, l.group
	l.running = false
	l.cancel = nil
	l.group = nil
	l.mu.Unlock()

	cancel()
	err := g.Wait()

	logger.Info("dispatch loop stopped", "frames", l.frames.Load())
	return err
}

// Close 停止并关闭循环
//
// 关闭后不可再启动，幂等。
func (l *Loop) Close() error {
	err := l.Stop()

	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
	return err
}

// Frames 返回已评估的帧计数
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// run 循环体
func (l *Loop) run(ctx context.Context) error {
	ticker := l.clk.Ticker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			l.Frame()
		}
	}
}

// ============================================================================
//                              帧评估
// ============================================================================

// Frame 执行一次完整的评估周期
//
// 对每个启用的输入法：解析传播顺序、向顺序内处理器投递帧
// 事件（首次投递授予捕获通道）、周期末清空捕获集合。可在
// 循环之外直接调用（单步驱动）。
func (l *Loop) Frame() {
	start := l.clk.Now()

	for _, m := range l.mgr.Methods() {
		if !m.Enabled() {
			continue
		}
		l.dispatchMethod(m)
		// 粘性捕获每周期重新声明
		m.ClearCaptures()
	}

	l.frames.Add(1)
	if l.observe != nil {
		l.observe(l.clk.Since(start))
	}
}

// dispatchMethod 向单个输入法的传播顺序投递帧事件
func (l *Loop) dispatchMethod(m *input.InputMethod) {
	datamap := m.Datamap()
	dataType := string(m.Data().Type())

	for i, h := range m.TargetOrder() {
		// 对端进入传播顺序即视为「已授权」：启用捕获通道
		h.GrantCaptureChannel(m.Key())

		event := FrameEvent{
			MethodUid: m.Uid(),
			DataType:  dataType,
			Order:     i,
			Captured:  m.Captured(h),
			Datamap:   datamap,
		}
		if a, ok := h.MethodAlias(m.Key()); ok {
			event.MethodAlias = a.Path()
		}

		handlerClient, ok := h.Node().GetClient()
		if !ok {
			continue
		}
		// 尽力而为：客户端事件队列满则丢弃
		_ = handlerClient.SendSignal(h.Node().Path(), SignalInput, event)
	}
}
