// Package scene 实现场景图粘合层
package scene

import (
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	pkgif "github.com/lumenxr/go-lumenxr/pkg/interfaces"
	"github.com/lumenxr/go-lumenxr/pkg/lib/log"
	"github.com/lumenxr/go-lumenxr/pkg/types"
)

var clientLogger = log.Logger("core/scene/client")

// defaultSignalBuffer 单向通知队列容量
//
// 队列满即丢弃：通知为尽力而为，客户端可能正在断开。
const defaultSignalBuffer = 64

// defaultResolveCacheSize 路径解析缓存容量
const defaultResolveCacheSize = 256

// 确保实现了接口
var _ pkgif.SignalSender = (*Client)(nil)

// ============================================================================
// Signal 定义
// ============================================================================

// Signal 一条待投递的服务端单向通知
type Signal struct {
	// NodePath 通知挂靠的节点路径
	NodePath string
	// Name 通知名（如 "create_handler"）
	Name string
	// Payload 通知负载
	Payload any
}

// ============================================================================
// Client 实现
// ============================================================================

// Client 客户端连接的服务端投影
//
// 持有独立命名空间（路径 → 节点）与单向通知队列。真正的
// 网络连接由外部传输层维护，本对象只暴露存活标志与通知
// 出口。
type Client struct {
	uid       types.Uid
	dir       *Directory
	connected atomic.Bool

	// 命名空间锁只保护路径表，与通知队列互不阻塞
	nsMu      sync.Mutex
	namespace map[string]*Node

	// 路径解析缓存，挂载/卸载时失效
	resolveCache *lru.Cache[string, *Node]

	signals        chan Signal
	droppedSignals atomic.Uint64
}

// ClientOption 客户端配置项
type ClientOption func(*clientOptions)

type clientOptions struct {
	signalBuffer     int
	resolveCacheSize int
}

// WithSignalBuffer 设置通知队列容量
func WithSignalBuffer(n int) ClientOption {
	return func(o *clientOptions) {
		if n > 0 {
			o.signalBuffer = n
		}
	}
}

// WithResolveCacheSize 设置路径解析缓存容量
func WithResolveCacheSize(n int) ClientOption {
	return func(o *clientOptions) {
		if n > 0 {
			o.resolveCacheSize = n
		}
	}
}

// NewClient 创建客户端投影并登记到目录
func NewClient(dir *Directory, opts ...ClientOption) *Client {
	o := clientOptions{
		signalBuffer:     defaultSignalBuffer,
		resolveCacheSize: defaultResolveCacheSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	cache, _ := lru.New[string, *Node](o.resolveCacheSize)
	c := &Client{
		uid:          types.NewUid(),
		dir:          dir,
		namespace:    make(map[string]*Node),
		resolveCache: cache,
		signals:      make(chan Signal, o.signalBuffer),
	}
	c.connected.Store(true)
	dir.add(c)
	return c
}

// Uid 返回客户端标识
func (c *Client) Uid() types.Uid {
	return c.uid
}

// Connected 返回连接是否仍然存活
func (c *Client) Connected() bool {
	return c.connected.Load()
}

// Disconnect 断开客户端
//
// 确定性销毁命名空间内全部节点（含级联的能力对象善后），
// 随后从目录摘除。幂等。
func (c *Client) Disconnect() {
	if !c.connected.CompareAndSwap(true, false) {
		return
	}

	c.nsMu.Lock()
	nodes := make([]*Node, 0, len(c.namespace))
	for _, n := range c.namespace {
		nodes = append(nodes, n)
	}
	clear(c.namespace)
	c.resolveCache.Purge()
	c.nsMu.Unlock()

	for _, n := range nodes {
		n.Destroy()
	}
	c.dir.remove(c.uid)

	clientLogger.Debug("client disconnected",
		"client", log.TruncateID(c.uid.String(), 8),
		"nodes", len(nodes))
}

// mount 将节点挂载到命名空间
//
// 路径冲突返回 types.ErrPathOccupied，调用方容忍为局部失败。
func (c *Client) mount(path string, n *Node) error {
	if path == "" || path[0] != '/' {
		return types.ErrInvalidPath
	}
	if !c.Connected() {
		return types.ErrClientGone
	}

	c.nsMu.Lock()
	defer c.nsMu.Unlock()

	if _, ok := c.namespace[path]; ok {
		return types.ErrPathOccupied
	}
	c.namespace[path] = n
	c.resolveCache.Remove(path)
	return nil
}

// unmount 从命名空间卸载节点
//
// 仅当该路径仍指向同一节点时卸载（别名销毁与后继挂载可能
// 交错）。
func (c *Client) unmount(path string, n *Node) {
	c.nsMu.Lock()
	defer c.nsMu.Unlock()

	if cur, ok := c.namespace[path]; ok && cur == n {
		delete(c.namespace, path)
		c.resolveCache.Remove(path)
	}
}

// Resolve 按路径解析节点
//
// 命中缓存直接返回；已销毁节点在此惰性摘除。
func (c *Client) Resolve(path string) (*Node, bool) {
	if n, ok := c.resolveCache.Get(path); ok {
		if n.Alive() {
			return n, true
		}
		c.resolveCache.Remove(path)
	}

	c.nsMu.Lock()
	n, ok := c.namespace[path]
	if ok && !n.Alive() {
		delete(c.namespace, path)
		ok = false
	}
	c.nsMu.Unlock()

	if !ok {
		return nil, false
	}
	c.resolveCache.Add(path, n)
	return n, true
}

// SendSignal 发送单向通知
//
// 尽力而为：连接已断开返回 types.ErrClientGone；队列满时
// 丢弃并计数，不阻塞调用方。
func (c *Client) SendSignal(nodePath, signal string, payload any) error {
	if !c.Connected() {
		return types.ErrClientGone
	}

	select {
	case c.signals <- Signal{NodePath: nodePath, Name: signal, Payload: payload}:
		return nil
	default:
		c.droppedSignals.Add(1)
		clientLogger.Debug("signal dropped",
			"client", log.TruncateID(c.uid.String(), 8),
			"signal", signal)
		return nil
	}
}

// Signals 返回通知出口通道
//
// 由外部传输层（或测试）消费。
func (c *Client) Signals() <-chan Signal {
	return c.signals
}

// DroppedSignals 返回累计丢弃的通知数
func (c *Client) DroppedSignals() uint64 {
	return c.droppedSignals.Load()
}
