// Package scene 实现场景图粘合层
package scene

import (
	"sync"

	"github.com/lumenxr/go-lumenxr/pkg/types"
)

// ============================================================================
// Directory 实现
// ============================================================================

// Directory 进程级客户端目录
//
// 节点对所属客户端只保存标识，经目录升级为强引用；客户端
// 断开后升级返回失败，避免节点、客户端、能力对象之间的
// 引用环。
type Directory struct {
	mu      sync.RWMutex
	clients map[types.Uid]*Client
}

// NewDirectory 创建客户端目录
func NewDirectory() *Directory {
	return &Directory{
		clients: make(map[types.Uid]*Client),
	}
}

// add 登记客户端（由 NewClient 调用）
func (d *Directory) add(c *Client) {
	d.mu.Lock()
	d.clients[c.uid] = c
	d.mu.Unlock()
}

// remove 摘除客户端（由 Client.Disconnect 调用）
func (d *Directory) remove(uid types.Uid) {
	d.mu.Lock()
	delete(d.clients, uid)
	d.mu.Unlock()
}

// Get 按标识升级客户端引用
//
// 客户端不存在或已断开时返回失败。
func (d *Directory) Get(uid types.Uid) (*Client, bool) {
	d.mu.RLock()
	c, ok := d.clients[uid]
	d.mu.RUnlock()

	if !ok || !c.Connected() {
		return nil, false
	}
	return c, true
}

// Clients 返回当前客户端的时点快照
func (d *Directory) Clients() []*Client {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*Client, 0, len(d.clients))
	for _, c := range d.clients {
		out = append(out, c)
	}
	return out
}

// Len 返回当前客户端数
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.clients)
}
