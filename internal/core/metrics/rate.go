// Package metrics 提供输入子系统的指标采集
package metrics

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// frameRateWindow 帧率滑动窗口长度（秒）
const frameRateWindow = 10

// ============================================================================
// FrameMeter - 帧率计
// ============================================================================

// FrameMeter 帧率计（基于滑动窗口）
//
// 使用 10 个 1 秒桶计算最近 10 秒的平均帧率。窗口短于带宽类
// 指标的惯用 60 秒：帧率异常需要尽快反映在采集端。
type FrameMeter struct {
	clk clock.Clock

	mu       sync.RWMutex
	buckets  [frameRateWindow]int64
	lastIdx  int
	lastTime time.Time
}

// NewFrameMeter 创建帧率计
func NewFrameMeter() *FrameMeter {
	return newFrameMeter(clock.New())
}

// newFrameMeter 以指定时钟创建帧率计（测试注入模拟时钟）
func newFrameMeter(clk clock.Clock) *FrameMeter {
	return &FrameMeter{
		clk:      clk,
		lastTime: clk.Now(),
	}
}

// Mark 记录一帧
func (f *FrameMeter) Mark() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.advance()
	f.buckets[f.lastIdx]++
}

// advance 按经过的时间推进桶位（调用方持锁）
func (f *FrameMeter) advance() {
	now := f.clk.Now()
	elapsed := now.Sub(f.lastTime)
	if elapsed < time.Second {
		return
	}

	seconds := int(elapsed.Seconds())
	if seconds >= frameRateWindow {
		f.buckets = [frameRateWindow]int64{}
		f.lastIdx = 0
	} else {
		for i := 0; i < seconds; i++ {
			f.lastIdx = (f.lastIdx + 1) % frameRateWindow
			f.buckets[f.lastIdx] = 0
		}
	}
	f.lastTime = now
}

// Rate 返回窗口内的平均帧率（帧/秒）
func (f *FrameMeter) Rate() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.advance()

	var total int64
	for _, v := range f.buckets {
		total += v
	}
	return float64(total) / float64(frameRateWindow)
}

// Total 返回窗口内的帧总数
func (f *FrameMeter) Total() int64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var total int64
	for _, v := range f.buckets {
		total += v
	}
	return total
}

// Reset 重置帧率计
func (f *FrameMeter) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.buckets = [frameRateWindow]int64{}
	f.lastIdx = 0
	f.lastTime = f.clk.Now()
}
