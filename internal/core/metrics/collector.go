// Package metrics 提供输入子系统的指标采集
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lumenxr/go-lumenxr/internal/core/input"
	"github.com/lumenxr/go-lumenxr/internal/core/scene"
)

// ============================================================================
// Collector 实现
// ============================================================================

// Collector 输入子系统指标采集器
//
// 即时指标抓取时直读注册表快照，累计指标直读原子计数器，
// 帧指标由帧调度经 ObserveFrame 喂入。
type Collector struct {
	mgr *input.Manager
	dir *scene.Directory

	frameDuration prometheus.Histogram
	frameMeter    *FrameMeter
}

// NewCollector 创建指标采集器并注册全部指标
func NewCollector(reg prometheus.Registerer, mgr *input.Manager, dir *scene.Directory) (*Collector, error) {
	c := &Collector{
		mgr: mgr,
		dir: dir,
		frameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "lumenxr_frame_duration_seconds",
			Help: "每个输入评估周期的耗时",
			// 90Hz 预算约 11ms，桶覆盖 0.1ms - 51.2ms
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 10),
		}),
		frameMeter: NewFrameMeter(),
	}

	collectors := []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "lumenxr_input_methods",
			Help: "当前存活的输入法数量",
		}, func() float64 { return float64(mgr.NumMethods()) }),

		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "lumenxr_input_handlers",
			Help: "当前存活的输入处理器数量",
		}, func() float64 { return float64(mgr.NumHandlers()) }),

		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "lumenxr_scene_clients",
			Help: "当前在线的客户端数量",
		}, func() float64 { return float64(dir.Len()) }),

		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "lumenxr_input_wirings_total",
			Help: "输入法与处理器的累计配线次数",
		}, func() float64 { return float64(mgr.Wirings()) }),

		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "lumenxr_input_teardowns_total",
			Help: "输入法与处理器的累计拆线次数",
		}, func() float64 { return float64(mgr.Teardowns()) }),

		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "lumenxr_signals_dropped_total",
			Help: "因客户端事件队列满而丢弃的事件累计数",
		}, c.droppedSignals),

		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "lumenxr_frame_rate",
			Help: "最近窗口内的有效评估帧率（帧/秒）",
		}, func() float64 { return c.frameMeter.Rate() }),

		c.frameDuration,
	}

	for _, col := range collectors {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return c, nil
}

// ObserveFrame 记录一次帧评估
//
// 作为帧调度的观察回调接入（dispatch.WithFrameObserver）。
func (c *Collector) ObserveFrame(d time.Duration) {
	c.frameDuration.Observe(d.Seconds())
	c.frameMeter.Mark()
}

// FrameMeter 返回帧率计
func (c *Collector) FrameMeter() *FrameMeter {
	return c.frameMeter
}

// droppedSignals 汇总各在线客户端的事件丢弃计数
//
// 已断开的客户端随即从目录摘除，其计数不再参与汇总：指标口径
// 为「在线客户端的累计丢弃」。
func (c *Collector) droppedSignals() float64 {
	var total uint64
	for _, client := range c.dir.Clients() {
		total += client.DroppedSignals()
	}
	return float64(total)
}
