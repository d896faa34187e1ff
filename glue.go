package futures

import "github.com/brickingsoft/errors"

// NewGlue
// 让自消费式的未来可被原地推进式的调用方驱动。
//
// 自消费契约无法静态禁止完结后的再次轮询，Glue 显式维护该约束：
// 对已完结的 Glue 再次 Poll 会以 ErrPolledAfterResolved 为值 panic，
// 使误用立即显形，而不是无声地破坏状态。
func NewGlue[R any](f Future[R]) (g *Glue[R]) {
	g = &Glue[R]{
		inner: f,
	}
	return
}

// Glue
// 自消费式未来到 Pollable 契约的适配器。
type Glue[R any] struct {
	// inner 未完结时非空，完结后永为空。
	inner Future[R]
}

// Poll
// 实现 Pollable，对已完结的 Glue 调用将 panic。
func (g *Glue[R]) Poll() (r R, ready bool, err error) {
	fut := g.inner
	if fut == nil {
		panic(errors.From(ErrPolledAfterResolved))
	}
	// 先置空再轮询，轮询中途 panic 时 Glue 停留在完结态。
	g.inner = nil
	p := fut.Poll()
	if p.Pending() {
		g.inner = p.Next()
		return
	}
	if p.Failed() {
		err = p.Cause()
		return
	}
	r = p.Value()
	ready = true
	return
}
