package futures

// unsafeFuture
// 内部轮询形态，统一两种未来。
//
// 约束：对已完结的实例再次调用 poll 属未定义行为，实现与调用双方都须遵守。
// poll 中途 panic 等同于该实例已完结，之后同样不可再轮询。
// 该接口仅供 Object 内部使用，Object 的自消费语义在结构上保证约束成立，
// 故不设运行时检查。
type unsafeFuture[R any] interface {
	poll() (r R, ready bool, err error)
}

// pollableFuture
// 包装 Pollable 的直通实现。
// Pollable 本就容忍调用方应守的任意调用模式，直通即安全。
type pollableFuture[R any] struct {
	inner Pollable[R]
}

func (uf *pollableFuture[R]) poll() (r R, ready bool, err error) {
	r, ready, err = uf.inner.Poll()
	return
}

// consumingFuture
// 包装 Future 的实现。
//
// inner 兼作完结标记：未完结时必为非空，完结后永为空。
// poll 先取出 inner 并置空再轮询。若轮询中途 panic，inner 保持空，
// 与完结后不可再轮询的约束一致，不会残留已消费的旧值供二次轮询。
type consumingFuture[R any] struct {
	inner Future[R]
}

func (sf *consumingFuture[R]) poll() (r R, ready bool, err error) {
	// 取出时 inner 必为非空：poll 仅在未完结时被调用。
	fut := sf.inner
	sf.inner = nil
	p := fut.Poll()
	if p.Pending() {
		if sf.inner != nil {
			panic("futures: consuming future refilled during poll")
		}
		sf.inner = p.Next()
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
