package futures

// Object
// 类型擦除的未来容器。
//
// 以动态派发擦除具体的未来类型，使异构的未来可以存入同一切片。
// Object 始终持有未完结的未来：Poll 消费自身，未完结时以新的 Object 接续，
// 完结后不再存在可轮询的容器。
type Object[R any] struct {
	inner unsafeFuture[R]
}

// FromFuture
// 由自消费式的未来构建 Object。
func FromFuture[R any](f Future[R]) (o Object[R]) {
	o = Object[R]{
		inner: &consumingFuture[R]{inner: f},
	}
	return
}

// FromPollable
// 由原地推进式的未来构建 Object。
func FromPollable[R any](f Pollable[R]) (o Object[R]) {
	o = Object[R]{
		inner: &pollableFuture[R]{inner: f},
	}
	return
}

// Poll
// 推进一步，见 Future.Poll。
func (o Object[R]) Poll() (p Poll[R]) {
	// Object 仅持有未完结的未来，此处轮询必然合法。
	r, ready, err := o.inner.poll()
	if err != nil {
		p = Fail[R](err)
		return
	}
	if !ready {
		p = Pend[R](Object[R]{inner: o.inner})
		return
	}
	p = Succeed[R](r)
	return
}
