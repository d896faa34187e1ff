package futures

// SucceedImmediately
// 立刻成功完结的未来
func SucceedImmediately[R any](r R) (f Future[R]) {
	f = &immediatelyFuture[R]{
		r:     r,
		cause: nil,
	}
	return
}

// FailedImmediately
// 立刻错误完结的未来
func FailedImmediately[R any](cause error) (f Future[R]) {
	f = &immediatelyFuture[R]{
		r:     *(new(R)),
		cause: cause,
	}
	return
}

type immediatelyFuture[R any] struct {
	r     R
	cause error
}

func (f *immediatelyFuture[R]) Poll() (p Poll[R]) {
	if f.cause != nil {
		p = Fail[R](f.cause)
		return
	}
	p = Succeed[R](f.r)
	return
}
