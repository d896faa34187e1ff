package futures

// Pollable
// 原地推进式的未来，用于对接外部未来生态。
//
// Poll 借用接收者并原地变更其状态。未就绪后允许再次调用；
// 返回就绪或错误之后则不可再调用，该约束仅由约定保障，实现不必检查。
type Pollable[R any] interface {
	// Poll
	// 推进一步。ready 表明结果是否就绪。
	Poll() (r R, ready bool, err error)
}

// PollableFunc
// 以函数实现 Pollable。
type PollableFunc[R any] func() (R, bool, error)

func (fn PollableFunc[R]) Poll() (r R, ready bool, err error) {
	r, ready, err = fn()
	return
}
