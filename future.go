package futures

// Future
// 自消费式的未来。
//
// 每次 Poll 在语义上消费当前值：完结时产出结果或错误，
// 未完结时经由 Poll.Next 返还一个接续的未来以供继续轮询。
// 注意：产出完结结果的那个值不可再次 Poll，它已被消费，
// 后续轮询只能作用于 Poll.Next 返还的接续值。
//
// 本包不提供 map 、and_then 等组合器：经 Object 擦除后无需编译期组合树。
type Future[R any] interface {
	// Poll
	// 推进一步，消费接收者。
	Poll() (p Poll[R])
}

// FutureFunc
// 以函数实现 Future。
type FutureFunc[R any] func() Poll[R]

func (fn FutureFunc[R]) Poll() (p Poll[R]) {
	p = fn()
	return
}

// Succeed
// 构建一个成功完结的轮询结果。
func Succeed[R any](r R) (p Poll[R]) {
	p = Poll[R]{
		value: r,
		cause: nil,
		next:  nil,
	}
	return
}

// Fail
// 构建一个错误完结的轮询结果，cause 不可为空。
func Fail[R any](cause error) (p Poll[R]) {
	p = Poll[R]{
		value: *(new(R)),
		cause: cause,
		next:  nil,
	}
	return
}

// Pend
// 构建一个未完结的轮询结果，next 为接续的未来，不可为空。
func Pend[R any](next Future[R]) (p Poll[R]) {
	p = Poll[R]{
		value: *(new(R)),
		cause: nil,
		next:  next,
	}
	return
}

// Poll
// 一次轮询的结果。
//
// 成功完结、错误完结、未完结三者居一。
type Poll[R any] struct {
	value R
	cause error
	next  Future[R]
}

// Resolved 是否成功完结
func (p Poll[R]) Resolved() bool {
	return p.cause == nil && p.next == nil
}

// Failed 是否错误完结
func (p Poll[R]) Failed() bool {
	return p.cause != nil
}

// Pending 是否未完结
func (p Poll[R]) Pending() bool {
	return p.next != nil
}

// Value 成功完结的结果
func (p Poll[R]) Value() R {
	return p.value
}

// Cause 错误完结的错误
func (p Poll[R]) Cause() error {
	return p.cause
}

// Next 接续的未来，仅未完结时非空
func (p Poll[R]) Next() Future[R] {
	return p.next
}
