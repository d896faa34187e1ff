package futures

import (
	"context"
	"runtime"
	"time"

	"github.com/brickingsoft/errors"
)

const ns500 = 500 * time.Nanosecond

// Await
// 同步驱动自消费式的未来直至完结。
//
// 未完结时短暂休眠后继续轮询接续值，上下文结束则中止，
// 返回携带上下文错误的 ErrCanceled。
// 外部唤醒机制不在本包范围内，Await 只做忙轮询式驱动，
// 适合步进开销极小的未来。
func Await[R any](ctx context.Context, f Future[R]) (r R, err error) {
	times := 10
	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = errors.From(ErrCanceled, errors.WithWrap(ctxErr))
			return
		}
		p := f.Poll()
		if p.Pending() {
			f = p.Next()
			time.Sleep(ns500)
			times--
			if times < 0 {
				times = 10
				runtime.Gosched()
			}
			continue
		}
		if p.Failed() {
			err = p.Cause()
			return
		}
		r = p.Value()
		return
	}
}
