package futures

import "github.com/brickingsoft/errors"

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "futures"
)

var (
	// ErrPolledAfterResolved 已完结的未来被再次轮询
	ErrPolledAfterResolved = errors.Define("futures: poll invoked on a resolved future", errors.WithMeta(errMetaPkgKey, errMetaPkgVal))
	// ErrCanceled 上下文结束而中止等待
	ErrCanceled = errors.Define("futures: await canceled", errors.WithMeta(errMetaPkgKey, errMetaPkgVal))
)

// IsPolledAfterResolved
// 是否为 ErrPolledAfterResolved 错误，指对已完结的 Glue 再次调用 Poll。
func IsPolledAfterResolved(err error) bool {
	return errors.Is(err, ErrPolledAfterResolved)
}

// IsCanceled
// 是否为 ErrCanceled 错误，指 Await 因 context.Context 结束而中止。
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}
