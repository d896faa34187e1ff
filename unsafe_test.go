package futures

import (
	"errors"
	"testing"
)

var errTest = errors.New("test")

type panicking struct{}

func (panicking) Poll() Poll[int] {
	panic("boom")
}

func TestConsumingFuture_PendKeepsInner(t *testing.T) {
	sf := &consumingFuture[int]{inner: FutureFunc[int](func() Poll[int] {
		return Pend[int](SucceedImmediately[int](1))
	})}
	_, ready, err := sf.poll()
	if err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	if ready {
		t.Fatal("poll: ready too early")
	}
	if sf.inner == nil {
		t.Fatal("inner is empty after pending poll")
	}
	r, ready, err := sf.poll()
	if err != nil || !ready {
		t.Fatalf("second poll = (%v, %v, %v), want (1, true, nil)", r, ready, err)
	}
	if sf.inner != nil {
		t.Error("inner is not empty after resolution")
	}
}

func TestConsumingFuture_FailLeavesEmpty(t *testing.T) {
	sf := &consumingFuture[int]{inner: FailedImmediately[int](errTest)}
	if _, _, err := sf.poll(); err == nil {
		t.Fatal("poll did not fail")
	}
	if sf.inner != nil {
		t.Error("inner is not empty after failure")
	}
}

// A panic mid poll must leave the holder empty, same as a resolution.
func TestConsumingFuture_PanicLeavesEmpty(t *testing.T) {
	sf := &consumingFuture[int]{inner: panicking{}}
	func() {
		defer func() {
			if recover() == nil {
				t.Error("poll did not panic")
			}
		}()
		_, _, _ = sf.poll()
	}()
	if sf.inner != nil {
		t.Error("inner is not empty after panic")
	}
}

// Same property at the Glue boundary: after a panic the next poll must be
// rejected as poll-after-resolve, not reach the consumed future again.
func TestGlue_PanicResolves(t *testing.T) {
	g := NewGlue[int](panicking{})
	func() {
		defer func() {
			if recover() == nil {
				t.Error("poll did not panic")
			}
		}()
		_, _, _ = g.Poll()
	}()

	defer func() {
		v := recover()
		if v == nil {
			t.Fatal("second poll did not panic")
		}
		cause, ok := v.(error)
		if !ok || !IsPolledAfterResolved(cause) {
			t.Errorf("panic value = %v, want ErrPolledAfterResolved", v)
		}
	}()
	_, _, _ = g.Poll()
}

func TestPollableFuture_Passthrough(t *testing.T) {
	calls := 0
	uf := &pollableFuture[int]{inner: PollableFunc[int](func() (int, bool, error) {
		calls++
		return calls, calls > 1, nil
	})}
	if _, ready, _ := uf.poll(); ready {
		t.Error("first poll is ready")
	}
	r, ready, err := uf.poll()
	if err != nil || !ready || r != 2 {
		t.Errorf("second poll = (%v, %v, %v), want (2, true, nil)", r, ready, err)
	}
}
