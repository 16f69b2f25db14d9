package extract

import (
	"context"
	"time"
)

// RaceTimeout runs op against a timer and returns whichever settles first.
// A timer win returns ErrStageTimeout; the op's context is canceled so the
// losing goroutine can release its resources. The result channel is buffered,
// so a late-finishing op never leaks a goroutine.
func RaceTimeout[T any](ctx context.Context, timeout time.Duration, op func(ctx context.Context) (T, error)) (T, error) {
	opCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type settled struct {
		val T
		err error
	}
	done := make(chan settled, 1)
	go func() {
		v, err := op(opCtx)
		done <- settled{val: v, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var zero T
	select {
	case s := <-done:
		return s.val, s.err
	case <-timer.C:
		return zero, ErrStageTimeout
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
