// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csvrow

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Task is a deferred unit of work at the file boundary. Building a Task
// runs nothing; the caller decides when and where it runs with [Task.Run]
// or [Task.Start].
//
// The Either carries the structured outcome. The error return is reserved
// for unrecovered faults.
type Task[A any] func() (Either[Failure, A], error)

// Run executes t on the calling goroutine.
func (t Task[A]) Run() (Either[Failure, A], error) {
	return t()
}

// Start executes t on a new goroutine and returns its [Future].
// A panic inside t is reported by the future as a fault.
func (t Task[A]) Start() *Future[A] {
	f := &Future[A]{done: make(chan struct{})}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				f.complete(Either[Failure, A]{}, fmt.Errorf("csvrow: task panicked: %v", r))
			}
		}()
		f.complete(t())
	}()
	return f
}

// MapTask applies f to the success value of t.
func MapTask[A, B any](t Task[A], f func(A) B) Task[B] {
	return func() (Either[Failure, B], error) {
		a, err := t()
		if err != nil {
			return Either[Failure, B]{}, err
		}
		return MapEither(a, f), nil
	}
}

// BindTask runs t, then feeds its success value to f and returns the
// outcome of f. Failures and faults of t end the chain.
func BindTask[A, B any](t Task[A], f func(A) Either[Failure, B]) Task[B] {
	return func() (Either[Failure, B], error) {
		a, err := t()
		if err != nil {
			return Either[Failure, B]{}, err
		}
		return FlatMapEither(a, f), nil
	}
}

// Future is the handle of a started [Task]. It completes exactly once.
type Future[A any] struct {
	completed atomic.Uintptr
	done      chan struct{}
	result    Either[Failure, A]
	err       error
}

func (f *Future[A]) complete(result Either[Failure, A], err error) {
	if f.completed.Add(1) != 1 {
		panic("csvrow: future completed twice")
	}
	f.result, f.err = result, err
	close(f.done)
}

// Done returns a channel closed when the task has finished.
func (f *Future[A]) Done() <-chan struct{} { return f.done }

// Await blocks until the task finishes or ctx is done. When ctx ends
// first, Await returns ctx.Err() and the task keeps running to completion
// on its own goroutine, releasing whatever it holds.
func (f *Future[A]) Await(ctx context.Context) (Either[Failure, A], error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		return Either[Failure, A]{}, ctx.Err()
	}
}

// Poll returns the outcome, true and the fault if the task has finished,
// or zero values and false otherwise.
func (f *Future[A]) Poll() (Either[Failure, A], bool, error) {
	select {
	case <-f.done:
		return f.result, true, f.err
	default:
		return Either[Failure, A]{}, false, nil
	}
}
