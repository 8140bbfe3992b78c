package executor

import (
	"sync"
)

// Future is the pending result of a task submitted to a WorkerPool.
type Future[T any] struct {
	defaultValue T
	value        T
	err          error

	mu        sync.Mutex
	done      bool
	wg        sync.WaitGroup
	callbacks []func(T, error)
}

func newFuture[T any](defaultValue T) *Future[T] {
	f := &Future[T]{defaultValue: defaultValue}
	f.wg.Add(1)
	return f
}

func (f *Future[T]) complete(value T, err error) {
	f.mu.Lock()
	if f.done {
		f.mu.Unlock()
		return
	}
	if err != nil {
		f.value = f.defaultValue
		f.err = err
	} else {
		f.value = value
	}
	f.done = true
	callbacks := f.callbacks
	f.callbacks = nil
	f.mu.Unlock()

	f.wg.Done()
	for _, cb := range callbacks {
		cb(f.value, f.err)
	}
}

// Get blocks until the task has finished and returns its result, or the
// default value alongside the task's error.
func (f *Future[T]) Get() (T, error) {
	f.wg.Wait()
	return f.value, f.err
}

// ThenAccept registers a callback invoked with the result once the task
// completes. Callbacks registered after completion run immediately in the
// calling goroutine.
func (f *Future[T]) ThenAccept(next func(T, error)) {
	f.mu.Lock()
	if !f.done {
		f.callbacks = append(f.callbacks, next)
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()
	next(f.value, f.err)
}

// ThenDo registers a callback that runs on successful completion.
func (f *Future[T]) ThenDo(next func()) {
	f.ThenAccept(func(_ T, err error) {
		if err == nil {
			next()
		}
	})
}

// HandleError registers a callback that runs when the task fails.
func (f *Future[T]) HandleError(handle func(error)) {
	f.ThenAccept(func(_ T, err error) {
		if err != nil {
			handle(err)
		}
	})
}
