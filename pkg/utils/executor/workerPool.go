package executor

import (
	"runtime"
	"sync"
)

// WorkerPool manages a bounded set of workers processing submitted tasks.
// At most maxWorkers tasks run concurrently; further submissions queue until
// a worker frees up.
type WorkerPool struct {
	taskQueue   chan func()
	workerQueue chan struct{}
	wg          sync.WaitGroup
}

// NewWorkerPool initializes a pool sized to the available CPUs.
func NewWorkerPool() *WorkerPool {
	return NewWorkerPoolWithMax(runtime.NumCPU() * 2)
}

// NewWorkerPoolWithMax initializes a pool with an explicit worker cap.
func NewWorkerPoolWithMax(maxWorkers int) *WorkerPool {
	pool := &WorkerPool{
		taskQueue:   make(chan func()),
		workerQueue: make(chan struct{}, maxWorkers),
	}
	go pool.dispatch()
	return pool
}

func (wp *WorkerPool) dispatch() {
	for task := range wp.taskQueue {
		wp.wg.Add(1)
		wp.workerQueue <- struct{}{}
		go wp.worker(task)
	}
}

func (wp *WorkerPool) worker(task func()) {
	defer wp.wg.Done()
	defer func() { <-wp.workerQueue }()
	task()
}

// SubmitWithError schedules a task on the pool and returns a future for its
// result. The default value is returned by Get when the task fails.
func SubmitWithError[T any](wp *WorkerPool, defaultValue T, task func() (T, error)) *Future[T] {
	fut := newFuture[T](defaultValue)
	wp.taskQueue <- func() {
		fut.complete(task())
	}
	return fut
}

// Stop gracefully shuts down the pool after draining in-flight tasks.
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
}
