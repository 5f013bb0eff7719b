// Package scheduler provides the deferred-callback queue used by the
// component lifecycle. Callbacks queued with Defer run after the current
// synchronous work completes, when the owner of the queue calls Flush.
package scheduler

import "sync"

// Queue is an ordered queue of deferred callbacks.
//
// Defer is safe to call from any goroutine; Flush must only be called from
// the single goroutine that drives the document, and callbacks run on that
// goroutine. A callback is never invoked while another is still running.
type Queue struct {
	mu    sync.Mutex
	tasks []func()
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{}
}

// Defer schedules a callback to run on the next Flush. Nil callbacks are
// ignored.
func (q *Queue) Defer(task func()) {
	if task == nil {
		return
	}
	q.mu.Lock()
	q.tasks = append(q.tasks, task)
	q.mu.Unlock()
}

// Flush runs queued callbacks in order until the queue is empty. Callbacks
// scheduled during a flush run within the same flush, after the batch that
// scheduled them.
func (q *Queue) Flush() {
	for {
		tasks := q.drain()
		if len(tasks) == 0 {
			return
		}
		for _, task := range tasks {
			task()
		}
	}
}

// Len reports the number of callbacks currently queued.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

func (q *Queue) drain() []func() {
	q.mu.Lock()
	tasks := append([]func(){}, q.tasks...)
	q.tasks = nil
	q.mu.Unlock()
	return tasks
}
