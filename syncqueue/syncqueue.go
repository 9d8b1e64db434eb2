// Package syncqueue provides a blocking FIFO queue safe for concurrent use,
// for handing work items between producer and consumer goroutines.
package syncqueue

import (
	"errors"
	"sync"

	"github.com/structkit/collections/queue"
)

var (
	ErrorEmptyQueue  = errors.New("queue is empty")
	ErrorFullQueue   = errors.New("queue is full")
	ErrorQueueClosed = errors.New("queue is closed")
)

// Queue is a FIFO queue safe for concurrent use by any number of producers
// and consumers. Pop blocks while the queue is empty; on a bounded queue Push
// blocks while it is full.
//
// After Close, pushes fail with ErrorQueueClosed while pops keep draining the
// backlog; once the backlog is empty, pops fail with ErrorQueueClosed too.
type Queue[T any] struct {
	mu       sync.Mutex
	notEmpty sync.Cond
	notFull  sync.Cond
	items    *queue.Queue[T]
	capacity int
	closed   bool
}

// New creates a new unbounded queue: Push never blocks.
func New[T any]() *Queue[T] {
	return NewBounded[T](0)
}

// NewBounded creates a new queue holding at most capacity values. A capacity
// of zero or less means unbounded.
func NewBounded[T any](capacity int) *Queue[T] {
	q := &Queue[T]{
		items:    queue.New[T](),
		capacity: capacity,
	}
	q.notEmpty.L = &q.mu
	q.notFull.L = &q.mu
	return q
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Size()
}

// Empty returns true if the queue holds no values.
func (q *Queue[T]) Empty() bool {
	return q.Len() == 0
}

// Capacity returns the maximum number of queued values, or zero if the queue
// is unbounded.
func (q *Queue[T]) Capacity() int {
	return q.capacity
}

// Push appends the value to the back of the queue, blocking while a bounded
// queue is full. It fails with ErrorQueueClosed once the queue is closed,
// including while blocked.
func (q *Queue[T]) Push(value T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	for !q.closed && q.full() {
		q.notFull.Wait()
	}
	if q.closed {
		return ErrorQueueClosed
	}
	q.items.Push(value)
	q.notEmpty.Signal()
	return nil
}

// TryPush appends the value without blocking. It fails with ErrorFullQueue if
// a bounded queue is full and ErrorQueueClosed once the queue is closed.
func (q *Queue[T]) TryPush(value T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrorQueueClosed
	}
	if q.full() {
		return ErrorFullQueue
	}
	q.items.Push(value)
	q.notEmpty.Signal()
	return nil
}

// Pop removes and returns the front value, blocking while the queue is
// empty. It fails with ErrorQueueClosed once the queue is closed and fully
// drained, including while blocked.
func (q *Queue[T]) Pop() (value T, err error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.items.Empty() && !q.closed {
		q.notEmpty.Wait()
	}
	if q.items.Empty() {
		return value, ErrorQueueClosed
	}
	return q.pop()
}

// TryPop removes and returns the front value without blocking. It fails with
// ErrorEmptyQueue if the queue is open and empty, and ErrorQueueClosed once
// the queue is closed and fully drained.
func (q *Queue[T]) TryPop() (value T, err error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.items.Empty() {
		if q.closed {
			return value, ErrorQueueClosed
		}
		return value, ErrorEmptyQueue
	}
	return q.pop()
}

func (q *Queue[T]) pop() (T, error) {
	value, err := q.items.Pop()
	if err != nil {
		return value, err
	}
	q.notFull.Signal()
	return value, nil
}

// Close marks the queue closed and wakes all blocked goroutines. Queued
// values remain available to Pop; new pushes fail.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.close()
}

// CloseNow closes the queue and discards its backlog, so that blocked and
// future pops fail immediately. It returns the number of discarded values.
func (q *Queue[T]) CloseNow() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	discarded := q.items.Size()
	q.items.Clear()
	q.close()
	return discarded
}

func (q *Queue[T]) close() {
	if q.closed {
		return
	}
	q.closed = true
	q.notEmpty.Broadcast()
	q.notFull.Broadcast()
}

func (q *Queue[T]) full() bool {
	return q.capacity > 0 && q.items.Size() >= q.capacity
}
