// Package Queues holds a FIFO queue over a circular slice.
package Queues

// EmptyQueueError is returned by Pop on an empty queue.
type EmptyQueueError struct{}

func (e *EmptyQueueError) Error() string {
	return "queue is empty: cannot Pop"
}

// Ring is a FIFO queue that grows its backing slice as needed. The zero value is ready to use.
type Ring[T any] struct {
	sz, head, tail uint
	content        []T
}

func MakeRing[T any](initCap uint) *Ring[T] {
	return &Ring[T]{content: make([]T, initCap)}
}

func (q *Ring[T]) Empty() bool {
	return q.sz == 0
}

func (q *Ring[T]) Size() uint {
	return q.sz
}

// Clear empties the queue, keeping its capacity.
func (q *Ring[T]) Clear() {
	clear(q.content)
	q.sz, q.head, q.tail = 0, 0, 0
}

// resize moves the items to a slice of newLen, which must be at least q.sz, and unwraps them.
func (q *Ring[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if q.head < q.tail || q.sz == 0 {
		copy(nc, q.content[q.head:q.tail])
	} else {
		n := copy(nc, q.content[q.head:])
		copy(nc[n:], q.content[:q.tail])
	}
	q.content = nc
	q.head, q.tail = 0, q.sz%max(newLen, 1)
}

func (q *Ring[T]) Push(item T) {
	if q.sz == uint(len(q.content)) {
		q.resize(max(q.sz*3/2, q.sz+4))
	}
	q.content[q.tail] = item
	q.tail = (q.tail + 1) % uint(len(q.content))
	q.sz++
}

func (q *Ring[T]) Pop() (item T, e error) {
	if q.Empty() {
		return item, &EmptyQueueError{}
	}
	item = q.content[q.head]
	q.content[q.head] = *new(T)
	q.head = (q.head + 1) % uint(len(q.content))
	q.sz--
	return item, nil
}

// Peek returns the oldest item without removing it, or the zero value when empty.
func (q *Ring[T]) Peek() (item T) {
	if !q.Empty() {
		item = q.content[q.head]
	}
	return
}
