package Queues

// Queue is a FIFO of T.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue over a ring buffer that grows on Push. Size is the number of items held;
// Shrink cuts the buffer back to about Size and Clear empties it but keeps the buffer.
type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

// EmptyQueueError is returned by Pop on an empty queue.
type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
