package event

import (
	"sync/atomic"

	"github.com/lixenwraith/arena/parameter"
)

// Queue is a lock-free MPSC ring buffer of game events
// Push is safe from any goroutine; Drain belongs to the world step
// A slot is readable only after its published flag is set
// When full the oldest unread events are overwritten
type Queue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // Read index
	tail      atomic.Uint64 // Write index
	dropped   atomic.Uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push implements Sink
func (q *Queue) Push(ev GameEvent) {
	for {
		tail := q.tail.Load()
		next := tail + 1
		if !q.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & parameter.EventBufferMask
		q.events[idx] = ev
		q.published[idx].Store(true) // After the write

		head := q.head.Load()
		if next-head > parameter.EventQueueSize {
			if q.head.CompareAndSwap(head, next-parameter.EventQueueSize) {
				q.dropped.Add(1)
			}
		}
		return
	}
}

// Drain appends pending events to out in FIFO order and advances head
func (q *Queue) Drain(out []GameEvent) []GameEvent {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if tail == head {
			return out
		}

		avail := tail - head
		if avail > parameter.EventQueueSize {
			avail = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		start := len(out)
		for i := uint64(0); i < avail; i++ {
			idx := (head + i) & parameter.EventBufferMask
			if !q.published[idx].Load() {
				break // Writer incomplete
			}
			out = append(out, q.events[idx])
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(out)-start)) {
			return out
		}
		out = out[:start]
	}
}

// Consume returns all pending events, nil when empty
func (q *Queue) Consume() []GameEvent {
	if q.Len() == 0 {
		return nil
	}
	return q.Drain(make([]GameEvent, 0, q.Len()))
}

// Len returns the approximate pending count
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > parameter.EventQueueSize {
		return parameter.EventQueueSize
	}
	return diff
}

// Dropped returns how many events were overwritten unread
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}
