package match

import (
	"sync"

	"github.com/google/uuid"
)

// Queue holds participants waiting for an opponent. All mutation runs
// under one mutex so pairing is atomic and nobody is paired twice.
type Queue struct {
	mu      sync.Mutex
	waiting []uuid.UUID
}

// NewQueue creates an empty matchmaking queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Join enqueues a participant. When an opponent is already waiting the
// pair is returned with the earlier-queued participant first; that
// participant takes team A. Joining while already queued is a no-op.
func (q *Queue) Join(pid uuid.UUID) (first, second uuid.UUID, paired bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, w := range q.waiting {
		if w == pid {
			return uuid.Nil, uuid.Nil, false
		}
	}
	if len(q.waiting) == 0 {
		q.waiting = append(q.waiting, pid)
		return uuid.Nil, uuid.Nil, false
	}
	first = q.waiting[0]
	q.waiting = q.waiting[1:]
	return first, pid, true
}

// Leave removes a waiting participant, e.g. on disconnect before
// pairing. Returns whether the participant was queued.
func (q *Queue) Leave(pid uuid.UUID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, w := range q.waiting {
		if w == pid {
			q.waiting = append(q.waiting[:i], q.waiting[i+1:]...)
			return true
		}
	}
	return false
}

// Len reports how many participants are waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.waiting)
}
