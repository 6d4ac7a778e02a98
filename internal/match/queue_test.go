package match

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func decodeEvent(t *testing.T, data []byte) Event {
	t.Helper()
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	return ev
}

func TestQueuePairsFirstComeFirstServed(t *testing.T) {
	q := NewQueue()
	p1, p2 := uuid.New(), uuid.New()

	if _, _, paired := q.Join(p1); paired {
		t.Fatalf("first participant must wait")
	}
	first, second, paired := q.Join(p2)
	if !paired {
		t.Fatalf("second participant should pair")
	}
	if first != p1 || second != p2 {
		t.Fatalf("earlier-queued participant takes the first slot")
	}
	if q.Len() != 0 {
		t.Fatalf("queue should drain on pairing, %d left", q.Len())
	}
}

func TestQueueIgnoresDuplicateJoin(t *testing.T) {
	q := NewQueue()
	p1 := uuid.New()
	q.Join(p1)
	if _, _, paired := q.Join(p1); paired {
		t.Fatalf("a participant cannot pair with itself")
	}
	if q.Len() != 1 {
		t.Fatalf("duplicate join must not enqueue twice, len=%d", q.Len())
	}
}

func TestQueueLeave(t *testing.T) {
	q := NewQueue()
	p1 := uuid.New()
	q.Join(p1)
	if !q.Leave(p1) {
		t.Fatalf("queued participant should be able to leave")
	}
	if q.Leave(p1) {
		t.Fatalf("leaving twice is a no-op")
	}
	if q.Len() != 0 {
		t.Fatalf("queue should be empty")
	}
}
