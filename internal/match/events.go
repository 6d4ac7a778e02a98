package match

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/yeseoLee/janggi-sub000/internal/board"
)

// Event kinds broadcast to session watchers. Only post-validation
// state changes are ever broadcast; raw submissions never are.
const (
	EventPairingFound    = "pairingFound"
	EventSetupSubmitted  = "setupSubmitted"
	EventMovePlayed      = "movePlayed"
	EventPassPlayed      = "passPlayed"
	EventSessionFinished = "sessionFinished"
)

// Event is one broadcast state change. Seq increases by one per event
// within a session; receivers must discard out-of-order duplicates
// when the transport cannot guarantee delivery order.
type Event struct {
	Seq     uint64       `json:"seq"`
	Kind    string       `json:"kind"`
	Session uuid.UUID    `json:"session"`
	Team    string       `json:"team,omitempty"`
	From    *board.Coord `json:"from,omitempty"`
	To      *board.Coord `json:"to,omitempty"`
	Turn    string       `json:"turn,omitempty"`
	Board   string       `json:"board,omitempty"`
	Winner  string       `json:"winner,omitempty"`
	Result  string       `json:"result,omitempty"`
}

// AddWatcher registers a channel to receive broadcast events.
func (s *Session) AddWatcher(ch chan []byte) {
	s.mu.Lock()
	s.watchers[ch] = struct{}{}
	s.mu.Unlock()
}

// RemoveWatcher unregisters a watcher channel.
func (s *Session) RemoveWatcher(ch chan []byte) {
	s.mu.Lock()
	delete(s.watchers, ch)
	s.mu.Unlock()
}

// broadcastLocked stamps the event with the next sequence number and
// fans it out. Slow watchers drop events rather than blocking the
// session. Must be called with the session lock held.
func (s *Session) broadcastLocked(ev Event) {
	s.seq++
	ev.Seq = s.seq
	ev.Session = s.ID
	data, _ := json.Marshal(ev)
	for ch := range s.watchers {
		select {
		case ch <- data:
		default:
		}
	}
}
