package match

import (
	"sync"

	"github.com/google/uuid"

	"github.com/yeseoLee/janggi-sub000/internal/board"
	"github.com/yeseoLee/janggi-sub000/internal/engine"
	"github.com/yeseoLee/janggi-sub000/internal/logging"
)

// Registry owns every live session and the matchmaking queue. It is
// an explicitly owned, lock-guarded table: all lookups and mutations
// go through it, never through ambient process state. Sessions leave
// the table only after their outcome commit succeeds, or when
// abandoned before play began.
type Registry struct {
	mu            sync.Mutex
	sessions      map[uuid.UUID]*Session
	byParticipant map[uuid.UUID]uuid.UUID

	queue     *Queue
	committer Committer
}

// NewRegistry creates an empty session registry.
func NewRegistry(committer Committer) *Registry {
	return &Registry{
		sessions:      make(map[uuid.UUID]*Session),
		byParticipant: make(map[uuid.UUID]uuid.UUID),
		queue:         NewQueue(),
		committer:     committer,
	}
}

// Join puts a participant into matchmaking. When an opponent is
// waiting the new session is returned; otherwise the participant
// stays queued and the session arrives via SessionFor later.
func (reg *Registry) Join(pid uuid.UUID) (*Session, bool) {
	if _, ok := reg.SessionFor(pid); ok {
		return nil, false
	}
	a, b, paired := reg.queue.Join(pid)
	if !paired {
		return nil, false
	}
	s := reg.create(a, b)
	logging.Infof("session %s: paired %s (A) vs %s (B)", s.ID, a, b)
	return s, true
}

// JoinEngine starts a session against the built-in search opponent,
// which plays team B.
func (reg *Registry) JoinEngine(pid uuid.UUID, eng engine.Engine, cfg engine.Request) *Session {
	s := reg.create(pid, uuid.New())
	s.attachEngine(eng, board.TeamB, cfg)
	logging.Infof("session %s: %s (A) vs engine", s.ID, pid)
	return s
}

func (reg *Registry) create(a, b uuid.UUID) *Session {
	s := newSession(a, b, reg.committer, reg.remove)
	reg.mu.Lock()
	reg.sessions[s.ID] = s
	reg.byParticipant[a] = s.ID
	reg.byParticipant[b] = s.ID
	reg.mu.Unlock()
	s.mu.Lock()
	s.broadcastLocked(Event{Kind: EventPairingFound})
	s.mu.Unlock()
	return s
}

// Get looks up a live session. Actions against unknown or already
// removed ids are the caller's cue to ignore the input.
func (reg *Registry) Get(id uuid.UUID) (*Session, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	s, ok := reg.sessions[id]
	return s, ok
}

// SessionFor finds the live session a participant belongs to.
func (reg *Registry) SessionFor(pid uuid.UUID) (*Session, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	id, ok := reg.byParticipant[pid]
	if !ok {
		return nil, false
	}
	s, ok := reg.sessions[id]
	return s, ok
}

// Abandon tears a session down without an outcome. Only allowed
// before play begins; once playing, terminal conditions are the only
// exits.
func (reg *Registry) Abandon(id uuid.UUID) bool {
	s, ok := reg.Get(id)
	if !ok || !s.Abandonable() {
		return false
	}
	reg.remove(id)
	return true
}

// LeaveQueue removes a still-unpaired participant from matchmaking.
func (reg *Registry) LeaveQueue(pid uuid.UUID) bool {
	return reg.queue.Leave(pid)
}

func (reg *Registry) remove(id uuid.UUID) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.sessions[id]; !ok {
		return
	}
	delete(reg.sessions, id)
	for pid, sid := range reg.byParticipant {
		if sid == id {
			delete(reg.byParticipant, pid)
		}
	}
}

// Live reports the number of live sessions, for the stats surface.
func (reg *Registry) Live() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return len(reg.sessions)
}
