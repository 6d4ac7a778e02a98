package match

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yeseoLee/janggi-sub000/internal/board"
	"github.com/yeseoLee/janggi-sub000/internal/engine"
	"github.com/yeseoLee/janggi-sub000/internal/logging"
	"github.com/yeseoLee/janggi-sub000/internal/replay"
	"github.com/yeseoLee/janggi-sub000/internal/storage"
)

// State is the session lifecycle phase. Transitions never regress.
type State int

const (
	Paired State = iota
	SetupPending
	Playing
	Finished
)

func (s State) String() string {
	switch s {
	case Paired:
		return "paired"
	case SetupPending:
		return "setupPending"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Result kinds recorded on the persisted game record.
const (
	ResultResign     = "resign"
	ResultCheckmate  = "checkmate"
	ResultDisconnect = "disconnect"
)

// Committer persists one finished game's outcome atomically: the
// immutable record plus both participants' rank updates.
type Committer interface {
	CommitOutcome(ctx context.Context, rec *storage.GameRecord) error
}

// Session is the authoritative state machine for one live contest.
// It is the single owner of its board and move log; every submission
// is validated under one lock, so at most one mutation is accepted
// per turn. Illegal and out-of-turn input is silently ignored.
type Session struct {
	ID uuid.UUID

	mu         sync.Mutex
	state      State
	teamAID    uuid.UUID
	teamBID    uuid.UUID
	setups     [2]*board.Setup
	board      board.Board
	turn       board.Team
	log        []replay.Entry
	startedAt  time.Time
	endedAt    time.Time
	winner     board.Team
	resultKind string
	seq        uint64
	watchers   map[chan []byte]struct{}

	committer   Committer
	onCommitted func(id uuid.UUID)

	eng        engine.Engine
	engineTeam board.Team
	engineCfg  engine.Request
}

func newSession(aID, bID uuid.UUID, committer Committer, onCommitted func(uuid.UUID)) *Session {
	// Pairing enters setup negotiation immediately.
	return &Session{
		ID:          uuid.New(),
		state:       SetupPending,
		teamAID:     aID,
		teamBID:     bID,
		watchers:    make(map[chan []byte]struct{}),
		committer:   committer,
		onCommitted: onCommitted,
	}
}

// Participants returns the team A and team B participant ids.
func (s *Session) Participants() (uuid.UUID, uuid.UUID) {
	return s.teamAID, s.teamBID
}

// TeamOf returns the team a participant plays, or TeamNone for
// strangers to this session.
func (s *Session) TeamOf(pid uuid.UUID) board.Team {
	switch pid {
	case s.teamAID:
		return board.TeamA
	case s.teamBID:
		return board.TeamB
	}
	return board.TeamNone
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns the current board and the team to move.
func (s *Session) Snapshot() (board.Board, board.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board, s.turn
}

// Log returns a copy of the move log.
func (s *Session) Log() []replay.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]replay.Entry, len(s.log))
	copy(out, s.log)
	return out
}

// SubmitSetup records one side's opening choice. Duplicate submissions
// overwrite that side's own slot until both are present; the session
// then builds the initial board and play begins with team A.
func (s *Session) SubmitSetup(team board.Team, setup board.Setup) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != SetupPending {
		return false
	}
	switch team {
	case board.TeamA:
		s.setups[0] = &setup
	case board.TeamB:
		s.setups[1] = &setup
	default:
		return false
	}
	ev := Event{Kind: EventSetupSubmitted, Team: team.String()}
	if s.setups[0] != nil && s.setups[1] != nil {
		s.board = board.NewInitialBoard(*s.setups[0], *s.setups[1])
		s.turn = board.TeamA
		s.state = Playing
		s.startedAt = time.Now()
		ev.Turn = s.turn.String()
		ev.Board = s.board.String()
	}
	s.broadcastLocked(ev)
	s.pokeEngineLocked()
	return true
}

// SubmitMove validates and applies one move. Accepted iff the session
// is playing, the submitter holds the turn, the coordinates are in
// range, the source piece is the submitter's own, and the destination
// is among the piece's candidate moves. Anything else is ignored.
func (s *Session) SubmitMove(team board.Team, from, to board.Coord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Playing || team != s.turn {
		return false
	}
	if !board.InBounds(from.R, from.C) || !board.InBounds(to.R, to.C) {
		return false
	}
	if p := s.board.PieceAt(from.R, from.C); p.IsEmpty() || p.Team != team {
		return false
	}
	legal := false
	for _, m := range board.CandidateMoves(s.board, from.R, from.C) {
		if m == to {
			legal = true
			break
		}
	}
	if !legal {
		return false
	}
	s.board = s.board.WithMove(from, to)
	s.log = append(s.log, replay.Entry{
		Kind: replay.KindMove,
		Team: team,
		From: &from,
		To:   &to,
		At:   time.Now(),
	})
	s.turn = s.turn.Opponent()
	s.broadcastLocked(Event{
		Kind: EventMovePlayed, Team: team.String(),
		From: &from, To: &to,
		Turn: s.turn.String(), Board: s.board.String(),
	})
	s.pokeEngineLocked()
	return true
}

// Pass declines to move. Refused while the passing side's own general
// is in check.
func (s *Session) Pass(team board.Team) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Playing || team != s.turn {
		return false
	}
	if board.InCheck(s.board, team) {
		return false
	}
	s.log = append(s.log, replay.Entry{Kind: replay.KindPass, Team: team, At: time.Now()})
	s.turn = s.turn.Opponent()
	s.broadcastLocked(Event{
		Kind: EventPassPlayed, Team: team.String(),
		Turn: s.turn.String(), Board: s.board.String(),
	})
	s.pokeEngineLocked()
	return true
}

// Resign ends the session in the other side's favor.
func (s *Session) Resign(ctx context.Context, team board.Team) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Playing || team == board.TeamNone {
		return false
	}
	return s.finishLocked(ctx, team.Opponent(), ResultResign)
}

// ClaimCheckmate asserts mate against the opponent. The claim is only
// considered when the opponent holds the turn, and it is accepted only
// after re-deriving checkmate on the session's own board; a client
// claim is never trusted.
func (s *Session) ClaimCheckmate(ctx context.Context, team board.Team) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	opp := team.Opponent()
	if s.state != Playing || opp == board.TeamNone || s.turn != opp {
		return false
	}
	if !board.IsCheckmate(s.board, opp) {
		return false
	}
	return s.finishLocked(ctx, team, ResultCheckmate)
}

// Disconnect handles loss of a participant's connection. While playing
// it counts as an immediate resignation by that participant; sessions
// already finished ignore it.
func (s *Session) Disconnect(ctx context.Context, pid uuid.UUID) bool {
	team := s.TeamOf(pid)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Playing || team == board.TeamNone {
		return false
	}
	return s.finishLocked(ctx, team.Opponent(), ResultDisconnect)
}

// Abandonable reports whether the session may still be torn down
// without an outcome. Once playing, only terminal conditions exit.
func (s *Session) Abandonable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == Paired || s.state == SetupPending
}

// finishLocked marks the terminal state and commits the outcome
// exactly once. A failed commit rolls the finished marker back so the
// terminal signal can be retried instead of silently losing the
// result. Must be called with the session lock held.
func (s *Session) finishLocked(ctx context.Context, winner board.Team, kind string) bool {
	prev := s.state
	s.state = Finished
	s.winner = winner
	s.resultKind = kind
	s.endedAt = time.Now()

	rec := s.recordLocked()
	if s.committer != nil {
		if err := s.committer.CommitOutcome(ctx, rec); err != nil {
			// The one failure worth surfacing operationally: an
			// uncommitted outcome risks an orphaned session.
			logging.Errorf("session %s: outcome commit failed: %v", s.ID, err)
			s.state = prev
			return false
		}
	}
	s.broadcastLocked(Event{
		Kind: EventSessionFinished, Winner: winner.String(),
		Result: kind, Board: s.board.String(),
	})
	if s.onCommitted != nil {
		go s.onCommitted(s.ID)
	}
	return true
}

// recordLocked builds the immutable game record for persistence.
func (s *Session) recordLocked() *storage.GameRecord {
	winnerID, loserID := s.teamAID, s.teamBID
	if s.winner == board.TeamB {
		winnerID, loserID = s.teamBID, s.teamAID
	}
	logJSON, _ := json.Marshal(s.log)
	rec := &storage.GameRecord{
		ID:         s.ID,
		TeamAID:    s.teamAID,
		TeamBID:    s.teamBID,
		WinnerID:   winnerID,
		LoserID:    loserID,
		ResultKind: s.resultKind,
		PlyCount:   len(s.log),
		MoveLog:    string(logJSON),
		StartedAt:  s.startedAt,
		EndedAt:    s.endedAt,
	}
	if s.setups[0] != nil {
		rec.SetupA = s.setups[0].String()
	}
	if s.setups[1] != nil {
		rec.SetupB = s.setups[1].String()
	}
	return rec
}
