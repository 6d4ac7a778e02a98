package match

import (
	"context"

	"github.com/yeseoLee/janggi-sub000/internal/board"
	"github.com/yeseoLee/janggi-sub000/internal/engine"
	"github.com/yeseoLee/janggi-sub000/internal/logging"
)

// pokeEngineLocked schedules an engine turn when an engine opponent
// is attached and holds the move. Must be called with the lock held.
func (s *Session) pokeEngineLocked() {
	if s.eng == nil || s.state != Playing || s.turn != s.engineTeam {
		return
	}
	go s.runEngineTurn()
}

// runEngineTurn asks the attached engine for one decision and feeds it
// back through the same validated entry points a remote participant
// uses. A "none" answer means no legal response, which the engine
// concedes.
func (s *Session) runEngineTurn() {
	s.mu.Lock()
	if s.eng == nil || s.state != Playing || s.turn != s.engineTeam {
		s.mu.Unlock()
		return
	}
	req := s.engineCfg
	req.Board = s.board
	req.ToMove = s.engineTeam
	eng := s.eng
	s.mu.Unlock()

	ctx := context.Background()
	if req.MoveTime > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.MoveTime)
		defer cancel()
	}
	resp, err := eng.Search(ctx, req)
	if err != nil {
		logging.Errorf("session %s: engine search failed: %v", s.ID, err)
		s.Resign(context.Background(), s.engineTeam)
		return
	}
	switch resp.Kind {
	case engine.Move:
		if !s.SubmitMove(s.engineTeam, resp.From, resp.To) {
			logging.Errorf("session %s: engine produced illegal move %v-%v", s.ID, resp.From, resp.To)
			s.Resign(context.Background(), s.engineTeam)
		}
	case engine.Pass:
		if !s.Pass(s.engineTeam) {
			s.Resign(context.Background(), s.engineTeam)
		}
	default:
		s.Resign(context.Background(), s.engineTeam)
	}
}

// attachEngine wires an engine opponent to one side and submits its
// opening arrangement right away.
func (s *Session) attachEngine(eng engine.Engine, team board.Team, cfg engine.Request) {
	s.mu.Lock()
	s.eng = eng
	s.engineTeam = team
	s.engineCfg = cfg
	s.mu.Unlock()
	s.SubmitSetup(team, board.SetupHEHE)
}
