// Package engine defines the move-search opponent contract and a
// baseline implementation used when no external engine is attached.
package engine

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/yeseoLee/janggi-sub000/internal/board"
)

// Request is a position handed to an engine for one decision.
type Request struct {
	Board    board.Board
	ToMove   board.Team
	Depth    int
	MoveTime time.Duration
}

// Kind classifies an engine's answer. None must be treated by callers
// exactly like "no legal response available".
type Kind int

const (
	None Kind = iota
	Move
	Pass
)

// Response is the engine's chosen action for a request.
type Response struct {
	Kind Kind
	From board.Coord
	To   board.Coord
}

// Engine is the narrow search contract: the session and the engine
// agree only on board encoding and this request/response shape.
type Engine interface {
	Search(ctx context.Context, req Request) (Response, error)
}

// Random plays a uniformly random legal move, preferring captures.
// It never passes while a move exists and answers None only when no
// move escapes check.
type Random struct {
	rng *rand.Rand
}

// NewRandom seeds a baseline engine.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b9))}
}

type candidate struct {
	from, to board.Coord
	capture  bool
}

func (e *Random) Search(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	var moves, captures []candidate
	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			p := req.Board.PieceAt(r, c)
			if p.IsEmpty() || p.Team != req.ToMove {
				continue
			}
			from := board.Coord{R: r, C: c}
			for _, to := range board.CandidateMoves(req.Board, r, c) {
				if board.InCheck(req.Board.WithMove(from, to), req.ToMove) {
					continue
				}
				cand := candidate{from: from, to: to, capture: !req.Board.PieceAt(to.R, to.C).IsEmpty()}
				moves = append(moves, cand)
				if cand.capture {
					captures = append(captures, cand)
				}
			}
		}
	}
	pool := moves
	if len(captures) > 0 {
		pool = captures
	}
	if len(pool) == 0 {
		return Response{Kind: None}, nil
	}
	pick := pool[e.rng.IntN(len(pool))]
	return Response{Kind: Move, From: pick.from, To: pick.to}, nil
}
