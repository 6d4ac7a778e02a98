// Package replay reconstructs board history from a stored move log.
package replay

import (
	"time"

	"github.com/yeseoLee/janggi-sub000/internal/board"
)

// Entry kinds. Stored logs may predate schema additions, so decoding
// treats anything unknown as malformed rather than failing.
const (
	KindMove = "move"
	KindPass = "pass"
)

// Entry is one ply of the canonical, append-only match log.
type Entry struct {
	Kind string       `json:"kind"`
	Team board.Team   `json:"team"`
	From *board.Coord `json:"from,omitempty"`
	To   *board.Coord `json:"to,omitempty"`
	At   time.Time    `json:"at"`
}

// Frame is one snapshot of the reconstructed game.
type Frame struct {
	Board  board.Board
	ToMove board.Team
}

// Expand replays a log against the initial position built from both
// setups. Frame 0 is the initial board with team A to move; each valid
// entry appends one frame. No legality is re-checked -- the log was
// produced by an authoritative session -- and malformed entries are
// skipped individually so the rest of the game still reconstructs.
func Expand(setupA, setupB board.Setup, log []Entry) []Frame {
	b := board.NewInitialBoard(setupA, setupB)
	turn := board.TeamA
	frames := make([]Frame, 0, len(log)+1)
	frames = append(frames, Frame{Board: b, ToMove: turn})

	for _, e := range log {
		switch e.Kind {
		case KindMove:
			if e.From == nil || e.To == nil {
				continue
			}
			if !board.InBounds(e.From.R, e.From.C) || !board.InBounds(e.To.R, e.To.C) {
				continue
			}
			if b.PieceAt(e.From.R, e.From.C).IsEmpty() {
				continue
			}
			b = b.WithMove(*e.From, *e.To)
		case KindPass:
			// Board repeats under the flipped turn.
		default:
			continue
		}
		turn = turn.Opponent()
		frames = append(frames, Frame{Board: b, ToMove: turn})
	}
	return frames
}
