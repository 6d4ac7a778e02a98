package board

import "strings"

// Board dimensions: 10 ranks by 9 files of intersections.
const (
	Rows = 10
	Cols = 9
)

// Team identifies one of the two sides. TeamA owns the bottom palace
// (rows 7-9) and moves first; TeamB owns the top palace (rows 0-2).
type Team uint8

const (
	TeamNone Team = iota
	TeamA
	TeamB
)

// Opponent returns the opposing team.
func (t Team) Opponent() Team {
	switch t {
	case TeamA:
		return TeamB
	case TeamB:
		return TeamA
	}
	return TeamNone
}

func (t Team) String() string {
	switch t {
	case TeamA:
		return "A"
	case TeamB:
		return "B"
	}
	return "none"
}

// PieceType enumerates the seven janggi piece kinds.
type PieceType uint8

const (
	NoPiece PieceType = iota
	General
	Guard
	Horse
	Elephant
	Chariot
	Cannon
	Soldier
)

// Piece is the occupant of a single cell. The zero value is an empty cell.
type Piece struct {
	Team Team
	Type PieceType
}

// IsEmpty reports whether the cell holds no piece.
func (p Piece) IsEmpty() bool { return p.Type == NoPiece }

// Coord addresses one intersection. Row 0 is team B's back rank,
// row 9 is team A's back rank.
type Coord struct {
	R int `json:"r"`
	C int `json:"c"`
}

// InBounds reports whether (r,c) lies on the board.
func InBounds(r, c int) bool {
	return r >= 0 && r < Rows && c >= 0 && c < Cols
}

// Board is a value type; WithMove returns a copy so each turn's
// position can be held immutably by sessions and replays.
type Board struct {
	cells [Rows][Cols]Piece
}

// PieceAt returns the piece at (r,c), or the empty piece when the cell
// is vacant or out of range.
func (b Board) PieceAt(r, c int) Piece {
	if !InBounds(r, c) {
		return Piece{}
	}
	return b.cells[r][c]
}

// WithMove returns a new board with the piece at from relocated to to,
// replacing whatever occupied to. Callers must not pass an empty from.
func (b Board) WithMove(from, to Coord) Board {
	nb := b
	nb.cells[to.R][to.C] = nb.cells[from.R][from.C]
	nb.cells[from.R][from.C] = Piece{}
	return nb
}

// Place returns a copy with p at (r,c). The setup builder and tests
// use it to compose positions; live play only ever applies WithMove.
func (b Board) Place(r, c int, p Piece) Board {
	nb := b
	nb.cells[r][c] = p
	return nb
}

// inPalace reports whether (r,c) lies inside either 3x3 palace.
func inPalace(r, c int) bool {
	if c < 3 || c > 5 {
		return false
	}
	return r <= 2 || r >= 7
}

// onPalaceDiagonal reports whether (r,c) is one of the palace cells
// with diagonal lines: the four corners and the center of each palace.
func onPalaceDiagonal(r, c int) bool {
	if !inPalace(r, c) {
		return false
	}
	switch {
	case r == 1 || r == 8:
		return c == 4
	default:
		return c == 3 || c == 5
	}
}

// diagonalStep reports whether a single diagonal step from (r,c) by
// (dr,dc) follows a drawn palace line. Palace diagonals connect each
// corner to the center only, so both endpoints must sit on them.
func diagonalStep(r, c, dr, dc int) bool {
	return onPalaceDiagonal(r, c) && onPalaceDiagonal(r+dr, c+dc)
}

// forward returns the row delta for a team's forward direction.
func forward(t Team) int {
	if t == TeamA {
		return -1
	}
	return 1
}

var pieceLetters = map[PieceType]byte{
	General:  'k',
	Guard:    'a',
	Horse:    'h',
	Elephant: 'e',
	Chariot:  'r',
	Cannon:   'c',
	Soldier:  'p',
}

// String renders the position as a 10-line letter grid, uppercase for
// team A, lowercase for team B, '.' for empty intersections.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := b.cells[r][c]
			if p.IsEmpty() {
				sb.WriteByte('.')
				continue
			}
			ch := pieceLetters[p.Type]
			if p.Team == TeamA {
				ch -= 'a' - 'A'
			}
			sb.WriteByte(ch)
		}
		if r < Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
