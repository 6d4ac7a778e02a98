package board

import (
	"fmt"
	"strings"
)

// Setup is one of the four legal opening arrangements. The name reads
// the horse/elephant order across a team's back-rank wing columns
// (1, 2, 6, 7) from that team's own left.
type Setup int

const (
	SetupHEEH Setup = iota // horse-elephant / elephant-horse
	SetupEHHE              // elephant-horse / horse-elephant
	SetupHEHE              // horse-elephant / horse-elephant
	SetupEHEH              // elephant-horse / elephant-horse
)

var setupNames = map[Setup]string{
	SetupHEEH: "heeh",
	SetupEHHE: "ehhe",
	SetupHEHE: "hehe",
	SetupEHEH: "eheh",
}

func (s Setup) String() string {
	if n, ok := setupNames[s]; ok {
		return n
	}
	return fmt.Sprintf("setup(%d)", int(s))
}

// ParseSetup converts a wire name like "heeh" back into a Setup.
func ParseSetup(name string) (Setup, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range setupNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown setup %q", name)
}

// wingOrder returns the piece types on columns 1, 2, 6, 7 as seen from
// team A's side of the board.
func (s Setup) wingOrder() [4]PieceType {
	switch s {
	case SetupHEEH:
		return [4]PieceType{Horse, Elephant, Elephant, Horse}
	case SetupEHHE:
		return [4]PieceType{Elephant, Horse, Horse, Elephant}
	case SetupHEHE:
		return [4]PieceType{Horse, Elephant, Horse, Elephant}
	default:
		return [4]PieceType{Elephant, Horse, Elephant, Horse}
	}
}

// NewInitialBoard builds the deterministic starting position from both
// teams' independently chosen setups. Team B's wing columns are
// mirrored so each team's arrangement reads from its own left.
func NewInitialBoard(setupA, setupB Setup) Board {
	var b Board

	wingCols := [4]int{1, 2, 6, 7}
	wa := setupA.wingOrder()
	wb := setupB.wingOrder()
	for i, c := range wingCols {
		b = b.Place(9, c, Piece{TeamA, wa[i]})
		b = b.Place(0, 8-c, Piece{TeamB, wb[i]})
	}

	for _, c := range []int{0, 8} {
		b = b.Place(9, c, Piece{TeamA, Chariot})
		b = b.Place(0, c, Piece{TeamB, Chariot})
	}
	for _, c := range []int{3, 5} {
		b = b.Place(9, c, Piece{TeamA, Guard})
		b = b.Place(0, c, Piece{TeamB, Guard})
	}

	// Generals start on the palace center point.
	b = b.Place(8, 4, Piece{TeamA, General})
	b = b.Place(1, 4, Piece{TeamB, General})

	for _, c := range []int{1, 7} {
		b = b.Place(7, c, Piece{TeamA, Cannon})
		b = b.Place(2, c, Piece{TeamB, Cannon})
	}
	for c := 0; c < Cols; c += 2 {
		b = b.Place(6, c, Piece{TeamA, Soldier})
		b = b.Place(3, c, Piece{TeamB, Soldier})
	}
	return b
}
