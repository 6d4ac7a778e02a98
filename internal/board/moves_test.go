package board

import "testing"

func contains(moves []Coord, to Coord) bool {
	for _, m := range moves {
		if m == to {
			return true
		}
	}
	return false
}

func TestCandidatesStayInBoundsAndOffTeammates(t *testing.T) {
	b := NewInitialBoard(SetupHEEH, SetupEHHE)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := b.PieceAt(r, c)
			if p.IsEmpty() {
				continue
			}
			for _, m := range CandidateMoves(b, r, c) {
				if !InBounds(m.R, m.C) {
					t.Fatalf("%v at (%d,%d) offers out-of-bounds %v", p.Type, r, c, m)
				}
				if dst := b.PieceAt(m.R, m.C); !dst.IsEmpty() && dst.Team == p.Team {
					t.Fatalf("%v at (%d,%d) offers capture of teammate at %v", p.Type, r, c, m)
				}
			}
		}
	}
}

func TestGeneralOnPalaceCenter(t *testing.T) {
	b := Board{}.Place(1, 4, Piece{TeamB, General})
	moves := CandidateMoves(b, 1, 4)
	if len(moves) != 8 {
		t.Fatalf("general on palace center should reach all 8 palace neighbors, got %d", len(moves))
	}
}

func TestGeneralOffDiagonalCell(t *testing.T) {
	// (0,4) has no diagonal lines, only the three orthogonal steps
	// that stay inside the palace.
	b := Board{}.Place(0, 4, Piece{TeamB, General})
	moves := CandidateMoves(b, 0, 4)
	want := []Coord{{0, 3}, {0, 5}, {1, 4}}
	if len(moves) != len(want) {
		t.Fatalf("expected %d moves, got %v", len(want), moves)
	}
	for _, w := range want {
		if !contains(moves, w) {
			t.Fatalf("missing %v in %v", w, moves)
		}
	}
}

func TestGuardConfinedToPalace(t *testing.T) {
	b := Board{}.Place(0, 3, Piece{TeamB, Guard})
	moves := CandidateMoves(b, 0, 3)
	want := []Coord{{0, 4}, {1, 3}, {1, 4}}
	if len(moves) != len(want) {
		t.Fatalf("guard on palace corner: expected %v, got %v", want, moves)
	}
	for _, w := range want {
		if !contains(moves, w) {
			t.Fatalf("missing %v in %v", w, moves)
		}
	}
}

func TestHorseLegBlocking(t *testing.T) {
	b := Board{}.Place(4, 4, Piece{TeamA, Horse})
	if got := len(CandidateMoves(b, 4, 4)); got != 8 {
		t.Fatalf("free horse should have 8 moves, got %d", got)
	}
	// A blocker on (3,4) kills only the two upward leaps, regardless
	// of whose piece it is.
	for _, team := range []Team{TeamA, TeamB} {
		blocked := b.Place(3, 4, Piece{team, Soldier})
		moves := CandidateMoves(blocked, 4, 4)
		if contains(moves, Coord{2, 3}) || contains(moves, Coord{2, 5}) {
			t.Fatalf("leg blocker (%v) must remove upward leaps, got %v", team, moves)
		}
		if len(moves) != 6 {
			t.Fatalf("only the blocked leaps should vanish, got %v", moves)
		}
	}
}

func TestElephantLegBlocking(t *testing.T) {
	b := Board{}.Place(4, 4, Piece{TeamA, Elephant})
	if got := len(CandidateMoves(b, 4, 4)); got != 8 {
		t.Fatalf("free elephant should have 8 moves, got %d", got)
	}
	// Orthogonal leg at (3,4) blocks both upward long leaps.
	blocked := b.Place(3, 4, Piece{TeamB, Soldier})
	moves := CandidateMoves(blocked, 4, 4)
	if contains(moves, Coord{1, 2}) || contains(moves, Coord{1, 6}) {
		t.Fatalf("orthogonal leg blocker must remove both leaps, got %v", moves)
	}
	if len(moves) != 6 {
		t.Fatalf("expected 6 moves, got %v", moves)
	}
	// Diagonal leg at (2,3) blocks exactly one leap.
	blocked = b.Place(2, 3, Piece{TeamA, Soldier})
	moves = CandidateMoves(blocked, 4, 4)
	if contains(moves, Coord{1, 2}) {
		t.Fatalf("diagonal leg blocker must remove (1,2), got %v", moves)
	}
	if len(moves) != 7 {
		t.Fatalf("expected 7 moves, got %v", moves)
	}
}

func TestChariotSlideAndCapture(t *testing.T) {
	b := Board{}.
		Place(4, 4, Piece{TeamA, Chariot}).
		Place(4, 6, Piece{TeamB, Soldier})
	moves := CandidateMoves(b, 4, 4)
	if !contains(moves, Coord{4, 6}) {
		t.Fatalf("chariot should capture the first enemy on the ray")
	}
	if contains(moves, Coord{4, 7}) {
		t.Fatalf("chariot must not slide past a capture")
	}

	friendly := b.Place(4, 6, Piece{TeamA, Soldier})
	moves = CandidateMoves(friendly, 4, 4)
	if contains(moves, Coord{4, 6}) || contains(moves, Coord{4, 7}) {
		t.Fatalf("chariot must stop before a teammate")
	}
}

func TestChariotPalaceDiagonal(t *testing.T) {
	b := Board{}.Place(0, 3, Piece{TeamB, Chariot})
	moves := CandidateMoves(b, 0, 3)
	if !contains(moves, Coord{1, 4}) || !contains(moves, Coord{2, 5}) {
		t.Fatalf("chariot on a palace corner should slide the full diagonal, got %v", moves)
	}
	// Off the diagonal cells there is no diagonal ray.
	b = Board{}.Place(1, 3, Piece{TeamB, Chariot})
	for _, m := range CandidateMoves(b, 1, 3) {
		if m.R != 1 && m.C != 3 {
			t.Fatalf("chariot off the palace diagonal moved diagonally to %v", m)
		}
	}
}

func TestCannonNeedsExactlyOneScreen(t *testing.T) {
	b := Board{}.Place(4, 0, Piece{TeamA, Cannon})
	if moves := CandidateMoves(b, 4, 0); len(moves) != 0 {
		t.Fatalf("cannon with no screen cannot move, got %v", moves)
	}

	one := b.Place(6, 0, Piece{TeamB, Soldier})
	moves := CandidateMoves(one, 4, 0)
	for _, w := range []Coord{{7, 0}, {8, 0}, {9, 0}} {
		if !contains(moves, w) {
			t.Fatalf("missing landing %v past the screen, got %v", w, moves)
		}
	}
	if contains(moves, Coord{5, 0}) || contains(moves, Coord{6, 0}) {
		t.Fatalf("cannon may not land on or before its screen, got %v", moves)
	}

	// With two intervening pieces the cannon lands just past the first.
	two := one.Place(8, 0, Piece{TeamB, Soldier})
	moves = CandidateMoves(two, 4, 0)
	if !contains(moves, Coord{7, 0}) || !contains(moves, Coord{8, 0}) {
		t.Fatalf("cannon should reach up to the first piece past the screen, got %v", moves)
	}
	if contains(moves, Coord{9, 0}) {
		t.Fatalf("cannon must stop at the first piece past the screen, got %v", moves)
	}
}

func TestCannonRejectsCannons(t *testing.T) {
	// Another cannon can never serve as the screen.
	b := Board{}.
		Place(4, 0, Piece{TeamA, Cannon}).
		Place(6, 0, Piece{TeamB, Cannon})
	if moves := CandidateMoves(b, 4, 0); len(moves) != 0 {
		t.Fatalf("cannon screen must not be a cannon, got %v", moves)
	}
	// Nor can a cannon be the capture target.
	b = Board{}.
		Place(4, 0, Piece{TeamA, Cannon}).
		Place(6, 0, Piece{TeamB, Soldier}).
		Place(8, 0, Piece{TeamB, Cannon})
	moves := CandidateMoves(b, 4, 0)
	if contains(moves, Coord{8, 0}) {
		t.Fatalf("cannon must not capture a cannon, got %v", moves)
	}
	if !contains(moves, Coord{7, 0}) {
		t.Fatalf("empty landing before the enemy cannon is still legal, got %v", moves)
	}
}

func TestCannonPalaceDiagonalJump(t *testing.T) {
	b := Board{}.
		Place(7, 3, Piece{TeamA, Cannon}).
		Place(8, 4, Piece{TeamB, Soldier})
	moves := CandidateMoves(b, 7, 3)
	if !contains(moves, Coord{9, 5}) {
		t.Fatalf("cannon should jump the palace diagonal over a screen, got %v", moves)
	}
}

func TestSoldierNeverMovesBackward(t *testing.T) {
	a := Board{}.Place(5, 4, Piece{TeamA, Soldier})
	moves := CandidateMoves(a, 5, 4)
	want := []Coord{{4, 4}, {5, 3}, {5, 5}}
	if len(moves) != len(want) {
		t.Fatalf("team A soldier: expected %v, got %v", want, moves)
	}
	if contains(moves, Coord{6, 4}) {
		t.Fatalf("team A soldier moved backward")
	}

	b := Board{}.Place(5, 4, Piece{TeamB, Soldier})
	moves = CandidateMoves(b, 5, 4)
	if !contains(moves, Coord{6, 4}) || contains(moves, Coord{4, 4}) {
		t.Fatalf("team B soldier forward is down the board, got %v", moves)
	}
}

func TestSoldierPalaceDiagonalForwardOnly(t *testing.T) {
	// An advancing team A soldier on the enemy palace corner may step
	// diagonally toward the center, forward only.
	b := Board{}.Place(2, 3, Piece{TeamA, Soldier})
	moves := CandidateMoves(b, 2, 3)
	if !contains(moves, Coord{1, 4}) {
		t.Fatalf("soldier on palace corner should step the forward diagonal, got %v", moves)
	}
	// From the palace center both forward diagonals open up.
	b = Board{}.Place(1, 4, Piece{TeamA, Soldier})
	moves = CandidateMoves(b, 1, 4)
	if !contains(moves, Coord{0, 3}) || !contains(moves, Coord{0, 5}) {
		t.Fatalf("soldier on palace center should reach both forward corners, got %v", moves)
	}
}
