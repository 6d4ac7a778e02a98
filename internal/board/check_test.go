package board

import "testing"

// mateBoard: team B's general on (0,4) is checked by the chariot on
// the open file while both escape corners are covered by soldiers.
func mateBoard() Board {
	return Board{}.
		Place(0, 4, Piece{TeamB, General}).
		Place(5, 4, Piece{TeamA, Chariot}).
		Place(1, 3, Piece{TeamA, Soldier}).
		Place(1, 5, Piece{TeamA, Soldier})
}

func TestInCheck(t *testing.T) {
	b := mateBoard()
	if !InCheck(b, TeamB) {
		t.Fatalf("team B should be in check from the chariot")
	}
	if InCheck(b, TeamA) {
		t.Fatalf("team A has no general on this board and cannot be in check")
	}
}

func TestIsCheckmate(t *testing.T) {
	b := mateBoard()
	if !IsCheckmate(b, TeamB) {
		t.Fatalf("expected checkmate:\n%s", b)
	}
}

func TestCheckmateNeedsCheck(t *testing.T) {
	// Remove the checking chariot: no check, so no mate.
	b := Board{}.
		Place(0, 4, Piece{TeamB, General}).
		Place(1, 3, Piece{TeamA, Soldier}).
		Place(1, 5, Piece{TeamA, Soldier})
	if InCheck(b, TeamB) {
		t.Fatalf("no piece attacks the general")
	}
	if IsCheckmate(b, TeamB) {
		t.Fatalf("cannot be mate without check")
	}
}

func TestCheckmateNeedsNoResponse(t *testing.T) {
	// A defending chariot on the fifth rank can capture the checker.
	b := mateBoard().Place(5, 0, Piece{TeamB, Chariot})
	if !InCheck(b, TeamB) {
		t.Fatalf("team B is still in check before responding")
	}
	if !HasLegalResponse(b, TeamB) {
		t.Fatalf("capturing the checker is a legal response:\n%s", b)
	}
	if IsCheckmate(b, TeamB) {
		t.Fatalf("not mate while a response exists")
	}
}

func TestEveryMoveStillInCheckMeansMate(t *testing.T) {
	b := mateBoard()
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := b.PieceAt(r, c)
			if p.IsEmpty() || p.Team != TeamB {
				continue
			}
			for _, to := range CandidateMoves(b, r, c) {
				if !InCheck(b.WithMove(Coord{r, c}, to), TeamB) {
					t.Fatalf("move (%d,%d)->%v escapes check, mate test is wrong", r, c, to)
				}
			}
		}
	}
}
