package engine

import (
	"context"
	"testing"

	"github.com/yeseoLee/janggi-sub000/internal/board"
)

func TestRandomPicksLegalMove(t *testing.T) {
	e := NewRandom(1)
	req := Request{
		Board:  board.NewInitialBoard(board.SetupHEHE, board.SetupHEHE),
		ToMove: board.TeamA,
	}
	resp, err := e.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if resp.Kind != Move {
		t.Fatalf("the opening position has moves, got kind %v", resp.Kind)
	}
	legal := false
	for _, m := range board.CandidateMoves(req.Board, resp.From.R, resp.From.C) {
		if m == resp.To {
			legal = true
		}
	}
	if !legal {
		t.Fatalf("engine chose illegal move %v -> %v", resp.From, resp.To)
	}
	if p := req.Board.PieceAt(resp.From.R, resp.From.C); p.Team != board.TeamA {
		t.Fatalf("engine moved the wrong side's piece")
	}
}

func TestRandomPrefersCapture(t *testing.T) {
	// One capture available: the chariot can take the soldier.
	b := board.Board{}.
		Place(8, 4, board.Piece{Team: board.TeamA, Type: board.General}).
		Place(4, 4, board.Piece{Team: board.TeamA, Type: board.Chariot}).
		Place(4, 7, board.Piece{Team: board.TeamB, Type: board.Soldier}).
		Place(1, 3, board.Piece{Team: board.TeamB, Type: board.General})
	e := NewRandom(3)
	for i := 0; i < 10; i++ {
		resp, err := e.Search(context.Background(), Request{Board: b, ToMove: board.TeamA})
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if resp.Kind != Move || resp.To != (board.Coord{R: 4, C: 7}) {
			t.Fatalf("expected the capture every time, got %+v", resp)
		}
	}
}

func TestRandomAnswersNoneWhenMated(t *testing.T) {
	// Team B's general is mated: every move stays in check.
	b := board.Board{}.
		Place(0, 4, board.Piece{Team: board.TeamB, Type: board.General}).
		Place(5, 4, board.Piece{Team: board.TeamA, Type: board.Chariot}).
		Place(1, 3, board.Piece{Team: board.TeamA, Type: board.Soldier}).
		Place(1, 5, board.Piece{Team: board.TeamA, Type: board.Soldier})
	e := NewRandom(5)
	resp, err := e.Search(context.Background(), Request{Board: b, ToMove: board.TeamB})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if resp.Kind != None {
		t.Fatalf("no legal response available, expected none, got %+v", resp)
	}
}
