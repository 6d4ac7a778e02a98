package board

// findGeneral returns the cell holding the team's general. The second
// result is false when the general is absent, which only happens on
// hand-built test positions.
func findGeneral(b Board, team Team) (Coord, bool) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := b.cells[r][c]
			if p.Type == General && p.Team == team {
				return Coord{r, c}, true
			}
		}
	}
	return Coord{}, false
}

// InCheck reports whether the team's general is attacked by any
// opposing piece.
func InCheck(b Board, team Team) bool {
	gen, ok := findGeneral(b, team)
	if !ok {
		return false
	}
	opp := team.Opponent()
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := b.cells[r][c]
			if p.IsEmpty() || p.Team != opp {
				continue
			}
			for _, m := range CandidateMoves(b, r, c) {
				if m == gen {
					return true
				}
			}
		}
	}
	return false
}

// HasLegalResponse reports whether the team owns at least one move
// whose application leaves its own general out of check.
func HasLegalResponse(b Board, team Team) bool {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := b.cells[r][c]
			if p.IsEmpty() || p.Team != team {
				continue
			}
			from := Coord{r, c}
			for _, to := range CandidateMoves(b, r, c) {
				if !InCheck(b.WithMove(from, to), team) {
					return true
				}
			}
		}
	}
	return false
}

// IsCheckmate reports whether the team is in check with no legal
// response. O(pieces x candidates x check test); fine at turn rates,
// not meant for search inner loops.
func IsCheckmate(b Board, team Team) bool {
	return InCheck(b, team) && !HasLegalResponse(b, team)
}
