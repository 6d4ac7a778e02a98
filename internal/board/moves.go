package board

var orthoDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
var diagDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// horseLegs lists the eight horse destinations with the orthogonal
// cell that blocks each leap.
var horseLegs = [8]struct {
	dr, dc int
	br, bc int
}{
	{-2, -1, -1, 0},
	{-2, 1, -1, 0},
	{2, -1, 1, 0},
	{2, 1, 1, 0},
	{-1, -2, 0, -1},
	{1, -2, 0, -1},
	{-1, 2, 0, 1},
	{1, 2, 0, 1},
}

// elephantLegs lists the eight elephant destinations with both cells
// that block the leap: the orthogonal step and the first diagonal step.
var elephantLegs = [8]struct {
	dr, dc   int
	b1r, b1c int
	b2r, b2c int
}{
	{-3, -2, -1, 0, -2, -1},
	{-3, 2, -1, 0, -2, 1},
	{3, -2, 1, 0, 2, -1},
	{3, 2, 1, 0, 2, 1},
	{-2, -3, 0, -1, -1, -2},
	{-2, 3, 0, 1, -1, 2},
	{2, -3, 0, -1, 1, -2},
	{2, 3, 0, 1, 1, 2},
}

// CandidateMoves returns every destination the piece at (r,c) may move
// to under its own movement geometry and the current occupancy. The
// cell must be occupied. Destinations occupied by a same-team piece
// are excluded; exposure of one's own general is not filtered here.
func CandidateMoves(b Board, r, c int) []Coord {
	p := b.PieceAt(r, c)
	if p.IsEmpty() {
		return nil
	}
	var out []Coord
	switch p.Type {
	case General, Guard:
		out = palaceStepMoves(b, r, c, p.Team)
	case Horse:
		out = horseMoves(b, r, c, p.Team)
	case Elephant:
		out = elephantMoves(b, r, c, p.Team)
	case Chariot:
		out = chariotMoves(b, r, c, p.Team)
	case Cannon:
		out = cannonMoves(b, r, c, p.Team)
	case Soldier:
		out = soldierMoves(b, r, c, p.Team)
	}
	return out
}

// appendIfLandable appends (r,c) when it is on the board and not held
// by a same-team piece.
func appendIfLandable(out []Coord, b Board, r, c int, team Team) []Coord {
	if !InBounds(r, c) {
		return out
	}
	if dst := b.PieceAt(r, c); !dst.IsEmpty() && dst.Team == team {
		return out
	}
	return append(out, Coord{r, c})
}

// palaceStepMoves: the general and guards take one step along any line
// drawn at their current palace cell and never leave the palace.
func palaceStepMoves(b Board, r, c int, team Team) []Coord {
	var out []Coord
	for _, d := range orthoDirs {
		nr, nc := r+d[0], c+d[1]
		if !inPalace(nr, nc) {
			continue
		}
		out = appendIfLandable(out, b, nr, nc, team)
	}
	for _, d := range diagDirs {
		if !diagonalStep(r, c, d[0], d[1]) {
			continue
		}
		out = appendIfLandable(out, b, r+d[0], c+d[1], team)
	}
	return out
}

func horseMoves(b Board, r, c int, team Team) []Coord {
	var out []Coord
	for _, m := range horseLegs {
		if !InBounds(r+m.dr, c+m.dc) {
			continue
		}
		if !b.PieceAt(r+m.br, c+m.bc).IsEmpty() {
			continue
		}
		out = appendIfLandable(out, b, r+m.dr, c+m.dc, team)
	}
	return out
}

func elephantMoves(b Board, r, c int, team Team) []Coord {
	var out []Coord
	for _, m := range elephantLegs {
		if !InBounds(r+m.dr, c+m.dc) {
			continue
		}
		if !b.PieceAt(r+m.b1r, c+m.b1c).IsEmpty() {
			continue
		}
		if !b.PieceAt(r+m.b2r, c+m.b2c).IsEmpty() {
			continue
		}
		out = appendIfLandable(out, b, r+m.dr, c+m.dc, team)
	}
	return out
}

// slide walks one ray, collecting empty cells and stopping at the
// first occupied cell, which is included only as an enemy capture.
// step reports whether advancing from (r,c) by (dr,dc) stays on a
// legal line for this piece.
func slide(out []Coord, b Board, r, c, dr, dc int, team Team, step func(r, c int) bool) []Coord {
	for step(r, c) {
		r += dr
		c += dc
		dst := b.PieceAt(r, c)
		if dst.IsEmpty() {
			out = append(out, Coord{r, c})
			continue
		}
		if dst.Team != team {
			out = append(out, Coord{r, c})
		}
		break
	}
	return out
}

func chariotMoves(b Board, r, c int, team Team) []Coord {
	var out []Coord
	for _, d := range orthoDirs {
		dr, dc := d[0], d[1]
		out = slide(out, b, r, c, dr, dc, team, func(r, c int) bool {
			return InBounds(r+dr, c+dc)
		})
	}
	for _, d := range diagDirs {
		dr, dc := d[0], d[1]
		out = slide(out, b, r, c, dr, dc, team, func(r, c int) bool {
			return diagonalStep(r, c, dr, dc)
		})
	}
	return out
}

// cannonRay emits the landings beyond exactly one screen on a single
// ray. The screen may not be a cannon, and a cannon is never captured.
func cannonRay(out []Coord, b Board, r, c, dr, dc int, team Team, step func(r, c int) bool) []Coord {
	// Advance to the screen.
	for step(r, c) {
		r += dr
		c += dc
		if !b.PieceAt(r, c).IsEmpty() {
			break
		}
	}
	screen := b.PieceAt(r, c)
	if screen.IsEmpty() || screen.Type == Cannon {
		return out
	}
	// Landings past the screen, up to and including the first piece.
	for step(r, c) {
		r += dr
		c += dc
		dst := b.PieceAt(r, c)
		if dst.IsEmpty() {
			out = append(out, Coord{r, c})
			continue
		}
		if dst.Team != team && dst.Type != Cannon {
			out = append(out, Coord{r, c})
		}
		break
	}
	return out
}

func cannonMoves(b Board, r, c int, team Team) []Coord {
	var out []Coord
	for _, d := range orthoDirs {
		dr, dc := d[0], d[1]
		out = cannonRay(out, b, r, c, dr, dc, team, func(r, c int) bool {
			return InBounds(r+dr, c+dc)
		})
	}
	for _, d := range diagDirs {
		dr, dc := d[0], d[1]
		out = cannonRay(out, b, r, c, dr, dc, team, func(r, c int) bool {
			return diagonalStep(r, c, dr, dc)
		})
	}
	return out
}

// soldierMoves: one step forward or sideways, plus a forward diagonal
// step where a palace line allows it. Soldiers never step backward.
func soldierMoves(b Board, r, c int, team Team) []Coord {
	fwd := forward(team)
	var out []Coord
	for _, d := range [3][2]int{{fwd, 0}, {0, -1}, {0, 1}} {
		out = appendIfLandable(out, b, r+d[0], c+d[1], team)
	}
	for _, dc := range []int{-1, 1} {
		if !diagonalStep(r, c, fwd, dc) {
			continue
		}
		out = appendIfLandable(out, b, r+fwd, c+dc, team)
	}
	return out
}
