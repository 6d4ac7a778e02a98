// Package rank converts match results into tier progression updates.
package rank

// Tiers run from 0 (lowest novice grade) to 26 (highest master grade).
const (
	MinTier = 0
	MaxTier = 26
)

// Result is the outcome of one finished match from one side's view.
type Result int

const (
	Win Result = iota
	Loss
)

// State is a participant's persisted progression counters.
type State struct {
	Tier           int
	ProgressWins   int
	ProgressLosses int
}

// Threshold returns how many accumulated results move a tier at the
// given grade: 3 in the novice band, 5 in the middle band, 7 in the
// master band.
func Threshold(tier int) int {
	switch {
	case tier < 9:
		return 3
	case tier < 18:
		return 5
	default:
		return 7
	}
}

// Resolve applies one result to a rank state and returns the updated
// state. At most one tier step is applied per result; counters reset
// on any tier change. When movement in the relevant direction is
// impossible (already at an extreme tier) the counter is clamped to
// the threshold instead of growing without bound. An out-of-range
// input tier is treated as the lowest tier.
func Resolve(s State, res Result) State {
	if s.Tier < MinTier || s.Tier > MaxTier {
		s.Tier = MinTier
	}
	if res == Win {
		s.ProgressWins++
	} else {
		s.ProgressLosses++
	}

	limit := Threshold(s.Tier)
	switch {
	case s.ProgressWins >= limit && s.Tier < MaxTier:
		return State{Tier: s.Tier + 1}
	case s.ProgressLosses >= limit && s.Tier > MinTier:
		return State{Tier: s.Tier - 1}
	}
	if s.ProgressWins > limit {
		s.ProgressWins = limit
	}
	if s.ProgressLosses > limit {
		s.ProgressLosses = limit
	}
	return s
}
