// Package strategy maps classified poker situations to weighted action
// recommendations. The table itself is static configuration loaded once at
// startup; everything in this package is read-only after that, so concurrent
// lookups need no synchronization.
package strategy

import "slices"

// ActionKind identifies a recommended postflop action.
type ActionKind int

const (
	Fold ActionKind = iota
	Check
	Call
	Bet
	Raise
	AllIn
)

func (k ActionKind) String() string {
	switch k {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Bet:
		return "bet"
	case Raise:
		return "raise"
	case AllIn:
		return "allin"
	default:
		return "unknown"
	}
}

// ParseActionKind maps an action name back to its variant.
func ParseActionKind(s string) (ActionKind, bool) {
	for k := Fold; k <= AllIn; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return Fold, false
}

// Action is one weighted entry in a strategy line.
type Action struct {
	Kind      ActionKind
	Frequency int     // percent of the time this action is taken, 0..100
	Size      int     // bet size as a percent of pot, 0 when not applicable
	EV        float64 // expected value in pot units
}

// IsAggressive reports whether the action puts chips in as a bet or raise.
func (a Action) IsAggressive() bool {
	return a.Kind == Bet || a.Kind == Raise
}

// cloneActions copies an action list so adjusters never mutate table data or
// caller inputs.
func cloneActions(actions []Action) []Action {
	return slices.Clone(actions)
}
