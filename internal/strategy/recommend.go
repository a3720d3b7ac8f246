package strategy

import (
	"slices"

	"github.com/lox/postflop/internal/classification"
)

// Recommendation is the single best action for a situation plus the ranked
// alternatives behind it.
type Recommendation struct {
	Action       Action
	Alternatives []Action
}

// SelectBest ranks a strategy line by frequency, highest first, and splits
// off the top action. The sort is stable so ties keep table order. A nil
// result means the line was empty and there is no guidance.
func SelectBest(actions []Action) *Recommendation {
	if len(actions) == 0 {
		return nil
	}

	ranked := cloneActions(actions)
	slices.SortStableFunc(ranked, func(a, b Action) int {
		return b.Frequency - a.Frequency
	})

	return &Recommendation{
		Action:       ranked[0],
		Alternatives: ranked[1:],
	}
}

// Recommend looks up the strategy line for a situation and selects the best
// action. Nil means the table has no data for the combination.
func (t *Table) Recommend(street Street, sc Scenario, tex classification.BoardTexture, hs classification.HandStrength) *Recommendation {
	return SelectBest(t.Lookup(street, sc, tex, hs))
}
