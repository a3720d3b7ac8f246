package classification

import "github.com/lox/postflop/internal/deck"

// HandStrength is the coarse bucket a hand falls into against a board.
// Ordered strongest to weakest, though Draw sits outside the made-hand
// ordering.
type HandStrength int

const (
	Nuts HandStrength = iota
	Strong
	Medium
	Marginal
	Weak
	Draw
	Air
)

// HandStrengthCount is the number of HandStrength variants, used for
// enum-indexed strategy tables.
const HandStrengthCount = int(Air) + 1

func (hs HandStrength) String() string {
	switch hs {
	case Nuts:
		return "nuts"
	case Strong:
		return "strong"
	case Medium:
		return "medium"
	case Marginal:
		return "marginal"
	case Weak:
		return "weak"
	case Draw:
		return "draw"
	case Air:
		return "air"
	default:
		return "unknown"
	}
}

// ParseHandStrength maps a strength name back to its variant.
func ParseHandStrength(s string) (HandStrength, bool) {
	for hs := Nuts; hs <= Air; hs++ {
		if hs.String() == s {
			return hs, true
		}
	}
	return Air, false
}

// EvaluateStrength buckets a two-card hand against the board. It is
// intentionally coarse and is not a full seven-card ranking.
//
// The top-pair and kicker logic inspects only the single highest board card.
// It ignores board pairing, counterfeited kickers and multiple pair
// interactions. That simplification comes from the calibration of the
// strategy tables and must not be "fixed" here.
func EvaluateStrength(hole, board []deck.Card) HandStrength {
	all := combined(hole, board)
	rankCounts := countRanks(all)
	suitCounts := countSuits(all)

	var pairs, trips, quads int
	for _, count := range rankCounts {
		switch count {
		case 2:
			pairs++
		case 3:
			trips++
		case 4:
			quads++
		}
	}

	flush := false
	for _, count := range suitCounts {
		if count >= 5 {
			flush = true
		}
	}

	if flush || quads > 0 || (trips > 0 && pairs > 0) {
		return Nuts
	}
	if trips > 0 || pairs >= 2 {
		return Strong
	}

	if len(board) >= 3 {
		_, topBoard := rankBounds(board)

		if int(hole[0].Rank) == topBoard || int(hole[1].Rank) == topBoard {
			kicker := hole[0].Rank
			if int(hole[0].Rank) == topBoard {
				kicker = hole[1].Rank
			}
			if kicker >= deck.Ten {
				return Medium
			}
			if kicker >= deck.Seven {
				return Marginal
			}
		}

		// any other pair with the board plays as middle/bottom pair
		for _, hc := range hole {
			for _, bc := range board {
				if hc.Rank == bc.Rank {
					return Weak
				}
			}
		}
	}

	for _, count := range suitCounts {
		if count >= 4 {
			return Draw
		}
	}
	ranks := uniqueRanks(all)
	for i := 0; i+3 < len(ranks); i++ {
		if ranks[i+3]-ranks[i] <= 4 {
			return Draw
		}
	}

	return Air
}
