package strategy

import (
	"math"

	"github.com/lox/postflop/internal/classification"
)

// ForMultiway rescales a strategy line for the number of players contesting
// the pot. Heads-up is the identity. With more players in, bets and raises
// get through less often, so their frequency and EV shrink while fold
// frequency grows by the same margin. Checks and calls pass through.
//
// The input is never mutated; adjusted lists are fresh copies.
func ForMultiway(actions []Action, players PlayerCount) []Action {
	var mult float64
	switch players {
	case ThreeWay:
		mult = 0.7
	case MultiWay:
		mult = 0.5
	default:
		return actions
	}

	out := cloneActions(actions)
	for i, action := range out {
		switch action.Kind {
		case Bet, Raise:
			out[i].Frequency = roundFreq(float64(action.Frequency) * mult)
			out[i].EV = action.EV * mult
		case Fold:
			scaled := float64(action.Frequency) * (1 + (1 - mult))
			out[i].Frequency = min(roundFreq(scaled), 100)
		}
	}
	return out
}

// ForSPR rescales a strategy line for stack depth. Micro stacks check less
// and jam more; small stacks turn big bets into jams outright; deep stacks
// size down. Medium and large SPR pass through unchanged.
//
// Action identity is preserved except for the explicit bet-to-allin
// conversion in the small bucket.
func ForSPR(actions []Action, spr classification.SPRCategory) []Action {
	switch spr {
	case classification.MicroSPR:
		out := cloneActions(actions)
		for i, action := range out {
			switch action.Kind {
			case Check:
				out[i].Frequency = roundFreq(float64(action.Frequency) * 0.5)
			case AllIn:
				out[i].Frequency = roundFreq(float64(action.Frequency) * 1.5)
			}
		}
		return out

	case classification.SmallSPR:
		out := cloneActions(actions)
		for i, action := range out {
			// a bet of three quarters pot or more commits the stack anyway
			if action.Kind == Bet && action.Size >= 75 {
				out[i].Kind = AllIn
				out[i].Size = 0
			}
		}
		return out

	case classification.DeepSPR:
		out := cloneActions(actions)
		for i, action := range out {
			if action.Kind == Bet && action.Size > 0 {
				out[i].Size = max(action.Size-15, 25)
			}
		}
		return out

	default:
		return actions
	}
}

func roundFreq(f float64) int {
	return int(math.Round(f))
}
