// Package classification turns raw cards into the discrete situational
// categories consumed by the strategy layer: board texture, draw type,
// hand-strength bucket and stack-to-pot-ratio bucket.
//
// Every function here is pure and deterministic over immutable inputs, so any
// number of concurrent callers may use them without synchronization.
package classification

import "github.com/lox/postflop/internal/deck"

// BoardTexture is a mutually exclusive, precedence-ordered classification of
// the community cards.
type BoardTexture int

const (
	Dry BoardTexture = iota
	Wet
	Monotone
	Paired
	Connected
	High
	Low
	AceHigh
)

// BoardTextureCount is the number of BoardTexture variants, used for
// enum-indexed strategy tables.
const BoardTextureCount = int(AceHigh) + 1

func (bt BoardTexture) String() string {
	switch bt {
	case Dry:
		return "dry"
	case Wet:
		return "wet"
	case Monotone:
		return "monotone"
	case Paired:
		return "paired"
	case Connected:
		return "connected"
	case High:
		return "high"
	case Low:
		return "low"
	case AceHigh:
		return "ace_high"
	default:
		return "unknown"
	}
}

// ParseBoardTexture maps a texture name back to its variant.
func ParseBoardTexture(s string) (BoardTexture, bool) {
	for bt := Dry; bt <= AceHigh; bt++ {
		if bt.String() == s {
			return bt, true
		}
	}
	return Dry, false
}

// ClassifyBoard categorizes three or more community cards. Boards with fewer
// than three cards classify as Dry by contract, not as an error.
//
// The rules are checked in strict precedence order and the first match wins.
// Several rules can hold at once (a board can be both paired and high); the
// ordering is deliberate and the strategy tables are calibrated against it.
func ClassifyBoard(board []deck.Card) BoardTexture {
	if len(board) < 3 {
		return Dry
	}

	suitCounts := countSuits(board)
	rankCounts := countRanks(board)

	// monotone: three or more of one suit
	for _, count := range suitCounts {
		if count >= 3 {
			return Monotone
		}
	}

	// paired: any repeated rank
	for _, count := range rankCounts {
		if count >= 2 {
			return Paired
		}
	}

	minRank, maxRank := rankBounds(board)
	if maxRank-minRank <= 4 {
		return Connected
	}

	// wet: two to a flush
	for _, count := range suitCounts {
		if count == 2 {
			return Wet
		}
	}

	if maxRank == int(deck.Ace) {
		return AceHigh
	}

	sum := 0
	for _, card := range board {
		sum += card.Value()
	}
	avg := float64(sum) / float64(len(board))
	if avg >= 9 {
		return High
	}
	if avg <= 5 {
		return Low
	}

	return Dry
}
