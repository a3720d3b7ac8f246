package classification

import "github.com/lox/postflop/internal/deck"

// DrawType categorizes the drawing potential of hole cards combined with the
// board.
type DrawType int

const (
	NoDraw DrawType = iota
	FlushDraw
	OpenEndedStraightDraw
	Gutshot
	ComboDraw
	BackdoorFlush
	BackdoorStraight
)

func (dt DrawType) String() string {
	switch dt {
	case NoDraw:
		return "no draw"
	case FlushDraw:
		return "flush draw"
	case OpenEndedStraightDraw:
		return "open-ended straight draw"
	case Gutshot:
		return "gutshot"
	case ComboDraw:
		return "combo draw"
	case BackdoorFlush:
		return "backdoor flush"
	case BackdoorStraight:
		return "backdoor straight"
	default:
		return "unknown"
	}
}

// DetectDraw classifies the drawing potential of a two-card hand against a
// board of up to five cards. It is a heuristic, not an exhaustive
// enumeration: the combination priority below is fixed and the strategy
// tables depend on it.
func DetectDraw(hole, board []deck.Card) DrawType {
	all := combined(hole, board)

	hasFlushDraw, hasBackdoorFlush := flushPotential(all)
	hasOESD, hasGutshot := straightPotential(all)
	hasBackdoorStraight := backdoorStraightPotential(all)

	switch {
	case hasFlushDraw && hasOESD:
		return ComboDraw
	case hasFlushDraw && hasBackdoorStraight:
		return ComboDraw
	case hasFlushDraw:
		return FlushDraw
	case hasOESD:
		return OpenEndedStraightDraw
	case hasGutshot:
		return Gutshot
	case hasBackdoorFlush:
		return BackdoorFlush
	case hasBackdoorStraight:
		return BackdoorStraight
	default:
		return NoDraw
	}
}

// flushPotential reports live and backdoor flush draws. Exactly four cards of
// one suit is a live draw; exactly three is a backdoor draw.
func flushPotential(cards []deck.Card) (live, backdoor bool) {
	for _, count := range countSuits(cards) {
		switch count {
		case 4:
			live = true
		case 3:
			backdoor = true
		}
	}
	return live, backdoor
}

// straightPotential slides a four-rank window across the distinct ranks.
// A window spanning three is open-ended. A window spanning four has internal
// gaps summing to four, so exactly one gap is a double gap: when that double
// gap sits at either end the draw still plays open-ended, otherwise it is a
// gutshot.
func straightPotential(cards []deck.Card) (oesd, gutshot bool) {
	ranks := uniqueRanks(cards)
	for i := 0; i+3 < len(ranks); i++ {
		window := ranks[i : i+4]
		span := window[3] - window[0]

		switch {
		case span == 3:
			oesd = true
		case span == 4:
			first := window[1] - window[0]
			last := window[3] - window[2]
			if first == 2 || last == 2 {
				oesd = true
			} else {
				gutshot = true
			}
		}
	}
	return oesd, gutshot
}

// backdoorStraightPotential slides a three-rank window across the distinct
// ranks; any window spanning at most four can still back into a straight.
func backdoorStraightPotential(cards []deck.Card) bool {
	ranks := uniqueRanks(cards)
	for i := 0; i+2 < len(ranks); i++ {
		if ranks[i+2]-ranks[i] <= 4 {
			return true
		}
	}
	return false
}
