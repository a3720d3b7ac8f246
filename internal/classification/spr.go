package classification

// SPRCategory buckets the stack-to-pot ratio. SPR governs how many further
// bets are possible, so the strategy layer keys sizing adjustments off it.
type SPRCategory int

const (
	MicroSPR SPRCategory = iota
	SmallSPR
	MediumSPR
	LargeSPR
	DeepSPR
)

func (s SPRCategory) String() string {
	switch s {
	case MicroSPR:
		return "micro"
	case SmallSPR:
		return "small"
	case MediumSPR:
		return "medium"
	case LargeSPR:
		return "large"
	case DeepSPR:
		return "deep"
	default:
		return "unknown"
	}
}

// CategorizeSPR buckets stack divided by pot. A non-positive pot means no
// money in the middle yet and maximal flexibility, so it maps to DeepSPR
// rather than erroring.
func CategorizeSPR(stack, pot float64) SPRCategory {
	if pot <= 0 {
		return DeepSPR
	}

	spr := stack / pot
	switch {
	case spr < 2:
		return MicroSPR
	case spr < 4:
		return SmallSPR
	case spr < 8:
		return MediumSPR
	case spr < 13:
		return LargeSPR
	default:
		return DeepSPR
	}
}
