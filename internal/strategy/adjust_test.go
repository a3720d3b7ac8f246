package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/postflop/internal/classification"
)

func sampleLine() []Action {
	return []Action{
		{Kind: Bet, Frequency: 60, Size: 75, EV: 1.5},
		{Kind: Check, Frequency: 20, Size: 0, EV: 0.8},
		{Kind: Call, Frequency: 10, Size: 0, EV: 0.6},
		{Kind: Fold, Frequency: 10, Size: 0, EV: 0.0},
	}
}

func TestForMultiwayHeadsUpIsIdentity(t *testing.T) {
	line := sampleLine()
	out := ForMultiway(line, HeadsUp)
	assert.Equal(t, line, out)
}

func TestForMultiwayScalesAggression(t *testing.T) {
	line := sampleLine()

	threeWay := ForMultiway(line, ThreeWay)
	multiWay := ForMultiway(line, MultiWay)

	require.Len(t, threeWay, len(line))
	require.Len(t, multiWay, len(line))

	// bet frequency strictly decreases as more players contest the pot
	assert.Equal(t, 42, threeWay[0].Frequency) // 60 * 0.7
	assert.Equal(t, 30, multiWay[0].Frequency) // 60 * 0.5
	assert.Less(t, multiWay[0].Frequency, threeWay[0].Frequency)
	assert.Less(t, threeWay[0].Frequency, line[0].Frequency)

	// EV scales with the same multiplier
	assert.InDelta(t, 1.05, threeWay[0].EV, 1e-9)
	assert.InDelta(t, 0.75, multiWay[0].EV, 1e-9)

	// fold frequency grows by the lost margin
	assert.Equal(t, 13, threeWay[3].Frequency) // 10 * 1.3
	assert.Equal(t, 15, multiWay[3].Frequency) // 10 * 1.5

	// checks and calls pass through untouched
	assert.Equal(t, line[1], threeWay[1])
	assert.Equal(t, line[2], multiWay[2])
}

func TestForMultiwayClampsFoldFrequency(t *testing.T) {
	line := []Action{{Kind: Fold, Frequency: 90}}
	out := ForMultiway(line, MultiWay)
	assert.Equal(t, 100, out[0].Frequency) // 90 * 1.5 clamped
}

func TestForMultiwayDoesNotMutateInput(t *testing.T) {
	line := sampleLine()
	ForMultiway(line, MultiWay)
	assert.Equal(t, sampleLine(), line)
}

func TestForSPRMicro(t *testing.T) {
	line := []Action{
		{Kind: Check, Frequency: 55},
		{Kind: AllIn, Frequency: 30},
		{Kind: Bet, Frequency: 15, Size: 50},
	}
	out := ForSPR(line, classification.MicroSPR)

	assert.Equal(t, 28, out[0].Frequency) // 55 / 2 rounded
	assert.Equal(t, 45, out[1].Frequency) // 30 * 1.5
	assert.Equal(t, line[2], out[2])      // bets untouched at micro
}

func TestForSPRSmallConvertsBigBetsToJams(t *testing.T) {
	line := []Action{
		{Kind: Bet, Frequency: 60, Size: 75, EV: 1.5},
		{Kind: Bet, Frequency: 20, Size: 50, EV: 0.9},
		{Kind: Raise, Frequency: 20, Size: 300, EV: 1.1},
	}
	out := ForSPR(line, classification.SmallSPR)

	assert.Equal(t, AllIn, out[0].Kind)
	assert.Zero(t, out[0].Size)
	assert.Equal(t, 60, out[0].Frequency)
	assert.Equal(t, line[1], out[1]) // below threshold stays a bet
	assert.Equal(t, line[2], out[2]) // raises are not converted
}

func TestForSPRDeepShrinksBetSizes(t *testing.T) {
	line := []Action{
		{Kind: Bet, Frequency: 60, Size: 75},
		{Kind: Bet, Frequency: 20, Size: 33},
		{Kind: Check, Frequency: 20},
	}
	out := ForSPR(line, classification.DeepSPR)

	assert.Equal(t, 60, out[0].Size)
	assert.Equal(t, 25, out[1].Size) // floored at 25
	assert.Equal(t, line[2], out[2])
}

func TestForSPRMediumAndLargeAreIdentity(t *testing.T) {
	line := sampleLine()
	assert.Equal(t, line, ForSPR(line, classification.MediumSPR))
	assert.Equal(t, line, ForSPR(line, classification.LargeSPR))
}

func TestForSPRPreservesListShape(t *testing.T) {
	line := sampleLine()
	for _, spr := range []classification.SPRCategory{
		classification.MicroSPR,
		classification.SmallSPR,
		classification.MediumSPR,
		classification.LargeSPR,
		classification.DeepSPR,
	} {
		out := ForSPR(line, spr)
		require.Len(t, out, len(line), "spr %v changed list length", spr)
	}
	assert.Equal(t, sampleLine(), line)
}

func TestPlayersFrom(t *testing.T) {
	assert.Equal(t, HeadsUp, PlayersFrom(2))
	assert.Equal(t, HeadsUp, PlayersFrom(1))
	assert.Equal(t, ThreeWay, PlayersFrom(3))
	assert.Equal(t, MultiWay, PlayersFrom(4))
	assert.Equal(t, MultiWay, PlayersFrom(9))
}
