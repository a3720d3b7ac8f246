package classification

import "testing"

func TestEvaluateStrength(t *testing.T) {
	tests := []struct {
		name     string
		hole     string
		board    string
		expected HandStrength
	}{
		{
			name:     "flush is the nuts",
			hole:     "AhKh",
			board:    "QhJh2h",
			expected: Nuts,
		},
		{
			name:     "quads are the nuts",
			hole:     "AhAd",
			board:    "AcAs2h",
			expected: Nuts,
		},
		{
			name:     "full house is the nuts",
			hole:     "AhAd",
			board:    "Ac7s7h",
			expected: Nuts,
		},
		{
			name:     "trips are strong",
			hole:     "AhAd",
			board:    "Ac7s2h",
			expected: Strong,
		},
		{
			name:     "two pair is strong",
			hole:     "AhKd",
			board:    "AcKs2h",
			expected: Strong,
		},
		{
			name:     "top pair top kicker is medium",
			hole:     "AhKd",
			board:    "Ac7s2h",
			expected: Medium,
		},
		{
			name:     "top pair middling kicker is marginal",
			hole:     "Ah8d",
			board:    "Ac7s2h",
			expected: Marginal,
		},
		{
			name:     "top pair weak kicker plays weak",
			hole:     "Ah4d",
			board:    "Ac9s2h",
			expected: Weak,
		},
		{
			name:     "middle pair is weak",
			hole:     "9h8d",
			board:    "Ac9s2h",
			expected: Weak,
		},
		{
			name:     "four to a flush is a draw",
			hole:     "AhKh",
			board:    "9h5h2d",
			expected: Draw,
		},
		{
			name:     "open ender is a draw",
			hole:     "JhTd",
			board:    "9c8s2h",
			expected: Draw,
		},
		{
			name:     "overcards miss everything",
			hole:     "4h5d",
			board:    "AcKsJh",
			expected: Air,
		},
		{
			name:     "pocket pair under the board is air",
			hole:     "9h9d",
			board:    "AcKsJh",
			expected: Air,
		},
		{
			name:     "preflop is air",
			hole:     "AhKh",
			board:    "",
			expected: Air,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hole := parseCards(t, tt.hole)
			board := parseCards(t, tt.board)
			result := EvaluateStrength(hole, board)
			if result != tt.expected {
				t.Errorf("EvaluateStrength(%v, %v) = %v, want %v", tt.hole, tt.board, result, tt.expected)
			}
		})
	}
}

func TestParseHandStrength(t *testing.T) {
	for hs := Nuts; hs <= Air; hs++ {
		parsed, ok := ParseHandStrength(hs.String())
		if !ok || parsed != hs {
			t.Errorf("ParseHandStrength(%q) = %v, %v", hs.String(), parsed, ok)
		}
	}
	if _, ok := ParseHandStrength("monster"); ok {
		t.Error("ParseHandStrength accepted unknown name")
	}
}
