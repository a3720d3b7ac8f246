package classification

import "testing"

func TestCategorizeSPR(t *testing.T) {
	tests := []struct {
		stack    float64
		pot      float64
		expected SPRCategory
	}{
		{100, 60, MicroSPR},
		{100, 40, SmallSPR},
		{100, 20, MediumSPR},
		{100, 10, LargeSPR},
		{100, 5, DeepSPR},
		{100, 0, DeepSPR},
		{100, -10, DeepSPR},
		{0, 10, MicroSPR},
		{80, 10, MediumSPR},   // exactly 8 moves up a bucket
		{130, 10, DeepSPR},    // exactly 13 is deep
		{20, 10, SmallSPR},    // exactly 2 is small
		{39.9, 10, SmallSPR},  // just under 4
		{40, 10, MediumSPR},   // exactly 4
	}

	for _, tt := range tests {
		result := CategorizeSPR(tt.stack, tt.pot)
		if result != tt.expected {
			t.Errorf("CategorizeSPR(%v, %v) = %v, want %v", tt.stack, tt.pot, result, tt.expected)
		}
	}
}

func TestSPRCategoryString(t *testing.T) {
	tests := []struct {
		category SPRCategory
		expected string
	}{
		{MicroSPR, "micro"},
		{SmallSPR, "small"},
		{MediumSPR, "medium"},
		{LargeSPR, "large"},
		{DeepSPR, "deep"},
	}

	for _, tt := range tests {
		if got := tt.category.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}
