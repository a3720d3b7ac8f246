package classification

import (
	"testing"

	"github.com/lox/postflop/internal/deck"
)

// Test helper to parse card notation
func parseCards(t *testing.T, s string) []deck.Card {
	t.Helper()
	cards, err := deck.ParseCards(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return cards
}

func TestClassifyBoard(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		expected BoardTexture
	}{
		{
			name:     "monotone flop",
			board:    "Ah9h5h",
			expected: Monotone,
		},
		{
			name:     "paired board",
			board:    "AhAd5c",
			expected: Paired,
		},
		{
			name:     "connected board",
			board:    "9h8d7c",
			expected: Connected,
		},
		{
			name:     "two to a flush",
			board:    "Ah9h5c",
			expected: Wet,
		},
		{
			name:     "ace high rainbow",
			board:    "Ah7d2c",
			expected: AceHigh,
		},
		{
			name:     "dry king high",
			board:    "Kh7d3c",
			expected: Dry,
		},
		{
			name:     "high average",
			board:    "KhTd4c",
			expected: High,
		},
		{
			name:     "low average",
			board:    "7h3d2c",
			expected: Low,
		},
		{
			name:     "monotone beats paired",
			board:    "Ah9h5hAd",
			expected: Monotone,
		},
		{
			name:     "paired beats connected",
			board:    "9h9d7c",
			expected: Paired,
		},
		{
			name:     "connected beats wet",
			board:    "9h8h7c",
			expected: Connected,
		},
		{
			name:     "wet beats ace high",
			board:    "Ah9h5c",
			expected: Wet,
		},
		{
			name:     "incomplete board defaults to dry",
			board:    "Ah9h",
			expected: Dry,
		},
		{
			// Five cards over four suits always put two to a flush out there,
			// so full boards never classify dry.
			name:     "five card board",
			board:    "Kh7d3c9s2d",
			expected: Wet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := parseCards(t, tt.board)
			result := ClassifyBoard(board)
			if result != tt.expected {
				t.Errorf("ClassifyBoard(%v) = %v, want %v", tt.board, result, tt.expected)
			}
		})
	}
}

func TestClassifyBoardDoesNotMutateInput(t *testing.T) {
	board := parseCards(t, "2c9hAh")
	before := make([]deck.Card, len(board))
	copy(before, board)

	ClassifyBoard(board)

	for i := range board {
		if board[i] != before[i] {
			t.Fatalf("board mutated at %d: %v -> %v", i, before[i], board[i])
		}
	}
}

func TestParseBoardTexture(t *testing.T) {
	for bt := Dry; bt <= AceHigh; bt++ {
		parsed, ok := ParseBoardTexture(bt.String())
		if !ok || parsed != bt {
			t.Errorf("ParseBoardTexture(%q) = %v, %v", bt.String(), parsed, ok)
		}
	}
	if _, ok := ParseBoardTexture("soggy"); ok {
		t.Error("ParseBoardTexture accepted unknown name")
	}
}
