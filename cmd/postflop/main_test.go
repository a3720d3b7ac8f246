package main

import (
	"testing"

	"github.com/lox/postflop/internal/strategy"
)

func TestFormatAction(t *testing.T) {
	tests := []struct {
		name     string
		action   strategy.Action
		expected string
	}{
		{
			name:     "bet with size",
			action:   strategy.Action{Kind: strategy.Bet, Frequency: 60, Size: 50, EV: 1.25},
			expected: "bet 60% (50% pot) ev 1.25",
		},
		{
			name:     "check has no size",
			action:   strategy.Action{Kind: strategy.Check, Frequency: 40, EV: 0.8},
			expected: "check 40% ev 0.80",
		},
		{
			name:     "jam after conversion",
			action:   strategy.Action{Kind: strategy.AllIn, Frequency: 30, EV: 1.5},
			expected: "allin 30% ev 1.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatAction(tt.action); got != tt.expected {
				t.Errorf("formatAction(%+v) = %q, want %q", tt.action, got, tt.expected)
			}
		})
	}
}

func TestLoadTableDefaults(t *testing.T) {
	table, err := loadTable("")
	if err != nil {
		t.Fatalf("loadTable(\"\") error: %v", err)
	}
	if table == nil {
		t.Fatal("loadTable(\"\") returned nil table")
	}
}
