package deck

import "testing"

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "royal flush",
			input: "AsKsQsJsTs",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
				{Suit: Spades, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Ten},
			},
		},
		{
			name:  "mixed suits with spaces",
			input: "Ah Kd Qc Js 9s",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Diamonds, Rank: King},
				{Suit: Clubs, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Nine},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AxKs",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := ParseCards(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseCards(%q) expected error, got %v", tt.input, cards)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCards(%q) error: %v", tt.input, err)
			}
			if len(cards) != len(tt.expected) {
				t.Fatalf("ParseCards(%q) = %d cards, want %d", tt.input, len(cards), len(tt.expected))
			}
			for i, card := range cards {
				if card != tt.expected[i] {
					t.Errorf("card %d = %v, want %v", i, card, tt.expected[i])
				}
			}
		})
	}
}

func TestCardStrings(t *testing.T) {
	card := NewCard(Spades, Ace)
	if card.String() != "A♠" {
		t.Errorf("String() = %q, want A♠", card.String())
	}
	if card.Notation() != "As" {
		t.Errorf("Notation() = %q, want As", card.Notation())
	}
	if card.Value() != 14 {
		t.Errorf("Value() = %d, want 14", card.Value())
	}
}

func TestFormatCards(t *testing.T) {
	cards, err := ParseCards("AhKh2c")
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatCards(cards); got != "Ah Kh 2c" {
		t.Errorf("FormatCards = %q, want %q", got, "Ah Kh 2c")
	}
}

func TestDeckDealsDistinctCards(t *testing.T) {
	d := NewSeededDeck(42)
	if d.CardsRemaining() != 52 {
		t.Fatalf("CardsRemaining = %d, want 52", d.CardsRemaining())
	}

	seen := make(map[Card]bool)
	for {
		card, ok := d.Deal()
		if !ok {
			break
		}
		if seen[card] {
			t.Fatalf("dealt duplicate card %v", card)
		}
		seen[card] = true
	}
	if len(seen) != 52 {
		t.Errorf("dealt %d distinct cards, want 52", len(seen))
	}
}

func TestSeededDeckIsDeterministic(t *testing.T) {
	a := NewSeededDeck(7).DealN(10)
	b := NewSeededDeck(7).DealN(10)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("card %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
