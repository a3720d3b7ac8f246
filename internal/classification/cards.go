package classification

import "github.com/lox/postflop/internal/deck"

// countSuits returns how many cards of each suit are present.
func countSuits(cards []deck.Card) [4]int {
	var counts [4]int
	for _, card := range cards {
		counts[card.Suit]++
	}
	return counts
}

// countRanks returns how many cards of each rank are present, indexed by
// rank value minus two.
func countRanks(cards []deck.Card) [13]int {
	var counts [13]int
	for _, card := range cards {
		counts[card.Value()-2]++
	}
	return counts
}

// rankBounds returns the lowest and highest rank values present.
func rankBounds(cards []deck.Card) (minRank, maxRank int) {
	minRank, maxRank = cards[0].Value(), cards[0].Value()
	for _, card := range cards[1:] {
		v := card.Value()
		if v < minRank {
			minRank = v
		}
		if v > maxRank {
			maxRank = v
		}
	}
	return minRank, maxRank
}

// uniqueRanks returns the distinct rank values present, sorted ascending.
func uniqueRanks(cards []deck.Card) []int {
	seen := [13]bool{}
	for _, card := range cards {
		seen[card.Value()-2] = true
	}

	ranks := make([]int, 0, len(cards))
	for i, present := range seen {
		if present {
			ranks = append(ranks, i+2)
		}
	}
	return ranks
}

// combined merges hole and board cards into a single slice without mutating
// either input.
func combined(hole, board []deck.Card) []deck.Card {
	all := make([]deck.Card, 0, len(hole)+len(board))
	all = append(all, hole...)
	all = append(all, board...)
	return all
}
