// Package evaluator ranks poker hands. Given up to seven cards it finds the
// best five-card hand and reports it as a category plus ordered tie-break
// ranks, so two results can be compared without re-examining the cards.
package evaluator

import (
	"sort"

	"github.com/tablestakes/holdem/internal/deck"
)

// Category is the 10-way poker hand ranking, weakest first
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the display name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// HandResult is the outcome of evaluating a hand: the category and the
// tie-break ranks, most significant first. The category-defining ranks come
// before the remaining kickers (e.g. for a full house: trip rank, pair rank).
type HandResult struct {
	Category Category
	Kickers  []deck.Rank
}

// Compare returns >0 if a beats b, <0 if b beats a, and 0 for an exact tie
// (split pot). Categories are compared first, then kickers in order.
func Compare(a, b HandResult) int {
	if a.Category != b.Category {
		return int(a.Category) - int(b.Category)
	}
	n := len(a.Kickers)
	if len(b.Kickers) < n {
		n = len(b.Kickers)
	}
	for i := 0; i < n; i++ {
		if a.Kickers[i] != b.Kickers[i] {
			return int(a.Kickers[i]) - int(b.Kickers[i])
		}
	}
	return 0
}

// combos7c5 indexes every 5-card subset of 7 cards
var combos7c5 = [21][5]int{
	{0, 1, 2, 3, 4}, {0, 1, 2, 3, 5}, {0, 1, 2, 3, 6}, {0, 1, 2, 4, 5}, {0, 1, 2, 4, 6},
	{0, 1, 2, 5, 6}, {0, 1, 3, 4, 5}, {0, 1, 3, 4, 6}, {0, 1, 3, 5, 6}, {0, 1, 4, 5, 6},
	{0, 2, 3, 4, 5}, {0, 2, 3, 4, 6}, {0, 2, 3, 5, 6}, {0, 2, 4, 5, 6}, {0, 3, 4, 5, 6},
	{1, 2, 3, 4, 5}, {1, 2, 3, 4, 6}, {1, 2, 3, 5, 6}, {1, 2, 4, 5, 6}, {1, 3, 4, 5, 6},
	{2, 3, 4, 5, 6},
}

// combos6c5 indexes every 5-card subset of 6 cards
var combos6c5 = [6][5]int{
	{0, 1, 2, 3, 4}, {0, 1, 2, 3, 5}, {0, 1, 2, 4, 5},
	{0, 1, 3, 4, 5}, {0, 2, 3, 4, 5}, {1, 2, 3, 4, 5},
}

// Evaluate returns the best five-card hand achievable from the given hole and
// community cards (0-7 total, any split). With fewer than five cards the
// result is a degenerate High Card holding the available ranks in descending
// order; it orders incomplete hands consistently but is not a poker hand.
func Evaluate(holeCards, communityCards []deck.Card) HandResult {
	all := make([]deck.Card, 0, len(holeCards)+len(communityCards))
	all = append(all, holeCards...)
	all = append(all, communityCards...)

	if len(all) < 5 {
		sorted := make([]deck.Card, len(all))
		copy(sorted, all)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Rank > sorted[j].Rank })
		result := HandResult{Category: HighCard}
		for _, c := range sorted {
			result.Kickers = append(result.Kickers, c.Rank)
		}
		return result
	}

	var five [5]deck.Card
	switch {
	case len(all) == 5:
		copy(five[:], all)
		return evaluateFive(five)

	case len(all) == 6:
		best := HandResult{Category: HighCard}
		for _, combo := range combos6c5 {
			for i, idx := range combo {
				five[i] = all[idx]
			}
			if result := evaluateFive(five); Compare(result, best) > 0 {
				best = result
			}
		}
		return best

	default:
		// 7 cards (extras beyond 7 are ignored)
		best := HandResult{Category: HighCard}
		for _, combo := range combos7c5 {
			for i, idx := range combo {
				five[i] = all[idx]
			}
			if result := evaluateFive(five); Compare(result, best) > 0 {
				best = result
			}
		}
		return best
	}
}

// evaluateFive ranks exactly five cards
func evaluateFive(cards [5]deck.Card) HandResult {
	sorted := cards[:]
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Rank > sorted[j].Rank })

	straight, straightHigh := isStraight(sorted)
	flush := isFlush(sorted)

	if straight && flush {
		category := StraightFlush
		if straightHigh == deck.Ace {
			category = RoyalFlush
		}
		return HandResult{Category: category, Kickers: []deck.Rank{straightHigh}}
	}

	var counts [15]int
	for _, c := range sorted {
		counts[c.Rank]++
	}

	var quads, trips, pairs []deck.Rank
	for rank := deck.Ace; rank >= deck.Two; rank-- {
		switch counts[rank] {
		case 4:
			quads = append(quads, rank)
		case 3:
			trips = append(trips, rank)
		case 2:
			pairs = append(pairs, rank)
		}
	}

	switch {
	case len(quads) == 1:
		kickers := append([]deck.Rank{quads[0]}, highestExcluding(sorted, 1, quads[0])...)
		return HandResult{Category: FourOfAKind, Kickers: kickers}

	case len(trips) == 1 && len(pairs) >= 1:
		return HandResult{Category: FullHouse, Kickers: []deck.Rank{trips[0], pairs[0]}}

	case flush:
		return HandResult{Category: Flush, Kickers: allRanksDesc(sorted)}

	case straight:
		return HandResult{Category: Straight, Kickers: []deck.Rank{straightHigh}}

	case len(trips) == 1:
		kickers := append([]deck.Rank{trips[0]}, highestExcluding(sorted, 2, trips[0])...)
		return HandResult{Category: ThreeOfAKind, Kickers: kickers}

	case len(pairs) >= 2:
		// pairs is sorted descending; keep the two highest even if more exist
		kickers := append([]deck.Rank{pairs[0], pairs[1]}, highestExcluding(sorted, 1, pairs[0], pairs[1])...)
		return HandResult{Category: TwoPair, Kickers: kickers}

	case len(pairs) == 1:
		kickers := append([]deck.Rank{pairs[0]}, highestExcluding(sorted, 3, pairs[0])...)
		return HandResult{Category: OnePair, Kickers: kickers}

	default:
		return HandResult{Category: HighCard, Kickers: allRanksDesc(sorted)}
	}
}

// isStraight reports whether the five descending-sorted cards form a run.
// The wheel (A-5-4-3-2) counts with the Five as its high card.
func isStraight(sorted []deck.Card) (bool, deck.Rank) {
	if sorted[0].Rank == deck.Ace &&
		sorted[1].Rank == deck.Five &&
		sorted[2].Rank == deck.Four &&
		sorted[3].Rank == deck.Three &&
		sorted[4].Rank == deck.Two {
		return true, deck.Five
	}
	for i := 0; i < 4; i++ {
		if sorted[i].Rank != sorted[i+1].Rank+1 {
			return false, 0
		}
	}
	return true, sorted[0].Rank
}

func isFlush(cards []deck.Card) bool {
	for i := 1; i < 5; i++ {
		if cards[i].Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// highestExcluding returns the n highest ranks not in the excluded set
func highestExcluding(sorted []deck.Card, n int, excluded ...deck.Rank) []deck.Rank {
	var kickers []deck.Rank
	for _, c := range sorted {
		skip := false
		for _, ex := range excluded {
			if c.Rank == ex {
				skip = true
				break
			}
		}
		if !skip {
			kickers = append(kickers, c.Rank)
			if len(kickers) == n {
				break
			}
		}
	}
	return kickers
}

func allRanksDesc(sorted []deck.Card) []deck.Rank {
	ranks := make([]deck.Rank, 5)
	for i, c := range sorted {
		ranks[i] = c.Rank
	}
	return ranks
}
