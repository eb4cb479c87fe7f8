package deck

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
)

// Deck holds the cards remaining to be dealt. A freshly initialized deck
// contains each of the 52 (suit, rank) pairs exactly once; dealt cards are
// gone until the next Initialize.
type Deck struct {
	cards  []Card
	rng    *rand.Rand
	logger *log.Logger
}

// New creates an empty deck. Initialize must be called before dealing.
func New(rng *rand.Rand, logger *log.Logger) *Deck {
	return &Deck{
		cards:  make([]Card, 0, 52),
		rng:    rng,
		logger: logger.WithPrefix("deck"),
	}
}

// Initialize resets the deck to the canonical 52 cards in suit-then-rank order
func (d *Deck) Initialize() {
	d.cards = d.cards[:0]
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
}

// Shuffle randomly permutes the remaining cards in place. Shuffling an empty
// deck is a no-op and logged as a warning.
func (d *Deck) Shuffle() {
	if len(d.cards) == 0 {
		d.logger.Warn("shuffle requested on an empty deck")
		return
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// DealCard removes and returns the top card. The second return value is false
// when the deck is empty; running out of cards is recoverable, the caller
// decides how to handle it.
func (d *Deck) DealCard() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, true
}

// NumCardsLeft returns the number of cards remaining
func (d *Deck) NumCardsLeft() int {
	return len(d.cards)
}

// IsEmpty reports whether the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}
