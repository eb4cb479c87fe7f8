package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the lowercase suit letter used in card short text
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Name returns the full display name of the suit
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return "Unknown"
	}
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the rank letter or digit used in card short text
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the short text form of a card, e.g. "Ah", "Td", "7c"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Compare orders cards by rank, with suit as a deterministic tiebreak.
// The suit ordering has no poker meaning.
func (c Card) Compare(other Card) int {
	if c.Rank != other.Rank {
		return int(c.Rank) - int(other.Rank)
	}
	return int(c.Suit) - int(other.Suit)
}

// ParseCard parses short text like "Ah" or "Td" into a Card
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: want rank letter followed by suit letter", s)
	}

	var rank Rank
	switch s[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = Rank(s[0] - '0')
	case 'T':
		rank = Ten
	case 'J':
		rank = Jack
	case 'Q':
		rank = Queen
	case 'K':
		rank = King
	case 'A':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid card rank %q in %q", s[0], s)
	}

	var suit Suit
	switch s[1] {
	case 'c':
		suit = Clubs
	case 'd':
		suit = Diamonds
	case 'h':
		suit = Hearts
	case 's':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid card suit %q in %q", s[1], s)
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// MustParseCards parses a space-separated list of cards and panics on error.
// Intended for tests and fixtures.
func MustParseCards(s string) []Card {
	var cards []Card
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ' ' {
			if i > start {
				card, err := ParseCard(s[start:i])
				if err != nil {
					panic(err)
				}
				cards = append(cards, card)
			}
			start = i + 1
		}
	}
	return cards
}
