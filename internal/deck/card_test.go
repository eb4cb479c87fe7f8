package deck

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	card, err := ParseCard("Ah")
	require.NoError(t, err)
	require.Equal(t, Hearts, card.Suit)
	require.Equal(t, Ace, card.Rank)

	card, err = ParseCard("Td")
	require.NoError(t, err)
	require.Equal(t, Diamonds, card.Suit)
	require.Equal(t, Ten, card.Rank)

	card, err = ParseCard("2c")
	require.NoError(t, err)
	require.Equal(t, Clubs, card.Suit)
	require.Equal(t, Two, card.Rank)
}

func TestParseCardErrors(t *testing.T) {
	for _, input := range []string{"", "A", "Ahh", "Xh", "Ax", "1h"} {
		_, err := ParseCard(input)
		require.Error(t, err, "input %q should not parse", input)
	}
}

func TestCardStringRoundTrip(t *testing.T) {
	for _, text := range []string{"Ah", "Td", "2c", "Ks", "9d"} {
		card, err := ParseCard(text)
		require.NoError(t, err)
		require.Equal(t, text, card.String())
	}
}

func TestCardCompare(t *testing.T) {
	ace := NewCard(Hearts, Ace)
	king := NewCard(Spades, King)
	require.Positive(t, ace.Compare(king))
	require.Negative(t, king.Compare(ace))

	// Same rank falls back to suit order so sorts are stable.
	aceClubs := NewCard(Clubs, Ace)
	require.Positive(t, ace.Compare(aceClubs))
}

func TestMustParseCards(t *testing.T) {
	cards := MustParseCards("Ah Kd 2c")
	require.Len(t, cards, 3)
	require.Equal(t, "Ah", cards[0].String())
	require.Equal(t, "Kd", cards[1].String())
	require.Equal(t, "2c", cards[2].String())

	require.Panics(t, func() { MustParseCards("Ah Xx") })
}
