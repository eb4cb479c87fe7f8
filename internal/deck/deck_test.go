package deck

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/tablestakes/holdem/internal/randutil"
)

func newTestDeck(seed int64) *Deck {
	return New(randutil.New(seed), log.New(io.Discard))
}

func TestInitializeProducesFullDeck(t *testing.T) {
	d := newTestDeck(1)
	d.Initialize()
	require.Equal(t, 52, d.NumCardsLeft())

	seen := make(map[Card]bool)
	for {
		card, ok := d.DealCard()
		if !ok {
			break
		}
		require.False(t, seen[card], "card %s dealt twice", card)
		seen[card] = true
	}
	require.Len(t, seen, 52)
	require.True(t, d.IsEmpty())
}

func TestDealCardFromEmptyDeck(t *testing.T) {
	d := newTestDeck(1)
	_, ok := d.DealCard()
	require.False(t, ok)
}

func TestShuffleIsDeterministicPerSeed(t *testing.T) {
	a := newTestDeck(7)
	b := newTestDeck(7)
	a.Initialize()
	b.Initialize()
	a.Shuffle()
	b.Shuffle()

	for !a.IsEmpty() {
		ca, okA := a.DealCard()
		cb, okB := b.DealCard()
		require.True(t, okA)
		require.True(t, okB)
		require.Equal(t, ca, cb)
	}
}

func TestShuffleChangesOrder(t *testing.T) {
	d := newTestDeck(3)
	d.Initialize()
	unshuffled := newTestDeck(3)
	unshuffled.Initialize()

	d.Shuffle()
	moved := 0
	for !d.IsEmpty() {
		ca, _ := d.DealCard()
		cb, _ := unshuffled.DealCard()
		if ca != cb {
			moved++
		}
	}
	require.Greater(t, moved, 26, "shuffle left most of the deck in place")
}

func TestShuffleEmptyDeckIsNoOp(t *testing.T) {
	d := newTestDeck(1)
	d.Shuffle()
	require.True(t, d.IsEmpty())
}

func TestInitializeResetsPartialDeck(t *testing.T) {
	d := newTestDeck(1)
	d.Initialize()
	d.Shuffle()
	for i := 0; i < 10; i++ {
		_, ok := d.DealCard()
		require.True(t, ok)
	}
	d.Initialize()
	require.Equal(t, 52, d.NumCardsLeft())
}
