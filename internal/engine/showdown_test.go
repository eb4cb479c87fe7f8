package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tablestakes/holdem/internal/deck"
	"github.com/tablestakes/holdem/internal/evaluator"
)

// newShowdownState builds a two-seat state at the river with the given
// hole cards and pot.
func newShowdownState(t *testing.T, board string, holes []string, pot int64) *GameState {
	t.Helper()
	gs := NewGameState()
	gs.SmallBlind = 5
	gs.BigBlind = 10
	gs.CommunityCards = deck.MustParseCards(board)
	gs.Pot = pot
	gs.Stage = StageRiver
	for i, hole := range holes {
		gs.Seats[i].IsSeated = true
		gs.Seats[i].Name = string(rune('A' + i))
		gs.Seats[i].Status = StatusPlaying
		gs.Seats[i].Stack = 1000
		gs.Seats[i].HandStartStack = 1000 + pot/int64(len(holes))
		gs.Seats[i].HoleCards = deck.MustParseCards(hole)
	}
	return gs
}

func TestShowdownBestHandWins(t *testing.T) {
	gs := newShowdownState(t, "Kd 9c 7s 4h 2d",
		[]string{"Ah Qh", "Ac Jc"}, 100)

	results, announcement := gs.resolveShowdown()
	require.Len(t, results, 2)

	// Ace-king-queen high beats ace-king-jack high.
	require.True(t, results[0].IsWinner)
	require.False(t, results[1].IsWinner)
	require.Equal(t, int64(100), results[0].AmountWon)
	require.Equal(t, int64(1100), gs.Seats[0].Stack)
	require.Equal(t, int64(1000), gs.Seats[1].Stack)
	require.Equal(t, int64(0), gs.Pot)
	require.Contains(t, announcement, "A wins 100")
}

func TestShowdownLaterSeatWinsByWideMargin(t *testing.T) {
	// Seat 1's flush outranks both pairs by several categories; seat 2's
	// aces outrank seat 0's kings but not the flush.
	gs := newShowdownState(t, "Ah Kh 9h 7c 4d",
		[]string{"Kc 2c", "Qh 2h", "Ac Ts"}, 120)

	results, announcement := gs.resolveShowdown()
	require.False(t, results[0].IsWinner)
	require.True(t, results[1].IsWinner)
	require.False(t, results[2].IsWinner)
	require.Equal(t, evaluator.Flush, results[1].Hand.Category)
	require.Equal(t, int64(120), results[1].AmountWon)
	require.Contains(t, announcement, "B wins 120 with Flush")
}

func TestShowdownSplitPotOddChip(t *testing.T) {
	// Both players play the board's royal flush.
	gs := newShowdownState(t, "Ah Kh Qh Jh Th",
		[]string{"2c 3d", "2d 3c"}, 15)

	results, announcement := gs.resolveShowdown()
	require.True(t, results[0].IsWinner)
	require.True(t, results[1].IsWinner)

	// The odd chip goes to the first winner in seat order.
	require.Equal(t, int64(8), results[0].AmountWon)
	require.Equal(t, int64(7), results[1].AmountWon)
	require.Equal(t, int64(1008), gs.Seats[0].Stack)
	require.Equal(t, int64(1007), gs.Seats[1].Stack)
	require.Contains(t, announcement, "split the pot")
}

func TestShowdownFoldedSeatCannotWin(t *testing.T) {
	gs := newShowdownState(t, "Ah Kh Qh Jh 2d",
		[]string{"Th 9h", "4c 3c"}, 60)
	// The royal flush folded before the river.
	gs.Seats[0].Status = StatusFolded

	results, announcement := gs.resolveShowdown()
	require.False(t, results[0].IsWinner)
	require.True(t, results[1].IsWinner)
	require.Equal(t, int64(60), results[1].AmountWon)

	// An uncontested win reveals no hand rank.
	require.Equal(t, "B wins 60", announcement)

	// Folded seats still appear in the results for net reporting.
	require.Equal(t, StatusFolded, results[0].Status)
	require.Equal(t, evaluator.RoyalFlush, results[0].Hand.Category)
}

func TestShowdownAllInSeatCanWin(t *testing.T) {
	gs := newShowdownState(t, "Ah Ad 7s 4h 2d",
		[]string{"Ac Kc", "Kh Qh"}, 200)
	gs.Seats[0].Status = StatusAllIn
	gs.Seats[0].Stack = 0
	gs.Seats[0].HandStartStack = 100

	results, _ := gs.resolveShowdown()
	require.True(t, results[0].IsWinner)
	require.Equal(t, evaluator.ThreeOfAKind, results[0].Hand.Category)
	require.Equal(t, int64(200), gs.Seats[0].Stack)
	require.Equal(t, int64(100), results[0].NetChange)
}

func TestShowdownConservesChips(t *testing.T) {
	gs := newShowdownState(t, "Kd 9c 7s 4h 2d",
		[]string{"Ah Qh", "Ac Jc", "8d 8c"}, 99)

	before := gs.TotalChips()
	gs.resolveShowdown()
	require.Equal(t, before, gs.TotalChips())
}

func TestShowdownThreeWayTieRemainder(t *testing.T) {
	gs := newShowdownState(t, "Ah Kh Qh Jh Th",
		[]string{"2c 3d", "2d 3c", "2s 3s"}, 100)

	results, _ := gs.resolveShowdown()
	require.Equal(t, int64(34), results[0].AmountWon)
	require.Equal(t, int64(33), results[1].AmountWon)
	require.Equal(t, int64(33), results[2].AmountWon)
}
