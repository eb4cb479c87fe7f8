package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func seatsOccupied(indices ...int) *[NumSeats]Seat {
	var seats [NumSeats]Seat
	for i := range seats {
		seats[i].Index = i
	}
	for _, idx := range indices {
		seats[idx].IsSeated = true
		seats[idx].Status = StatusPlaying
		seats[idx].Stack = 1000
	}
	return &seats
}

func TestRingOrderFullTable(t *testing.T) {
	seats := seatsOccupied(0, 1, 2, 3, 4, 5, 6, 7, 8)
	to := NewTurnOrder()
	to.Rebuild(seats)

	// The physical layout is traversed 0, 2, 4, 6, 7, 8, 5, 3, 1.
	expected := map[int]int{0: 2, 2: 4, 4: 6, 6: 7, 7: 8, 8: 5, 5: 3, 3: 1, 1: 0}
	for from, want := range expected {
		require.Equal(t, want, to.Next(seats, from, FilterSeated),
			"next after seat %d", from)
	}
}

func TestRingOrderSparseTable(t *testing.T) {
	seats := seatsOccupied(0, 3, 5)
	to := NewTurnOrder()
	to.Rebuild(seats)

	require.Equal(t, 5, to.Next(seats, 0, FilterSeated))
	require.Equal(t, 3, to.Next(seats, 5, FilterSeated))
	require.Equal(t, 0, to.Next(seats, 3, FilterSeated))
}

func TestNextSkipsFilteredSeats(t *testing.T) {
	seats := seatsOccupied(0, 1, 2, 3)
	to := NewTurnOrder()
	to.Rebuild(seats)

	seats[2].Status = StatusFolded
	// Ring order for seats 0-3 is 0, 2, 3, 1; seat 2 is skipped.
	require.Equal(t, 3, to.Next(seats, 0, FilterCanAct))

	seats[3].Stack = 0
	require.Equal(t, 1, to.Next(seats, 0, FilterCanAct))
}

func TestNextWrapsBackToOrigin(t *testing.T) {
	seats := seatsOccupied(0, 1, 2)
	to := NewTurnOrder()
	to.Rebuild(seats)

	seats[1].Status = StatusFolded
	seats[2].Status = StatusFolded
	require.Equal(t, 0, to.Next(seats, 0, FilterCanAct))
}

func TestNextNoEligibleSeat(t *testing.T) {
	seats := seatsOccupied(0, 1, 2)
	to := NewTurnOrder()
	to.Rebuild(seats)

	for i := 0; i < 3; i++ {
		seats[i].Status = StatusFolded
	}
	require.Equal(t, -1, to.Next(seats, 0, FilterCanAct))
}

func TestFilterCanAct(t *testing.T) {
	var s Seat
	require.False(t, FilterCanAct(&s))

	s.IsSeated = true
	s.Stack = 100
	s.Status = StatusPlaying
	require.True(t, FilterCanAct(&s))

	s.Status = StatusAllIn
	require.False(t, FilterCanAct(&s))

	s.Status = StatusFolded
	require.False(t, FilterCanAct(&s))

	s.Status = StatusPlaying
	s.Stack = 0
	require.False(t, FilterCanAct(&s))
}

func TestFilterInHandIncludesAllIn(t *testing.T) {
	s := Seat{IsSeated: true, Status: StatusAllIn}
	require.True(t, FilterInHand(&s))

	s.Status = StatusFolded
	require.False(t, FilterInHand(&s))

	s.Status = StatusSittingOut
	require.False(t, FilterInHand(&s))
}
