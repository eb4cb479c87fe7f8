package engine

// seatRing is the clockwise traversal of the nine physical seat
// positions around the table. Seat indices are layout slots, not play
// order, so turn passing walks this ring rather than incrementing the
// index.
var seatRing = [NumSeats]int{0, 2, 4, 6, 7, 8, 5, 3, 1}

// SeatFilter selects seats during a turn-order walk.
type SeatFilter func(*Seat) bool

// FilterSeated matches any occupied seat.
func FilterSeated(s *Seat) bool { return s.IsSeated }

// FilterHasChips matches occupied seats with a non-empty stack,
// regardless of hand status. Used for dealer and blind nomination.
func FilterHasChips(s *Seat) bool { return s.IsSeated && s.Stack > 0 }

// FilterInHand matches seats still holding live cards, including
// all-in seats.
func FilterInHand(s *Seat) bool { return s.InHand() }

// FilterCanAct matches seats that can be handed the turn for a betting
// decision: live, with chips, and not already all-in.
func FilterCanAct(s *Seat) bool { return s.CanBetThisHand() }

// TurnOrder resolves "next seat clockwise" queries over the occupied
// portion of the ring. Rebuild must be called whenever seating changes.
type TurnOrder struct {
	// next maps an occupied seat index to the following occupied seat
	// index around the ring.
	next map[int]int
}

// NewTurnOrder returns an order with no seats registered.
func NewTurnOrder() *TurnOrder {
	return &TurnOrder{next: make(map[int]int)}
}

// Rebuild recomputes the successor links from the current seating.
func (to *TurnOrder) Rebuild(seats *[NumSeats]Seat) {
	to.next = make(map[int]int)
	occupied := make([]int, 0, NumSeats)
	for _, idx := range seatRing {
		if seats[idx].IsSeated {
			occupied = append(occupied, idx)
		}
	}
	for i, idx := range occupied {
		to.next[idx] = occupied[(i+1)%len(occupied)]
	}
}

// Next returns the first seat clockwise after from that satisfies
// filter, or -1 if no seat does. from itself is only returned if the
// walk comes all the way around to it and it matches.
func (to *TurnOrder) Next(seats *[NumSeats]Seat, from int, filter SeatFilter) int {
	if len(to.next) == 0 {
		return -1
	}
	cur, ok := to.next[from]
	if !ok {
		return -1
	}
	for range to.next {
		if filter(&seats[cur]) {
			return cur
		}
		cur = to.next[cur]
	}
	return -1
}
