package engine

import "github.com/tablestakes/holdem/internal/deck"

// PlayerStatus tracks a seat's participation in the current hand.
type PlayerStatus int

const (
	// StatusWaiting is a seated player who has not yet been dealt in.
	StatusWaiting PlayerStatus = iota
	// StatusSittingOut is a seated player excluded from the hand,
	// typically because their stack is empty.
	StatusSittingOut
	// StatusPlaying is an active participant with a live hand.
	StatusPlaying
	// StatusMustPostSmallBlind marks the seat the engine is waiting on
	// for the small blind.
	StatusMustPostSmallBlind
	// StatusMustPostBigBlind marks the seat the engine is waiting on
	// for the big blind.
	StatusMustPostBigBlind
	// StatusFolded surrendered the hand and any chips already committed.
	StatusFolded
	// StatusAllIn committed their whole stack and takes no further turns.
	StatusAllIn
)

// String returns the display name of the status.
func (s PlayerStatus) String() string {
	switch s {
	case StatusWaiting:
		return "Waiting"
	case StatusSittingOut:
		return "Sitting Out"
	case StatusPlaying:
		return "Playing"
	case StatusMustPostSmallBlind:
		return "Posting Small Blind"
	case StatusMustPostBigBlind:
		return "Posting Big Blind"
	case StatusFolded:
		return "Folded"
	case StatusAllIn:
		return "All-In"
	default:
		return "Unknown"
	}
}

// Seat is one of the nine table positions. A seat may be empty
// (IsSeated false); occupied seats persist across hands while hand
// fields are reset by StartNewHand.
type Seat struct {
	Index     int
	Name      string
	PlayerID  int64 // -1 for bots
	IsBot     bool
	IsSeated  bool
	Stack     int64
	HoleCards []deck.Card
	Status    PlayerStatus

	// Per-hand flags.
	IsDealer     bool
	IsSmallBlind bool
	IsBigBlind   bool
	IsTurn       bool

	// CurrentBet is the seat's contribution to the current betting
	// round. Chips move to the pot as they are committed; this field is
	// bookkeeping for call/raise arithmetic and is cleared between
	// streets.
	CurrentBet int64

	// HasActed is set when the seat voluntarily acts this round and
	// cleared for everyone else whenever a bet or raise reopens the
	// action. Posting a blind does not count as acting.
	HasActed bool

	// HandStartStack is the stack snapshot taken when the hand began,
	// used for net win/loss reporting at showdown.
	HandStartStack int64
}

// CanBetThisHand reports whether the seat still has chips and a live
// hand, i.e. it can be asked for a betting decision.
func (s *Seat) CanBetThisHand() bool {
	return s.IsSeated && s.Status == StatusPlaying && s.Stack > 0
}

// InHand reports whether the seat holds live cards (playing or all-in).
func (s *Seat) InHand() bool {
	if !s.IsSeated {
		return false
	}
	switch s.Status {
	case StatusPlaying, StatusAllIn,
		StatusMustPostSmallBlind, StatusMustPostBigBlind:
		return true
	}
	return false
}
