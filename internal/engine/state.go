package engine

import "github.com/tablestakes/holdem/internal/deck"

// NumSeats is the fixed size of the table.
const NumSeats = 9

// GameStage is the lifecycle phase of the table. A hand moves strictly
// forward through the stages; Showdown resolves back to
// WaitingForPlayers.
type GameStage int

const (
	StageWaitingForPlayers GameStage = iota
	StageWaitingForSmallBlind
	StageWaitingForBigBlind
	StagePreflop
	StageFlop
	StageTurn
	StageRiver
	StageShowdown
)

// String returns the display name of the stage.
func (gs GameStage) String() string {
	switch gs {
	case StageWaitingForPlayers:
		return "Waiting for Players"
	case StageWaitingForSmallBlind:
		return "Waiting for Small Blind"
	case StageWaitingForBigBlind:
		return "Waiting for Big Blind"
	case StagePreflop:
		return "Preflop"
	case StageFlop:
		return "Flop"
	case StageTurn:
		return "Turn"
	case StageRiver:
		return "River"
	case StageShowdown:
		return "Showdown"
	default:
		return "Unknown"
	}
}

// InHand reports whether a hand is in progress at this stage.
func (gs GameStage) InHand() bool {
	return gs != StageWaitingForPlayers
}

// GameState is the full table state. It is owned by a single Manager
// and mutated only from the game-loop context; it carries no locking of
// its own.
type GameState struct {
	Seats          [NumSeats]Seat
	CommunityCards []deck.Card
	Stage          GameStage

	// Pot is the single main pot. Blinds and bets are moved into it the
	// moment they are committed.
	Pot int64

	SmallBlind int64
	BigBlind   int64

	// DealerSeat is -1 before the first hand.
	DealerSeat int
	// CurrentTurnSeat is the seat the engine is waiting on, or -1 when
	// no decision is pending.
	CurrentTurnSeat int

	// Seats nominated for the blinds this hand, -1 outside the blind
	// posting stages.
	PendingSmallBlindSeat int
	PendingBigBlindSeat   int

	// BetToCall is the total per-player contribution required to stay
	// in the current round.
	BetToCall int64
	// LastRaiseSize is the size of the last bet or pure raise this
	// round, used as the minimum for the next raise. Zero means no
	// aggression yet; the big blind is then the minimum.
	LastRaiseSize int64
	// LastAggressorSeat is the seat of the last bet or raise this
	// round, -1 if the round has seen no aggression.
	LastAggressorSeat int
	// OpenerSeat is the seat that made the first bet this round, -1
	// while the round is unopened.
	OpenerSeat int
}

// NewGameState returns an empty table in the waiting stage.
func NewGameState() *GameState {
	gs := &GameState{}
	for i := range gs.Seats {
		gs.Seats[i].Index = i
		gs.Seats[i].PlayerID = -1
	}
	gs.resetHandState()
	return gs
}

// resetHandState clears all hand-scoped state while preserving who is
// seated, their names and their stacks.
func (gs *GameState) resetHandState() {
	gs.CommunityCards = nil
	gs.Stage = StageWaitingForPlayers
	gs.Pot = 0
	gs.DealerSeat = -1
	gs.CurrentTurnSeat = -1
	gs.PendingSmallBlindSeat = -1
	gs.PendingBigBlindSeat = -1
	gs.resetRoundState()
	for i := range gs.Seats {
		s := &gs.Seats[i]
		s.HoleCards = nil
		s.Status = StatusWaiting
		s.IsDealer = false
		s.IsSmallBlind = false
		s.IsBigBlind = false
		s.IsTurn = false
		s.CurrentBet = 0
		s.HasActed = false
	}
}

// resetRoundState clears per-street betting state at a street boundary.
// Chips already committed stay in the pot.
func (gs *GameState) resetRoundState() {
	gs.BetToCall = 0
	gs.LastRaiseSize = 0
	gs.LastAggressorSeat = -1
	gs.OpenerSeat = -1
	for i := range gs.Seats {
		gs.Seats[i].CurrentBet = 0
		gs.Seats[i].HasActed = false
	}
}

// countInHand returns the number of seats still holding live cards.
func (gs *GameState) countInHand() int {
	n := 0
	for i := range gs.Seats {
		if gs.Seats[i].InHand() {
			n++
		}
	}
	return n
}

// countCanBet returns the number of seats that could still be asked for
// a betting decision this hand.
func (gs *GameState) countCanBet() int {
	n := 0
	for i := range gs.Seats {
		if gs.Seats[i].CanBetThisHand() {
			n++
		}
	}
	return n
}

// TotalChips sums every seated stack plus the pot. The engine conserves
// this quantity across every transition within a hand.
func (gs *GameState) TotalChips() int64 {
	total := gs.Pot
	for i := range gs.Seats {
		if gs.Seats[i].IsSeated {
			total += gs.Seats[i].Stack
		}
	}
	return total
}
