package engine

import "github.com/tablestakes/holdem/internal/deck"

// EventType identifies a game event with type safety.
type EventType string

const (
	EventTypeHandStarting    EventType = "hand_starting"
	EventTypeHoleCardsDealt  EventType = "hole_cards_dealt"
	EventTypeCommunityCards  EventType = "community_cards"
	EventTypeTurnChanged     EventType = "turn_changed"
	EventTypeActionRequested EventType = "action_requested"
	EventTypeTableInfo       EventType = "table_info"
	EventTypeHistory         EventType = "history"
	EventTypeShowdown        EventType = "showdown"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}

// GameEvent is any notification emitted by the engine as a hand
// progresses. Events carry copies of mutable data so subscribers can
// retain them safely.
type GameEvent interface {
	EventType() EventType
}

// HandStartingEvent announces that a new hand is being set up.
type HandStartingEvent struct {
	DealerSeat int
	HandNumber int64
}

func (e HandStartingEvent) EventType() EventType { return EventTypeHandStarting }

// HoleCardsDealtEvent announces that every live seat has received its
// two hole cards.
type HoleCardsDealtEvent struct{}

func (e HoleCardsDealtEvent) EventType() EventType { return EventTypeHoleCardsDealt }

// CommunityCardsEvent is published whenever the board changes. Cards is
// the full board, not just the newly dealt street.
type CommunityCardsEvent struct {
	Stage GameStage
	Cards []deck.Card
}

func (e CommunityCardsEvent) EventType() EventType { return EventTypeCommunityCards }

// TurnChangedEvent reports which seat now holds the turn. Seat is -1
// when no decision is pending.
type TurnChangedEvent struct {
	Seat int
}

func (e TurnChangedEvent) EventType() EventType { return EventTypeTurnChanged }

// ActionRequestedEvent asks the seat holding the turn for a decision.
// Allowed is empty for seats that have nothing to decide. Stack and
// CurrentBet echo the seat's own numbers so a frontend can prompt
// without reading the state.
type ActionRequestedEvent struct {
	Seat       int
	Allowed    []Action
	BetToCall  int64
	MinRaise   int64
	Stack      int64
	CurrentBet int64
}

func (e ActionRequestedEvent) EventType() EventType { return EventTypeActionRequested }

// TableInfoEvent reports the pot total after chips moved into it and
// who moved them.
type TableInfoEvent struct {
	Actor string
	Pot   int64
}

func (e TableInfoEvent) EventType() EventType { return EventTypeTableInfo }

// HistoryEvent is a human-readable line describing something that just
// happened, suitable for a table log.
type HistoryEvent struct {
	Line string
}

func (e HistoryEvent) EventType() EventType { return EventTypeHistory }

// ShowdownEvent carries the full hand resolution: every revealed hand,
// the winners and the chip movements.
type ShowdownEvent struct {
	Results      []ShowdownInfo
	Announcement string
}

func (e ShowdownEvent) EventType() EventType { return EventTypeShowdown }

// EventSubscriber receives engine events.
type EventSubscriber interface {
	OnGameEvent(event GameEvent)
}

// EventBus manages event publishing and subscription.
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus. Publish delivers
// synchronously in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus.
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events.
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribers.
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, sub := range bus.subscribers {
		sub.OnGameEvent(event)
	}
}
