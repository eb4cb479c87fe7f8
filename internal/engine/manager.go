package engine

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/tablestakes/holdem/internal/deck"
	"github.com/tablestakes/holdem/internal/randutil"
)

// BotDecider chooses an action for a bot seat when its turn comes up.
// Implementations must only pick from allowed and must express bet and
// raise amounts as the total round contribution to reach.
type BotDecider interface {
	Decide(state *GameState, seat int, allowed []Action, betToCall, minRaiseTo int64) (Action, int64)
}

// Manager owns a table and drives hands through their full lifecycle:
// blind posting, dealing, betting rounds, street advancement and
// showdown resolution. It is not safe for concurrent use; all calls
// must come from a single game-loop context. Bot decisions are
// scheduled on the clock and handed back through the configured
// dispatcher so the owner can keep that guarantee.
type Manager struct {
	logger *log.Logger
	events EventBus
	state  *GameState
	order  *TurnOrder
	deck   *deck.Deck
	rng    *rand.Rand
	clock  quartz.Clock
	bots   BotDecider

	// dispatch runs bot timer callbacks. The default runs them inline,
	// which is only safe when the clock fires on the game-loop
	// goroutine (mock clocks in tests). Interactive frontends install a
	// dispatcher that funnels the callback onto their loop.
	dispatch func(func())

	thinkDelayMin time.Duration
	thinkDelayMax time.Duration
	playerName    string

	botTimer   *quartz.Timer
	handNumber int64
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces the real clock, typically with quartz.NewMock in
// tests.
func WithClock(clock quartz.Clock) Option {
	return func(m *Manager) { m.clock = clock }
}

// WithRNG supplies the randomness source for shuffling and bot timing.
func WithRNG(rng *rand.Rand) Option {
	return func(m *Manager) { m.rng = rng }
}

// WithBotDecider installs the decision engine consulted for bot seats.
func WithBotDecider(decider BotDecider) Option {
	return func(m *Manager) { m.bots = decider }
}

// WithThinkDelay bounds the simulated thinking time before a bot acts.
func WithThinkDelay(min, max time.Duration) Option {
	return func(m *Manager) {
		m.thinkDelayMin = min
		m.thinkDelayMax = max
	}
}

// WithPlayerName names the human seats.
func WithPlayerName(name string) Option {
	return func(m *Manager) {
		if name != "" {
			m.playerName = name
		}
	}
}

// WithDispatcher routes bot timer callbacks onto the owner's game
// loop.
func WithDispatcher(dispatch func(func())) Option {
	return func(m *Manager) { m.dispatch = dispatch }
}

// NewManager creates a table manager with an empty state.
func NewManager(logger *log.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	m := &Manager{
		logger:        logger.WithPrefix("engine"),
		events:        NewEventBus(),
		state:         NewGameState(),
		order:         NewTurnOrder(),
		clock:         quartz.NewReal(),
		thinkDelayMin: time.Second,
		thinkDelayMax: 3 * time.Second,
		playerName:    "Player",
	}
	m.dispatch = func(fn func()) { fn() }
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = randutil.New(time.Now().UnixNano())
	}
	m.deck = deck.New(m.rng, logger)
	return m
}

// State exposes the table state for presentation. Callers must treat
// it as read-only.
func (m *Manager) State() *GameState { return m.state }

// Events returns the bus engine notifications are published on.
func (m *Manager) Events() EventBus { return m.events }

// InitializeGame seats the requested players with fresh stacks. Humans
// occupy the lowest seat indices, bots fill in after them. Player
// counts are clamped to the table size and a two player minimum.
func (m *Manager) InitializeGame(numHumans, numBots int, startingStack, smallBlind int64) error {
	if numHumans < 0 {
		numHumans = 0
	}
	if smallBlind <= 0 {
		m.logger.Warn("invalid small blind, using default", "smallBlind", smallBlind)
		smallBlind = 5
	}
	if startingStack <= 0 {
		m.logger.Warn("invalid starting stack, using default", "startingStack", startingStack)
		startingStack = 1000
	}
	if numHumans+numBots < 2 {
		numBots = 2 - numHumans
	}
	if numHumans+numBots > NumSeats {
		numBots = NumSeats - numHumans
		if numBots < 0 {
			return fmt.Errorf("too many players: %d humans for %d seats", numHumans, NumSeats)
		}
	}

	gs := NewGameState()
	gs.SmallBlind = smallBlind
	gs.BigBlind = smallBlind * 2

	seat := 0
	for i := 0; i < numHumans; i++ {
		name := m.playerName
		if numHumans > 1 {
			name = fmt.Sprintf("%s %d", m.playerName, i+1)
		}
		gs.Seats[seat] = Seat{
			Index:    seat,
			Name:     name,
			PlayerID: int64(i + 1),
			IsSeated: true,
			Stack:    startingStack,
			Status:   StatusWaiting,
		}
		seat++
	}
	for i := 0; i < numBots; i++ {
		gs.Seats[seat] = Seat{
			Index:    seat,
			Name:     fmt.Sprintf("Bot %d", i+1),
			PlayerID: -1,
			IsBot:    true,
			IsSeated: true,
			Stack:    startingStack,
			Status:   StatusWaiting,
		}
		seat++
	}

	m.state = gs
	m.order.Rebuild(&gs.Seats)
	m.handNumber = 0
	m.logger.Info("table initialized",
		"humans", numHumans, "bots", numBots,
		"stack", startingStack, "smallBlind", smallBlind)
	return nil
}

// SetSeatName renames an occupied seat. Used by frontends that carry
// configured bot names.
func (m *Manager) SetSeatName(seat int, name string) {
	if seat < 0 || seat >= NumSeats || name == "" {
		return
	}
	if m.state.Seats[seat].IsSeated {
		m.state.Seats[seat].Name = name
	}
}

// CanStartNewHand reports whether StartNewHand may be called, with a
// human-readable reason when it may not.
func (m *Manager) CanStartNewHand() (bool, string) {
	gs := m.state
	if gs.Stage.InHand() {
		return false, "a hand is already in progress"
	}
	ready := 0
	for i := range gs.Seats {
		s := &gs.Seats[i]
		if s.IsSeated && s.Stack >= gs.BigBlind {
			ready++
		}
	}
	if ready < 2 {
		return false, "need at least 2 players who can cover the big blind"
	}
	return true, ""
}

// StartNewHand resets hand state, rotates the dealer, shuffles a fresh
// deck and nominates the blinds. The hand then proceeds through
// ProcessPlayerAction calls until showdown.
func (m *Manager) StartNewHand() error {
	gs := m.state
	m.stopBotTimer()

	for i := range gs.Seats {
		if gs.Seats[i].IsSeated {
			gs.Seats[i].HandStartStack = gs.Seats[i].Stack
		}
	}

	dealer := gs.DealerSeat
	sb := gs.SmallBlind
	bb := gs.BigBlind
	gs.resetHandState()
	gs.DealerSeat = dealer
	gs.SmallBlind = sb
	gs.BigBlind = bb

	eligible := make([]int, 0, NumSeats)
	for i := range gs.Seats {
		s := &gs.Seats[i]
		if !s.IsSeated {
			continue
		}
		if s.Stack <= 0 {
			s.Status = StatusSittingOut
			continue
		}
		s.Status = StatusPlaying
		eligible = append(eligible, i)
	}
	if len(eligible) < 2 {
		gs.Stage = StageWaitingForPlayers
		return fmt.Errorf("need at least 2 players with chips, have %d", len(eligible))
	}

	if gs.DealerSeat == -1 {
		gs.DealerSeat = eligible[m.rng.IntN(len(eligible))]
	} else {
		next := m.order.Next(&gs.Seats, gs.DealerSeat, FilterHasChips)
		if next == -1 {
			gs.Stage = StageWaitingForPlayers
			return fmt.Errorf("no eligible seat for the dealer button")
		}
		gs.DealerSeat = next
	}
	gs.Seats[gs.DealerSeat].IsDealer = true

	m.deck.Initialize()
	m.deck.Shuffle()

	// Heads-up the dealer posts the small blind; otherwise the blinds
	// are the two seats after the button.
	var sbSeat int
	if len(eligible) == 2 {
		sbSeat = gs.DealerSeat
	} else {
		sbSeat = m.order.Next(&gs.Seats, gs.DealerSeat, FilterHasChips)
	}
	bbSeat := -1
	if sbSeat != -1 {
		bbSeat = m.order.Next(&gs.Seats, sbSeat, FilterHasChips)
	}
	if sbSeat == -1 || bbSeat == -1 || sbSeat == bbSeat {
		gs.Stage = StageWaitingForPlayers
		return fmt.Errorf("could not nominate blinds")
	}
	gs.PendingSmallBlindSeat = sbSeat
	gs.PendingBigBlindSeat = bbSeat
	gs.Stage = StageWaitingForSmallBlind
	gs.Seats[sbSeat].Status = StatusMustPostSmallBlind

	m.handNumber++
	m.logger.Info("starting hand",
		"hand", m.handNumber,
		"dealer", gs.DealerSeat,
		"smallBlind", sbSeat,
		"bigBlind", bbSeat)
	m.publish(HandStartingEvent{DealerSeat: gs.DealerSeat, HandNumber: m.handNumber})
	m.history("--- Hand %d: %s has the button ---", m.handNumber, gs.Seats[gs.DealerSeat].Name)
	m.requestAction(sbSeat)
	return nil
}

// AllowedActions returns the actions the seat could legally take right
// now, empty if the seat has nothing to decide.
func (m *Manager) AllowedActions(seat int) []Action {
	if seat < 0 || seat >= NumSeats {
		return nil
	}
	return m.allowedActions(seat)
}

func (m *Manager) allowedActions(seat int) []Action {
	gs := m.state
	s := &gs.Seats[seat]
	switch gs.Stage {
	case StageWaitingForSmallBlind:
		if seat == gs.PendingSmallBlindSeat && s.Stack > 0 {
			return []Action{ActionPostBlind}
		}
	case StageWaitingForBigBlind:
		if seat == gs.PendingBigBlindSeat && s.Stack > 0 {
			return []Action{ActionPostBlind}
		}
	case StagePreflop, StageFlop, StageTurn, StageRiver:
		if s.Status != StatusPlaying || s.Stack <= 0 {
			return nil
		}
		actions := []Action{ActionFold}
		if s.CurrentBet == gs.BetToCall {
			actions = append(actions, ActionCheck, ActionBet)
		} else {
			actions = append(actions, ActionCall)
			if s.Stack > gs.BetToCall-s.CurrentBet {
				actions = append(actions, ActionRaise)
			}
		}
		return actions
	}
	return nil
}

// ProcessPlayerAction is the single entry point for player decisions,
// human and bot alike. An illegal action, wrong seat or bad amount
// mutates nothing; the current seat is simply asked again.
func (m *Manager) ProcessPlayerAction(seat int, action Action, amount int64) {
	gs := m.state
	if gs.CurrentTurnSeat == -1 {
		m.logger.Error("action received with no pending turn", "seat", seat, "action", action)
		return
	}
	if seat != gs.CurrentTurnSeat {
		m.logger.Warn("action from out-of-turn seat",
			"seat", seat, "currentTurn", gs.CurrentTurnSeat)
		m.requestAction(gs.CurrentTurnSeat)
		return
	}

	switch gs.Stage {
	case StageWaitingForSmallBlind, StageWaitingForBigBlind:
		m.handleBlindPost(seat, action)
	case StagePreflop, StageFlop, StageTurn, StageRiver:
		m.handleBettingAction(seat, action, amount)
	default:
		m.logger.Warn("action outside a hand", "stage", gs.Stage, "seat", seat)
	}
}

func (m *Manager) handleBlindPost(seat int, action Action) {
	gs := m.state
	if action != ActionPostBlind {
		m.logger.Info("expected blind post", "seat", seat, "got", action)
		m.requestAction(seat)
		return
	}
	s := &gs.Seats[seat]

	switch gs.Stage {
	case StageWaitingForSmallBlind:
		if seat != gs.PendingSmallBlindSeat {
			m.requestAction(gs.CurrentTurnSeat)
			return
		}
		posted := m.postBlind(s, gs.SmallBlind)
		s.IsSmallBlind = true
		m.history("%s posts small blind %d", s.Name, posted)
		gs.Stage = StageWaitingForBigBlind
		gs.Seats[gs.PendingBigBlindSeat].Status = StatusMustPostBigBlind
		m.requestAction(gs.PendingBigBlindSeat)

	case StageWaitingForBigBlind:
		if seat != gs.PendingBigBlindSeat {
			m.requestAction(gs.CurrentTurnSeat)
			return
		}
		posted := m.postBlind(s, gs.BigBlind)
		s.IsBigBlind = true
		// Callers owe the full big blind even when the post was short.
		gs.BetToCall = gs.BigBlind
		m.history("%s posts big blind %d", s.Name, posted)

		if !m.dealHoleCards() {
			m.logger.Error("aborting hand, could not deal hole cards")
			gs.resetHandState()
			return
		}
		gs.Stage = StagePreflop
		m.publish(HoleCardsDealtEvent{})

		first := m.preflopFirstToAct()
		if first == -1 {
			m.proceedToNextGameStage()
			return
		}
		m.requestAction(first)
	}
}

// postBlind moves up to blind chips from the seat into the pot. A
// short stack posts what it has and is all-in.
func (m *Manager) postBlind(s *Seat, blind int64) int64 {
	posted := blind
	if posted > s.Stack {
		posted = s.Stack
	}
	s.Stack -= posted
	s.CurrentBet = posted
	m.state.Pot += posted
	if s.Stack == 0 {
		s.Status = StatusAllIn
	} else {
		s.Status = StatusPlaying
	}
	m.publish(TableInfoEvent{Actor: s.Name, Pot: m.state.Pot})
	return posted
}

// preflopFirstToAct is the seat after the big blind, or the small
// blind heads-up.
func (m *Manager) preflopFirstToAct() int {
	gs := m.state
	if gs.countInHand() == 2 {
		if FilterCanAct(&gs.Seats[gs.PendingSmallBlindSeat]) {
			return gs.PendingSmallBlindSeat
		}
		return m.order.Next(&gs.Seats, gs.PendingSmallBlindSeat, FilterCanAct)
	}
	return m.order.Next(&gs.Seats, gs.PendingBigBlindSeat, FilterCanAct)
}

// dealHoleCards gives every live seat two cards, one per pass,
// starting left of the dealer. Heads-up the dealer is the small blind
// and receives the first card of each pass.
func (m *Manager) dealHoleCards() bool {
	gs := m.state
	last := gs.DealerSeat
	if gs.countInHand() == 2 {
		last = gs.PendingBigBlindSeat
	}
	for pass := 0; pass < 2; pass++ {
		seat := last
		for {
			seat = m.order.Next(&gs.Seats, seat, FilterInHand)
			if seat == -1 {
				return false
			}
			card, ok := m.deck.DealCard()
			if !ok {
				m.logger.Error("deck exhausted dealing hole cards", "seat", seat)
				return false
			}
			gs.Seats[seat].HoleCards = append(gs.Seats[seat].HoleCards, card)
			if seat == last {
				break
			}
		}
	}
	return true
}

func (m *Manager) handleBettingAction(seat int, action Action, amount int64) {
	gs := m.state
	s := &gs.Seats[seat]
	allowed := m.allowedActions(seat)
	if !containsAction(allowed, action) {
		m.logger.Info("illegal action ignored",
			"seat", seat, "action", action, "stage", gs.Stage)
		m.requestAction(seat)
		return
	}

	switch action {
	case ActionFold:
		s.Status = StatusFolded
		s.HasActed = true
		m.history("%s folds", s.Name)

	case ActionCheck:
		s.HasActed = true
		m.history("%s checks", s.Name)

	case ActionCall:
		need := gs.BetToCall - s.CurrentBet
		pay := need
		if pay > s.Stack {
			pay = s.Stack
		}
		s.Stack -= pay
		s.CurrentBet += pay
		gs.Pot += pay
		s.HasActed = true
		if s.Stack == 0 {
			s.Status = StatusAllIn
			m.history("%s calls %d and is all-in", s.Name, pay)
		} else {
			m.history("%s calls %d", s.Name, pay)
		}
		m.publish(TableInfoEvent{Actor: s.Name, Pot: gs.Pot})

	case ActionBet:
		toAdd := amount - s.CurrentBet
		if toAdd <= 0 || toAdd > s.Stack {
			m.rejectAmount(seat, action, amount)
			return
		}
		// A bet below the big blind is only legal as an all-in.
		if toAdd < gs.BigBlind && toAdd != s.Stack {
			m.rejectAmount(seat, action, amount)
			return
		}
		raiseSize := amount - gs.BetToCall
		s.Stack -= toAdd
		s.CurrentBet = amount
		gs.Pot += toAdd
		gs.LastRaiseSize = raiseSize
		gs.BetToCall = amount
		if gs.OpenerSeat == -1 {
			gs.OpenerSeat = seat
		}
		m.recordAggression(seat)
		if s.Status == StatusAllIn {
			m.history("%s bets %d and is all-in", s.Name, amount)
		} else {
			m.history("%s bets %d", s.Name, amount)
		}
		m.publish(TableInfoEvent{Actor: s.Name, Pot: gs.Pot})

	case ActionRaise:
		toAdd := amount - s.CurrentBet
		if amount <= gs.BetToCall || toAdd <= 0 || toAdd > s.Stack {
			m.rejectAmount(seat, action, amount)
			return
		}
		raiseSize := amount - gs.BetToCall
		minStep := gs.LastRaiseSize
		if minStep <= 0 {
			minStep = gs.BigBlind
		}
		// A short raise is only legal as an all-in.
		if raiseSize < minStep && toAdd != s.Stack {
			m.rejectAmount(seat, action, amount)
			return
		}
		s.Stack -= toAdd
		s.CurrentBet = amount
		gs.Pot += toAdd
		gs.LastRaiseSize = raiseSize
		gs.BetToCall = amount
		m.recordAggression(seat)
		if s.Status == StatusAllIn {
			m.history("%s raises to %d and is all-in", s.Name, amount)
		} else {
			m.history("%s raises to %d", s.Name, amount)
		}
		m.publish(TableInfoEvent{Actor: s.Name, Pot: gs.Pot})

	default:
		m.requestAction(seat)
		return
	}

	m.advanceAfterAction(seat)
}

// rejectAmount re-requests the turn after an action with a bad amount.
// State is untouched.
func (m *Manager) rejectAmount(seat int, action Action, amount int64) {
	m.logger.Info("illegal amount ignored",
		"seat", seat, "action", action, "amount", amount,
		"betToCall", m.state.BetToCall)
	m.requestAction(seat)
}

// recordAggression marks the seat as the live aggressor and reopens
// the action for everyone else.
func (m *Manager) recordAggression(seat int) {
	gs := m.state
	s := &gs.Seats[seat]
	if s.Stack == 0 {
		s.Status = StatusAllIn
	}
	gs.LastAggressorSeat = seat
	for i := range gs.Seats {
		gs.Seats[i].HasActed = false
	}
	s.HasActed = true
}

func (m *Manager) advanceAfterAction(seat int) {
	gs := m.state
	if gs.countInHand() <= 1 {
		m.proceedToShowdown()
		return
	}
	if m.isBettingRoundOver() {
		m.proceedToNextGameStage()
		return
	}
	next := m.order.Next(&gs.Seats, seat, FilterCanAct)
	if next == -1 {
		m.proceedToNextGameStage()
		return
	}
	m.requestAction(next)
}

// isBettingRoundOver reports whether every seat that can still bet has
// acted this round and matched the bet to call. Blind posts do not set
// HasActed, which gives the big blind its preflop option, and a bet or
// raise clears everyone else's flag, which keeps the round open until
// all callers respond.
func (m *Manager) isBettingRoundOver() bool {
	gs := m.state
	if gs.countInHand() <= 1 {
		return true
	}
	for i := range gs.Seats {
		s := &gs.Seats[i]
		if !s.CanBetThisHand() {
			continue
		}
		if !s.HasActed || s.CurrentBet != gs.BetToCall {
			return false
		}
	}
	return true
}

// proceedToNextGameStage closes the betting round and deals the next
// street. When fewer than two seats can still bet, the remaining
// streets are dealt out without further betting.
func (m *Manager) proceedToNextGameStage() {
	gs := m.state
	if gs.countInHand() <= 1 || gs.Stage == StageRiver {
		m.proceedToShowdown()
		return
	}
	m.clearTurn()
	gs.resetRoundState()

	for {
		if !m.dealNextStreet() {
			m.proceedToShowdown()
			return
		}
		if gs.countCanBet() >= 2 {
			break
		}
		if gs.Stage == StageRiver {
			m.proceedToShowdown()
			return
		}
	}

	first := m.order.Next(&gs.Seats, gs.DealerSeat, FilterCanAct)
	if first == -1 {
		m.proceedToNextGameStage()
		return
	}
	m.requestAction(first)
}

// dealNextStreet advances the stage and deals its community cards.
func (m *Manager) dealNextStreet() bool {
	gs := m.state
	var count int
	switch gs.Stage {
	case StagePreflop:
		gs.Stage = StageFlop
		count = 3
	case StageFlop:
		gs.Stage = StageTurn
		count = 1
	case StageTurn:
		gs.Stage = StageRiver
		count = 1
	default:
		return false
	}
	dealt := make([]deck.Card, 0, count)
	for i := 0; i < count; i++ {
		card, ok := m.deck.DealCard()
		if !ok {
			m.logger.Error("deck exhausted dealing community cards", "stage", gs.Stage)
			return false
		}
		dealt = append(dealt, card)
		gs.CommunityCards = append(gs.CommunityCards, card)
	}
	m.publish(CommunityCardsEvent{
		Stage: gs.Stage,
		Cards: append([]deck.Card(nil), gs.CommunityCards...),
	})
	m.history("%s: %s", gs.Stage, formatCards(dealt))
	return true
}

// proceedToShowdown resolves the hand: evaluates the live hands,
// awards the pot and returns the table to the waiting stage.
func (m *Manager) proceedToShowdown() {
	gs := m.state
	m.stopBotTimer()
	m.clearTurn()
	gs.Stage = StageShowdown

	results, announcement := gs.resolveShowdown()
	if announcement != "" {
		m.history("%s", announcement)
	}
	m.publish(ShowdownEvent{Results: results, Announcement: announcement})

	gs.Stage = StageWaitingForPlayers
	gs.PendingSmallBlindSeat = -1
	gs.PendingBigBlindSeat = -1
	m.publish(TurnChangedEvent{Seat: -1})
	m.logger.Info("hand complete", "hand", m.handNumber, "result", announcement)
}

// requestAction hands the turn to seat and asks it to act. Bot seats
// get a decision scheduled on the clock.
func (m *Manager) requestAction(seat int) {
	gs := m.state
	m.clearTurn()
	gs.CurrentTurnSeat = seat
	gs.Seats[seat].IsTurn = true

	allowed := m.allowedActions(seat)
	m.publish(TurnChangedEvent{Seat: seat})
	m.publish(ActionRequestedEvent{
		Seat:       seat,
		Allowed:    allowed,
		BetToCall:  gs.BetToCall,
		MinRaise:   gs.MinRaiseTo(),
		Stack:      gs.Seats[seat].Stack,
		CurrentBet: gs.Seats[seat].CurrentBet,
	})
	if gs.Seats[seat].IsBot {
		m.scheduleBotAction(seat)
	}
}

// MinRaiseTo returns the smallest legal total for the next bet or
// raise, ignoring all-in exceptions.
func (gs *GameState) MinRaiseTo() int64 {
	step := gs.LastRaiseSize
	if step <= 0 {
		step = gs.BigBlind
	}
	return gs.BetToCall + step
}

func (m *Manager) scheduleBotAction(seat int) {
	if m.bots == nil {
		return
	}
	m.stopBotTimer()
	delay := m.thinkDelayMin
	if m.thinkDelayMax > m.thinkDelayMin {
		delay += time.Duration(m.rng.Int64N(int64(m.thinkDelayMax - m.thinkDelayMin)))
	}
	m.botTimer = m.clock.AfterFunc(delay, func() {
		m.dispatch(func() { m.runBotAction(seat) })
	})
}

func (m *Manager) runBotAction(seat int) {
	gs := m.state
	if gs.CurrentTurnSeat != seat || !gs.Seats[seat].IsBot {
		m.logger.Warn("stale bot timer ignored",
			"seat", seat, "currentTurn", gs.CurrentTurnSeat)
		return
	}
	allowed := m.allowedActions(seat)
	if len(allowed) == 0 {
		m.logger.Error("bot seat has no available actions", "seat", seat)
		return
	}
	action, amount := m.bots.Decide(gs, seat, allowed, gs.BetToCall, gs.MinRaiseTo())
	m.logger.Debug("bot decided",
		"seat", seat, "name", gs.Seats[seat].Name,
		"action", action, "amount", amount)
	m.ProcessPlayerAction(seat, action, amount)
}

func (m *Manager) stopBotTimer() {
	if m.botTimer != nil {
		m.botTimer.Stop()
		m.botTimer = nil
	}
}

func (m *Manager) clearTurn() {
	gs := m.state
	gs.CurrentTurnSeat = -1
	for i := range gs.Seats {
		gs.Seats[i].IsTurn = false
	}
}

func (m *Manager) publish(event GameEvent) {
	m.events.Publish(event)
}

func (m *Manager) history(format string, args ...any) {
	m.publish(HistoryEvent{Line: fmt.Sprintf(format, args...)})
}

func formatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
