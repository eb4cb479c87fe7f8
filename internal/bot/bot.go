// Package bot implements the computer opponents. Each bot seat carries
// a personality that shades a shared hand-strength model: preflop
// hands are scored with a Chen-style formula, postflop hands by made
// hand rank plus draw potential, and the final action weighs that
// score against pot odds, position and the bot's temperament.
package bot

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/tablestakes/holdem/internal/deck"
	"github.com/tablestakes/holdem/internal/engine"
	"github.com/tablestakes/holdem/internal/evaluator"
)

// Personality shades a bot's decisions. All factors are in [0, 1].
type Personality struct {
	// Aggressiveness raises bet/raise frequency and sizing.
	Aggressiveness float64
	// BluffFrequency is the chance of betting or raising a weak hand.
	BluffFrequency float64
	// Tightness raises the strength required to continue in a hand.
	Tightness float64
}

// Difficulty presets.
var (
	Easy   = Personality{Aggressiveness: 0.3, BluffFrequency: 0.05, Tightness: 0.3}
	Medium = Personality{Aggressiveness: 0.5, BluffFrequency: 0.12, Tightness: 0.5}
	Hard   = Personality{Aggressiveness: 0.7, BluffFrequency: 0.20, Tightness: 0.65}
)

// PersonalityForDifficulty maps a difficulty name to its preset,
// defaulting to Medium for unknown names.
func PersonalityForDifficulty(difficulty string) Personality {
	switch difficulty {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Medium
	}
}

// Engine makes decisions for every bot seat at a table. It implements
// engine.BotDecider.
type Engine struct {
	logger        *log.Logger
	rng           *rand.Rand
	personalities map[int]Personality
}

// NewEngine creates a bot engine. All seats use the Medium personality
// until SetPersonality assigns them one.
func NewEngine(logger *log.Logger, rng *rand.Rand) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		logger:        logger.WithPrefix("bot"),
		rng:           rng,
		personalities: make(map[int]Personality),
	}
}

// SetPersonality assigns a personality to a seat.
func (e *Engine) SetPersonality(seat int, p Personality) {
	e.personalities[seat] = p
}

func (e *Engine) personality(seat int) Personality {
	if p, ok := e.personalities[seat]; ok {
		return p
	}
	return Medium
}

// Decide picks an action for the seat. The returned amount is the
// total round contribution to reach, and the action is always drawn
// from allowed.
func (e *Engine) Decide(state *engine.GameState, seat int, allowed []engine.Action, betToCall, minRaiseTo int64) (engine.Action, int64) {
	if len(allowed) == 0 {
		return engine.ActionFold, 0
	}
	// Blind posts are forced.
	if hasAction(allowed, engine.ActionPostBlind) {
		return engine.ActionPostBlind, 0
	}

	s := &state.Seats[seat]
	p := e.personality(seat)
	strength := e.handStrength(s.HoleCards, state.CommunityCards)
	strength += e.positionBonus(state, seat)
	strength -= (p.Tightness - 0.5) * 0.12
	if strength < 0 {
		strength = 0
	} else if strength > 1 {
		strength = 1
	}

	toCall := betToCall - s.CurrentBet
	action, amount := e.choose(state, s, p, strength, toCall, minRaiseTo, allowed)
	return validate(allowed, action, amount, s)
}

// choose applies the strength model. Thresholds come from the
// personality: aggressive bots bet thinner, tight bots fold sooner.
func (e *Engine) choose(state *engine.GameState, s *engine.Seat, p Personality, strength float64, toCall int64, minRaiseTo int64, allowed []engine.Action) (engine.Action, int64) {
	betThreshold := 0.62 - p.Aggressiveness*0.18
	raiseThreshold := 0.75 - p.Aggressiveness*0.15
	bluffing := e.rng.Float64() < p.BluffFrequency

	if toCall <= 0 {
		if strength > betThreshold || bluffing {
			return engine.ActionBet, e.betAmount(state, s, p, strength)
		}
		return engine.ActionCheck, 0
	}

	potOdds := float64(toCall) / float64(state.Pot+toCall)
	if strength > raiseThreshold && hasAction(allowed, engine.ActionRaise) {
		return engine.ActionRaise, e.raiseAmount(state, s, p, strength, minRaiseTo)
	}
	if bluffing && hasAction(allowed, engine.ActionRaise) && strength > 0.25 {
		return engine.ActionRaise, minRaiseTo
	}
	// Call when the hand is worth more than the price, with tightness
	// demanding a bigger edge.
	if strength >= potOdds+(p.Tightness-0.3)*0.2 {
		return engine.ActionCall, 0
	}
	return engine.ActionFold, 0
}

// betAmount sizes an opening bet as a pot fraction scaled by strength
// and aggression, expressed as the total to reach.
func (e *Engine) betAmount(state *engine.GameState, s *engine.Seat, p Personality, strength float64) int64 {
	pot := state.Pot
	if pot < state.BigBlind {
		pot = state.BigBlind
	}
	fraction := 0.4 + strength*0.5 + (p.Aggressiveness-0.5)*0.3
	bet := int64(float64(pot) * fraction)
	if bet < state.BigBlind {
		bet = state.BigBlind
	}
	if bet > s.Stack {
		bet = s.Stack
	}
	return s.CurrentBet + bet
}

// raiseAmount sizes a raise above the minimum, clamped to the stack.
func (e *Engine) raiseAmount(state *engine.GameState, s *engine.Seat, p Personality, strength float64, minRaiseTo int64) int64 {
	extra := int64(float64(state.Pot) * (strength - 0.5) * p.Aggressiveness)
	if extra < 0 {
		extra = 0
	}
	amount := minRaiseTo + extra
	if max := s.CurrentBet + s.Stack; amount > max {
		amount = max
	}
	return amount
}

// handStrength scores the hand in [0, 1].
func (e *Engine) handStrength(holeCards, communityCards []deck.Card) float64 {
	if len(holeCards) != 2 {
		return 0
	}
	if len(communityCards) == 0 {
		return preflopScore(holeCards[0], holeCards[1]) / 20.0
	}
	return postflopScore(holeCards, communityCards)
}

// preflopScore is a Chen-style formula: high card points, pair
// doubling, suited and connectedness bonuses, gap penalties. The
// result is roughly 0-20.
func preflopScore(a, b deck.Card) float64 {
	high, low := a, b
	if low.Rank > high.Rank {
		high, low = low, high
	}

	var score float64
	switch high.Rank {
	case deck.Ace:
		score = 10
	case deck.King:
		score = 8
	case deck.Queen:
		score = 7
	case deck.Jack:
		score = 6
	default:
		score = float64(high.Rank) / 2
	}

	if high.Rank == low.Rank {
		score *= 2
		if score < 5 {
			score = 5
		}
		return score
	}

	if high.Suit == low.Suit {
		score += 2
	}

	gap := int(high.Rank) - int(low.Rank) - 1
	switch {
	case gap == 0:
		score += 1
	case gap == 1:
		score -= 1
	case gap == 2:
		score -= 2
	case gap == 3:
		score -= 4
	default:
		score -= 5
	}
	if gap <= 1 && high.Rank < deck.Queen {
		score += 1
	}
	if score < 0 {
		score = 0
	}
	return score
}

// postflopScore combines the made hand with draw potential.
func postflopScore(holeCards, communityCards []deck.Card) float64 {
	result := evaluator.Evaluate(holeCards, communityCards)

	var base float64
	switch result.Category {
	case evaluator.HighCard:
		base = 0.10
	case evaluator.OnePair:
		base = 0.30
	case evaluator.TwoPair:
		base = 0.55
	case evaluator.ThreeOfAKind:
		base = 0.68
	case evaluator.Straight:
		base = 0.78
	case evaluator.Flush:
		base = 0.84
	case evaluator.FullHouse:
		base = 0.92
	default: // quads and better
		base = 1.0
	}
	// A pair of aces plays better than a pair of deuces.
	if (result.Category == evaluator.OnePair || result.Category == evaluator.TwoPair) &&
		len(result.Kickers) > 0 {
		base += float64(result.Kickers[0]-deck.Two) / 100.0
	}

	all := make([]deck.Card, 0, len(holeCards)+len(communityCards))
	all = append(all, holeCards...)
	all = append(all, communityCards...)
	if len(communityCards) < 5 {
		if hasFlushDraw(all) {
			base += 0.15
		}
		if hasOpenStraightDraw(all) {
			base += 0.12
		}
	}
	if base > 1 {
		base = 1
	}
	return base
}

// hasFlushDraw reports four cards of one suit.
func hasFlushDraw(cards []deck.Card) bool {
	var counts [4]int
	for _, c := range cards {
		counts[c.Suit]++
		if counts[c.Suit] == 4 {
			return true
		}
	}
	return false
}

// hasOpenStraightDraw reports four consecutive distinct ranks.
func hasOpenStraightDraw(cards []deck.Card) bool {
	var seen [15]bool
	for _, c := range cards {
		seen[c.Rank] = true
		if c.Rank == deck.Ace {
			seen[1] = true
		}
	}
	run := 0
	for r := 1; r <= int(deck.Ace); r++ {
		if !seen[r] {
			run = 0
			continue
		}
		run++
		if run == 4 {
			return true
		}
	}
	return false
}

// positionBonus loosens up later positions: acting after more players
// is worth a small strength premium.
func (e *Engine) positionBonus(state *engine.GameState, seat int) float64 {
	inHand := 0
	behind := 0
	for i := range state.Seats {
		s := &state.Seats[i]
		if !s.InHand() {
			continue
		}
		inHand++
		if s.Index != seat && !s.HasActed && s.Status == engine.StatusPlaying {
			behind++
		}
	}
	if inHand <= 1 {
		return 0
	}
	return 0.05 * (1 - float64(behind)/float64(inHand))
}

// validate makes sure the chosen action is actually available, walking
// down to the cheapest legal alternative when it is not.
func validate(allowed []engine.Action, action engine.Action, amount int64, s *engine.Seat) (engine.Action, int64) {
	if hasAction(allowed, action) {
		switch action {
		case engine.ActionBet, engine.ActionRaise:
			if max := s.CurrentBet + s.Stack; amount > max {
				amount = max
			}
			return action, amount
		default:
			return action, 0
		}
	}
	if hasAction(allowed, engine.ActionCheck) {
		return engine.ActionCheck, 0
	}
	if hasAction(allowed, engine.ActionCall) {
		return engine.ActionCall, 0
	}
	return engine.ActionFold, 0
}

func hasAction(actions []engine.Action, a engine.Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}
