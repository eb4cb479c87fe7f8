package engine

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/require"

	"github.com/tablestakes/holdem/internal/randutil"
)

// passiveDecider posts blinds and otherwise checks or calls.
type passiveDecider struct {
	decisions int
}

func (d *passiveDecider) Decide(state *GameState, seat int, allowed []Action, betToCall, minRaiseTo int64) (Action, int64) {
	d.decisions++
	for _, a := range []Action{ActionPostBlind, ActionCheck, ActionCall} {
		if containsAction(allowed, a) {
			return a, 0
		}
	}
	return ActionFold, 0
}

func TestBotActsAfterThinkDelay(t *testing.T) {
	clock := quartz.NewMock(t)
	decider := &passiveDecider{}
	m := NewManager(log.New(io.Discard),
		WithRNG(randutil.New(42)),
		WithClock(clock),
		WithBotDecider(decider),
		WithThinkDelay(time.Second, time.Second))
	require.NoError(t, m.InitializeGame(0, 2, 1000, 5))
	require.NoError(t, m.StartNewHand())

	gs := m.State()
	require.Equal(t, StageWaitingForSmallBlind, gs.Stage)
	require.Zero(t, decider.decisions, "bot must not act before the delay elapses")

	ctx := context.Background()
	clock.Advance(time.Second).MustWait(ctx)
	require.Equal(t, 1, decider.decisions)
	require.Equal(t, StageWaitingForBigBlind, gs.Stage)

	clock.Advance(time.Second).MustWait(ctx)
	require.Equal(t, 2, decider.decisions)
	require.Equal(t, StagePreflop, gs.Stage)
}

func TestClockDrivenHandRunsToCompletion(t *testing.T) {
	clock := quartz.NewMock(t)
	decider := &passiveDecider{}
	m := NewManager(log.New(io.Discard),
		WithRNG(randutil.New(7)),
		WithClock(clock),
		WithBotDecider(decider),
		WithThinkDelay(time.Second, time.Second))
	require.NoError(t, m.InitializeGame(0, 3, 1000, 5))
	require.NoError(t, m.StartNewHand())

	ctx := context.Background()
	gs := m.State()
	for i := 0; i < 100 && gs.Stage.InHand(); i++ {
		clock.Advance(time.Second).MustWait(ctx)
	}

	require.Equal(t, StageWaitingForPlayers, gs.Stage)
	require.Equal(t, int64(0), gs.Pot)
	require.Equal(t, int64(3000), gs.TotalChips())
}

func TestHumanSeatGetsNoBotTimer(t *testing.T) {
	clock := quartz.NewMock(t)
	decider := &passiveDecider{}
	m := NewManager(log.New(io.Discard),
		WithRNG(randutil.New(42)),
		WithClock(clock),
		WithBotDecider(decider),
		WithThinkDelay(time.Second, time.Second))
	require.NoError(t, m.InitializeGame(2, 0, 1000, 5))
	require.NoError(t, m.StartNewHand())

	gs := m.State()
	turn := gs.CurrentTurnSeat
	// Nothing is scheduled for humans; time passing changes nothing.
	clock.Advance(10 * time.Second).MustWait(context.Background())
	require.Zero(t, decider.decisions)
	require.Equal(t, turn, gs.CurrentTurnSeat)
	require.Equal(t, StageWaitingForSmallBlind, gs.Stage)
}
