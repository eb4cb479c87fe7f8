package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/tablestakes/holdem/internal/bot"
	"github.com/tablestakes/holdem/internal/engine"
	"github.com/tablestakes/holdem/internal/randutil"
)

type CLI struct {
	Hands   int   `default:"10000" help:"Number of hands to simulate"`
	Bots    int   `default:"6" help:"Bots per table (2-9)"`
	Stack   int64 `default:"1000" help:"Starting stack in chips"`
	Blind   int64 `default:"5" help:"Small blind in chips"`
	Workers int   `default:"0" help:"Parallel tables (0 = NumCPU)"`
	Seed    int64 `default:"0" help:"RNG seed (0 for random)"`
	Verbose bool  `short:"v" help:"Verbose logging"`
}

// difficultyStats accumulates results for one difficulty level across
// all tables.
type difficultyStats struct {
	Hands    int
	Wins     int
	NetChips int64
	NetBB    []float64
}

func (s *difficultyStats) meanBB() float64 {
	if s.Hands == 0 {
		return 0
	}
	var sum float64
	for _, v := range s.NetBB {
		sum += v
	}
	return sum / float64(s.Hands)
}

func (s *difficultyStats) stdErrBB() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.meanBB()
	var sum2 float64
	for _, v := range s.NetBB {
		d := v - mean
		sum2 += d * d
	}
	return math.Sqrt(sum2/float64(s.Hands-1)) / math.Sqrt(float64(s.Hands))
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("simulate"),
		kong.Description("Self-play bot simulation for difficulty tuning."))

	if cli.Bots < 2 || cli.Bots > 9 {
		log.Fatal("Bots must be between 2 and 9", "bots", cli.Bots)
	}
	if cli.Workers <= 0 {
		cli.Workers = runtime.NumCPU()
	}
	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.ErrorLevel)
	}

	start := time.Now()
	results, err := simulate(cli, seed, logger)
	if err != nil {
		log.Fatal("Simulation failed", "error", err)
	}
	report(cli, seed, results, time.Since(start))
	ctx.Exit(0)
}

// simulate shards the hand count across worker tables and merges the
// per-difficulty results.
func simulate(cli CLI, seed int64, logger *log.Logger) (map[string]*difficultyStats, error) {
	g, _ := errgroup.WithContext(context.Background())
	perWorker := make([]map[string]*difficultyStats, cli.Workers)

	for w := 0; w < cli.Workers; w++ {
		hands := cli.Hands / cli.Workers
		if w < cli.Hands%cli.Workers {
			hands++
		}
		g.Go(func() error {
			stats, err := runTable(cli, seed+int64(w)*7919, hands, logger)
			if err != nil {
				return err
			}
			perWorker[w] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(map[string]*difficultyStats)
	for _, stats := range perWorker {
		for name, s := range stats {
			m, ok := merged[name]
			if !ok {
				m = &difficultyStats{}
				merged[name] = m
			}
			m.Hands += s.Hands
			m.Wins += s.Wins
			m.NetChips += s.NetChips
			m.NetBB = append(m.NetBB, s.NetBB...)
		}
	}
	return merged, nil
}

// runTable plays hands at a single all-bot table. Seats cycle through
// the three difficulties; busted tables are re-bought so every hand
// counts.
func runTable(cli CLI, seed int64, hands int, logger *log.Logger) (map[string]*difficultyStats, error) {
	rng := randutil.New(seed)
	bots := bot.NewEngine(logger, rng)

	mgr := engine.NewManager(logger, engine.WithRNG(rng))
	if err := mgr.InitializeGame(0, cli.Bots, cli.Stack, cli.Blind); err != nil {
		return nil, err
	}

	difficulties := []string{"easy", "medium", "hard"}
	seatDifficulty := make(map[int]string)
	botIdx := 0
	for i := range mgr.State().Seats {
		s := &mgr.State().Seats[i]
		if !s.IsSeated {
			continue
		}
		d := difficulties[botIdx%len(difficulties)]
		seatDifficulty[i] = d
		mgr.SetSeatName(i, fmt.Sprintf("%s-%d", d, botIdx+1))
		bots.SetPersonality(i, bot.PersonalityForDifficulty(d))
		botIdx++
	}

	stats := make(map[string]*difficultyStats)
	for _, d := range difficulties {
		stats[d] = &difficultyStats{}
	}

	// Decisions are fed back synchronously as each turn is announced,
	// so a started hand runs to completion inside StartNewHand.
	driver := &autoPlayer{mgr: mgr, bots: bots}
	mgr.Events().Subscribe(driver)

	bigBlind := float64(cli.Blind * 2)
	collector := &resultCollector{
		stats:          stats,
		seatDifficulty: seatDifficulty,
		bigBlind:       bigBlind,
	}
	mgr.Events().Subscribe(collector)

	for played := 0; played < hands; played++ {
		if ok, _ := mgr.CanStartNewHand(); !ok {
			// Table is down to one stack; rebuy everyone.
			if err := mgr.InitializeGame(0, cli.Bots, cli.Stack, cli.Blind); err != nil {
				return nil, err
			}
			for i, d := range seatDifficulty {
				mgr.SetSeatName(i, fmt.Sprintf("%s-%d", d, i+1))
			}
		}
		if err := mgr.StartNewHand(); err != nil {
			return nil, err
		}
	}
	return stats, nil
}

// autoPlayer answers every action request with a bot decision.
type autoPlayer struct {
	mgr  *engine.Manager
	bots *bot.Engine
}

func (a *autoPlayer) OnGameEvent(event engine.GameEvent) {
	req, ok := event.(engine.ActionRequestedEvent)
	if !ok || len(req.Allowed) == 0 {
		return
	}
	action, amount := a.bots.Decide(a.mgr.State(), req.Seat, req.Allowed, req.BetToCall, req.MinRaise)
	a.mgr.ProcessPlayerAction(req.Seat, action, amount)
}

// resultCollector turns showdown results into per-difficulty stats.
type resultCollector struct {
	stats          map[string]*difficultyStats
	seatDifficulty map[int]string
	bigBlind       float64
}

func (c *resultCollector) OnGameEvent(event engine.GameEvent) {
	showdown, ok := event.(engine.ShowdownEvent)
	if !ok {
		return
	}
	for _, r := range showdown.Results {
		d, ok := c.seatDifficulty[r.SeatIndex]
		if !ok {
			continue
		}
		s := c.stats[d]
		s.Hands++
		s.NetChips += r.NetChange
		s.NetBB = append(s.NetBB, float64(r.NetChange)/c.bigBlind)
		if r.IsWinner {
			s.Wins++
		}
	}
}

func report(cli CLI, seed int64, results map[string]*difficultyStats, elapsed time.Duration) {
	fmt.Printf("Simulated %d hands, %d bots/table, seed %d, %s\n\n",
		cli.Hands, cli.Bots, seed, elapsed.Round(time.Millisecond))

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("%-10s %10s %8s %12s %12s\n",
		"difficulty", "seat-hands", "wins", "net bb/hand", "std err")
	for _, name := range names {
		s := results[name]
		fmt.Printf("%-10s %10d %8d %+12.4f %12.4f\n",
			name, s.Hands, s.Wins, s.meanBB(), s.stdErrBB())
	}
}
