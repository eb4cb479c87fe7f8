package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tablestakes/holdem/internal/bot"
	"github.com/tablestakes/holdem/internal/config"
	"github.com/tablestakes/holdem/internal/engine"
	"github.com/tablestakes/holdem/internal/randutil"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#04552E")).
			Padding(0, 1).
			Bold(true)

	historyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	boardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AFFF")).
			Bold(true)

	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FD700")).
			Bold(true)
)

type CLI struct {
	Config  string `short:"c" default:"holdem.hcl" help:"Path to HCL config file"`
	Seed    int64  `default:"0" help:"RNG seed (0 for random)"`
	Verbose bool   `short:"v" help:"Verbose logging to stderr"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Play Texas Hold'em against computer opponents."))

	cfg, err := config.LoadConfig(cli.Config)
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else if level, lerr := log.ParseLevel(cfg.Table.LogLevel); lerr == nil {
		logger.SetLevel(level)
	}

	fmt.Println(titleStyle.Render(" Texas Hold'em "))
	fmt.Println()

	if err := run(cli, cfg, logger); err != nil {
		log.Fatal("Game ended with error", "error", err)
	}
	ctx.Exit(0)
}

func run(cli CLI, cfg *config.Config, logger *log.Logger) error {
	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)

	bots := bot.NewEngine(logger, rng)

	// Bot timer callbacks land on this channel so every state mutation
	// happens on the main loop.
	dispatch := make(chan func(), 16)

	mgr := engine.NewManager(logger,
		engine.WithRNG(rng),
		engine.WithBotDecider(bots),
		engine.WithThinkDelay(cfg.Table.ThinkDelayMin(), cfg.Table.ThinkDelayMax()),
		engine.WithPlayerName(cfg.Table.PlayerName),
		engine.WithDispatcher(func(fn func()) { dispatch <- fn }),
	)
	if err := mgr.InitializeGame(cfg.Table.Humans, cfg.Table.Bots,
		cfg.Table.StartingStack, cfg.Table.SmallBlind); err != nil {
		return err
	}

	// Configured bot blocks rename seats and set difficulties.
	botSeat := 0
	for i := range mgr.State().Seats {
		s := &mgr.State().Seats[i]
		if !s.IsSeated || !s.IsBot {
			continue
		}
		if botSeat < len(cfg.Bots) {
			mgr.SetSeatName(i, cfg.Bots[botSeat].Name)
			bots.SetPersonality(i, bot.PersonalityForDifficulty(cfg.Bots[botSeat].Difficulty))
		}
		botSeat++
	}

	console := newConsole(mgr)
	mgr.Events().Subscribe(console)

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- strings.TrimSpace(scanner.Text())
		}
		close(lines)
	}()

	for {
		ok, reason := mgr.CanStartNewHand()
		if !ok {
			fmt.Println(historyStyle.Render("Cannot deal: " + reason))
			return nil
		}
		if console.humanSeat >= 0 && mgr.State().Seats[console.humanSeat].Stack <= 0 {
			fmt.Println(historyStyle.Render("You are out of chips. Game over."))
			return nil
		}

		console.printStacks()
		fmt.Print(promptStyle.Render("Press Enter to deal (q to quit): "))
		line, open := <-lines
		if !open || line == "q" || line == "quit" {
			return nil
		}

		if err := mgr.StartNewHand(); err != nil {
			return err
		}
		if err := playHand(mgr, console, dispatch, lines); err != nil {
			return err
		}
	}
}

// playHand pumps bot callbacks and human input until the hand
// resolves.
func playHand(mgr *engine.Manager, console *console, dispatch chan func(), lines chan string) error {
	for mgr.State().Stage.InHand() {
		select {
		case fn := <-dispatch:
			fn()
		case line, open := <-lines:
			if !open {
				return nil
			}
			if console.awaitingHuman {
				console.handleHumanInput(line)
			}
		}
	}
	return nil
}

// console renders engine events and collects human decisions.
type console struct {
	mgr           *engine.Manager
	humanSeat     int
	awaitingHuman bool
	allowed       []engine.Action
}

func newConsole(mgr *engine.Manager) *console {
	c := &console{mgr: mgr, humanSeat: -1}
	for i := range mgr.State().Seats {
		s := &mgr.State().Seats[i]
		if s.IsSeated && !s.IsBot {
			c.humanSeat = i
			break
		}
	}
	return c
}

func (c *console) OnGameEvent(event engine.GameEvent) {
	switch e := event.(type) {
	case engine.HistoryEvent:
		fmt.Println(historyStyle.Render(e.Line))

	case engine.HoleCardsDealtEvent:
		if c.humanSeat < 0 {
			return
		}
		s := &c.mgr.State().Seats[c.humanSeat]
		if len(s.HoleCards) == 2 {
			fmt.Printf("Your cards: %s\n",
				boardStyle.Render(fmt.Sprintf("%s %s", s.HoleCards[0], s.HoleCards[1])))
		}

	case engine.CommunityCardsEvent:
		parts := make([]string, len(e.Cards))
		for i, card := range e.Cards {
			parts[i] = card.String()
		}
		fmt.Printf("Board: %s\n", boardStyle.Render(strings.Join(parts, " ")))

	case engine.ActionRequestedEvent:
		if e.Seat != c.humanSeat || len(e.Allowed) == 0 {
			c.awaitingHuman = false
			return
		}
		c.awaitingHuman = true
		c.allowed = e.Allowed
		c.printPrompt(e)

	case engine.ShowdownEvent:
		c.printShowdown(e)
	}
}

func (c *console) printPrompt(e engine.ActionRequestedEvent) {
	s := &c.mgr.State().Seats[c.humanSeat]
	var opts []string
	for _, a := range e.Allowed {
		switch a {
		case engine.ActionPostBlind:
			opts = append(opts, "(p)ost blind")
		case engine.ActionFold:
			opts = append(opts, "(f)old")
		case engine.ActionCheck:
			opts = append(opts, "chec(k)")
		case engine.ActionCall:
			opts = append(opts, fmt.Sprintf("(c)all %d", e.BetToCall-s.CurrentBet))
		case engine.ActionBet:
			opts = append(opts, "(b)et <amount>")
		case engine.ActionRaise:
			opts = append(opts, fmt.Sprintf("(r)aise <to at least %d>", e.MinRaise))
		}
	}
	fmt.Printf("%s pot %d, stack %d\n",
		promptStyle.Render("Your turn:"), c.mgr.State().Pot, s.Stack)
	fmt.Printf("  %s\n> ", strings.Join(opts, ", "))
}

func (c *console) handleHumanInput(line string) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		fmt.Print("> ")
		return
	}
	var action engine.Action
	var amount int64
	switch fields[0] {
	case "p", "post":
		action = engine.ActionPostBlind
	case "f", "fold":
		action = engine.ActionFold
	case "k", "check":
		action = engine.ActionCheck
	case "c", "call":
		action = engine.ActionCall
	case "b", "bet", "r", "raise":
		if fields[0] == "b" || fields[0] == "bet" {
			action = engine.ActionBet
		} else {
			action = engine.ActionRaise
		}
		if len(fields) < 2 {
			fmt.Print("Amount required.\n> ")
			return
		}
		n, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || n <= 0 {
			fmt.Print("Bad amount.\n> ")
			return
		}
		amount = n
		// Bets and raises are sent as the total to reach this round.
		if action == engine.ActionBet {
			amount += c.mgr.State().Seats[c.humanSeat].CurrentBet
		}
	case "a", "allin", "all-in":
		s := &c.mgr.State().Seats[c.humanSeat]
		amount = s.CurrentBet + s.Stack
		if c.mgr.State().BetToCall > s.CurrentBet {
			action = engine.ActionRaise
			if !hasAction(c.allowed, engine.ActionRaise) {
				action = engine.ActionCall
				amount = 0
			}
		} else {
			action = engine.ActionBet
		}
	default:
		fmt.Print("Unknown action.\n> ")
		return
	}
	c.awaitingHuman = false
	c.mgr.ProcessPlayerAction(c.humanSeat, action, amount)
}

func (c *console) printShowdown(e engine.ShowdownEvent) {
	fmt.Println()
	for _, r := range e.Results {
		if r.Status == engine.StatusFolded {
			fmt.Printf("  %-12s folded (net %+d)\n", r.Name, r.NetChange)
			continue
		}
		line := fmt.Sprintf("  %-12s %s %s  %s (net %+d)",
			r.Name,
			r.HoleCards[0], r.HoleCards[1],
			r.Hand.Category, r.NetChange)
		if r.IsWinner {
			fmt.Println(winnerStyle.Render(line))
		} else {
			fmt.Println(line)
		}
	}
	if e.Announcement != "" {
		fmt.Println(winnerStyle.Render(e.Announcement))
	}
	fmt.Println()
}

func (c *console) printStacks() {
	state := c.mgr.State()
	fmt.Println()
	for i := range state.Seats {
		s := &state.Seats[i]
		if !s.IsSeated {
			continue
		}
		marker := " "
		if i == state.DealerSeat {
			marker = "D"
		}
		fmt.Printf("  %s %-12s %6d\n", marker, s.Name, s.Stack)
	}
	fmt.Println()
}

func hasAction(actions []engine.Action, a engine.Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}
