package engine

import (
	"fmt"
	"strings"

	"github.com/tablestakes/holdem/internal/deck"
	"github.com/tablestakes/holdem/internal/evaluator"
)

// ShowdownInfo is one seat's line in the hand resolution: their cards,
// their best hand, and how their stack moved over the hand. Folded
// seats appear with IsWinner false so the presentation layer can still
// report their net loss.
type ShowdownInfo struct {
	SeatIndex int
	Name      string
	Status    PlayerStatus
	HoleCards []deck.Card
	Hand      evaluator.HandResult
	IsWinner  bool
	AmountWon int64
	NetChange int64
}

// resolveShowdown evaluates every live hand, awards the pot and returns
// the per-seat results plus a one-line announcement. The pot is zeroed;
// winners' stacks absorb it. With n winners each receives pot/n and the
// first winner in seat order also receives the odd remainder.
func (gs *GameState) resolveShowdown() ([]ShowdownInfo, string) {
	results := make([]ShowdownInfo, 0, NumSeats)
	winners := make([]int, 0, NumSeats) // indices into results

	for i := range gs.Seats {
		s := &gs.Seats[i]
		if !s.IsSeated || len(s.HoleCards) == 0 {
			continue
		}
		info := ShowdownInfo{
			SeatIndex: s.Index,
			Name:      s.Name,
			Status:    s.Status,
			HoleCards: append([]deck.Card(nil), s.HoleCards...),
			Hand:      evaluator.Evaluate(s.HoleCards, gs.CommunityCards),
		}
		ri := len(results)
		results = append(results, info)
		if s.Status == StatusFolded {
			continue
		}
		if len(winners) == 0 {
			winners = append(winners, ri)
			continue
		}
		cmp := evaluator.Compare(info.Hand, results[winners[0]].Hand)
		switch {
		case cmp > 0:
			winners = winners[:0]
			winners = append(winners, ri)
		case cmp == 0:
			winners = append(winners, ri)
		}
	}

	if len(winners) == 0 {
		// No live hands; should not happen, but never strand the pot.
		return results, ""
	}

	share := gs.Pot / int64(len(winners))
	remainder := gs.Pot % int64(len(winners))
	for n, ri := range winners {
		won := share
		if n == 0 {
			won += remainder
		}
		results[ri].IsWinner = true
		results[ri].AmountWon = won
		gs.Seats[results[ri].SeatIndex].Stack += won
	}
	announcement := gs.describeWin(results, winners)
	gs.Pot = 0

	for ri := range results {
		s := &gs.Seats[results[ri].SeatIndex]
		results[ri].NetChange = s.Stack - s.HandStartStack
	}
	return results, announcement
}

// describeWin builds the winner announcement, e.g.
// "Alice wins 300 with Two Pair" or
// "Alice and Bot 2 split the pot of 305 with Flush".
func (gs *GameState) describeWin(results []ShowdownInfo, winners []int) string {
	names := make([]string, len(winners))
	for i, ri := range winners {
		names[i] = results[ri].Name
	}
	hand := results[winners[0]].Hand.Category.String()
	if len(winners) == 1 {
		// A win by folds reveals no hand rank.
		if gs.countLiveAtShowdown() == 1 {
			return fmt.Sprintf("%s wins %d", names[0], gs.Pot)
		}
		return fmt.Sprintf("%s wins %d with %s", names[0], gs.Pot, hand)
	}
	return fmt.Sprintf("%s split the pot of %d with %s",
		joinNames(names), gs.Pot, hand)
}

func (gs *GameState) countLiveAtShowdown() int {
	n := 0
	for i := range gs.Seats {
		s := &gs.Seats[i]
		if s.IsSeated && len(s.HoleCards) > 0 && s.Status != StatusFolded {
			n++
		}
	}
	return n
}

func joinNames(names []string) string {
	if len(names) <= 1 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
