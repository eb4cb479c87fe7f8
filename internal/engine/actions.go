package engine

// Action is a player decision fed into the engine. Bet and Raise amounts
// are expressed as the total amount the player's round contribution should
// reach, not the increment on top of it.
type Action int

const (
	ActionFold Action = iota
	ActionCheck
	ActionCall
	ActionBet
	ActionRaise
	ActionPostBlind
)

// String returns the display name of the action.
func (a Action) String() string {
	switch a {
	case ActionFold:
		return "Fold"
	case ActionCheck:
		return "Check"
	case ActionCall:
		return "Call"
	case ActionBet:
		return "Bet"
	case ActionRaise:
		return "Raise"
	case ActionPostBlind:
		return "Post Blind"
	default:
		return "Unknown"
	}
}

// containsAction reports whether actions includes a.
func containsAction(actions []Action, a Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}
