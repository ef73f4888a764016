package card

type Action int

const (
	SkipTurnAction Action = iota + 1
	ReverseTurnsAction
	DrawCardsAction
	PickColorAction
)

// Actions lists what happens after c is played, in order.
func (c Card) Actions() []Action {
	switch c.Symbol {
	case Skip:
		return []Action{SkipTurnAction}
	case Reverse:
		return []Action{ReverseTurnsAction}
	case DrawTwo:
		return []Action{DrawCardsAction, SkipTurnAction}
	case Wild:
		return []Action{PickColorAction}
	case WildDrawFour:
		return []Action{PickColorAction, DrawCardsAction, SkipTurnAction}
	default:
		return []Action{}
	}
}

// DrawAmount is the number of cards the next player takes.
func (c Card) DrawAmount() int {
	switch c.Symbol {
	case DrawTwo:
		return 2
	case WildDrawFour:
		return 4
	default:
		return 0
	}
}
