package card

import (
	"fmt"

	"github.com/ratel-online/uno/card/color"
)

// Symbol is the face of a card. Values 0-9 are number cards.
type Symbol int

const (
	Skip Symbol = 10 + iota
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

func (s Symbol) IsNumber() bool {
	return s >= 0 && s <= 9
}

func (s Symbol) IsWild() bool {
	return s == Wild || s == WildDrawFour
}

func (s Symbol) String() string {
	if s.IsNumber() {
		return fmt.Sprintf("%d", int(s))
	}
	switch s {
	case Skip:
		return "Skip"
	case Reverse:
		return "Reverse"
	case DrawTwo:
		return "Draw2"
	case Wild:
		return "Wild"
	case WildDrawFour:
		return "WildDraw4"
	default:
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
}

// Card is a value type; two cards with the same symbol and color are
// interchangeable. Color is nil for a wild card that has not been played.
type Card struct {
	Symbol Symbol
	Color  color.Color
}

func NewNumberCard(c color.Color, number int) Card {
	return Card{Symbol: Symbol(number), Color: c}
}

func NewSkipCard(c color.Color) Card {
	return Card{Symbol: Skip, Color: c}
}

func NewReverseCard(c color.Color) Card {
	return Card{Symbol: Reverse, Color: c}
}

func NewDrawTwoCard(c color.Color) Card {
	return Card{Symbol: DrawTwo, Color: c}
}

func NewWildCard() Card {
	return Card{Symbol: Wild}
}

func NewWildDrawFourCard() Card {
	return Card{Symbol: WildDrawFour}
}

func (c Card) IsWild() bool {
	return c.Symbol.IsWild()
}

func (c Card) IsWildDrawFour() bool {
	return c.Symbol == WildDrawFour
}

func (c Card) HasColor() bool {
	return c.Color != nil
}

// WithColor returns a copy of c painted with col.
func (c Card) WithColor(col color.Color) Card {
	c.Color = col
	return c
}

// Uncolored returns c with the color of a wild card cleared.
func (c Card) Uncolored() Card {
	if c.IsWild() {
		c.Color = nil
	}
	return c
}

// Equal compares cards ignoring the color a wild card was given when played.
func (c Card) Equal(other Card) bool {
	if c.IsWild() {
		return c.Symbol == other.Symbol
	}
	return c == other
}

func (c Card) IsNumber() bool {
	return c.Symbol.IsNumber()
}

func (c Card) String() string {
	format := "(%s)"
	if c.IsNumber() {
		format = "[%s]"
	}
	if c.Color == nil {
		return fmt.Sprintf(format, c.Symbol)
	}
	return c.Color.Paintf(format, c.Symbol) + fmt.Sprintf("(%s)", c.Color.Name())
}
