package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/consts"
)

// Pile is the discard pile; its last card is the top card.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, consts.TotalCards)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Size() int {
	return len(p.cards)
}

func (p *Pile) Top() (card.Card, bool) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	return p.cards[pileSize-1], true
}

// TakeUnderTop removes and returns every card except the top one.
func (p *Pile) TakeUnderTop() []card.Card {
	if len(p.cards) < 2 {
		return nil
	}
	end := len(p.cards) - 1
	taken := make([]card.Card, end)
	copy(taken, p.cards[:end])
	p.cards = append(p.cards[:0], p.cards[end])
	return taken
}
