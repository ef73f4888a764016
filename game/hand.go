package game

import (
	"fmt"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/consts"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, consts.InitialHandSize)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// LegalCards is the deduplicated set of hand cards playable on top.
func (h *Hand) LegalCards(top card.Card) ([]card.Card, error) {
	if h.Empty() {
		return nil, nil
	}
	legal, err := LegalCards(h.cards, top)
	if err != nil {
		return nil, err
	}
	return Dedupe(legal), nil
}

// RemoveCard takes out one copy of c. A played wild card matches an
// uncolored wild of the same symbol.
func (h *Hand) RemoveCard(c card.Card) error {
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(c) {
			h.cards[index] = h.cards[len(h.cards)-1]
			h.cards = h.cards[:len(h.cards)-1]
			return nil
		}
	}
	return fmt.Errorf("%w %s", consts.ErrorsCardNotInHand, c)
}

func (h *Hand) Size() int {
	return len(h.cards)
}
