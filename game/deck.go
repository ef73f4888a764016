package game

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/consts"
)

// Deck is the draw pile. The end of the slice is the top.
type Deck struct {
	cards []card.Card
}

// NewDeck returns the standard deck shuffled with rng.
func NewDeck(rng *rand.Rand) *Deck {
	deck := NewDeckFrom(card.StandardDeck())
	deck.Shuffle(rng)
	return deck
}

// NewDeckFrom keeps the given order; the last card is drawn first.
func NewDeckFrom(cards []card.Card) *Deck {
	deck := &Deck{cards: make([]card.Card, len(cards))}
	copy(deck.cards, cards)
	return deck
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Shuffle(rng *rand.Rand) {
	shuffleCards(rng, d.cards)
}

// Draw takes amount cards off the top without refilling.
func (d *Deck) Draw(amount int) ([]card.Card, error) {
	if amount < 0 || amount > len(d.cards) {
		return nil, fmt.Errorf("%w draw %d from deck of %d", consts.ErrorsOverdraw, amount, len(d.cards))
	}
	start := len(d.cards) - amount
	cards := make([]card.Card, amount)
	copy(cards, d.cards[start:])
	d.cards = d.cards[:start]
	return cards, nil
}

// PutBottom slides cards under the deck, wild cards losing their color.
func (d *Deck) PutBottom(cards ...card.Card) {
	bottom := make([]card.Card, 0, len(cards)+len(d.cards))
	for _, c := range cards {
		bottom = append(bottom, c.Uncolored())
	}
	d.cards = append(bottom, d.cards...)
}

func shuffleCards(rng *rand.Rand, cards []card.Card) {
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
