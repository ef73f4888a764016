package game

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/consts"
)

// Dealer moves cards between the deck and the discard pile. Together with
// the hands it never creates or loses a card.
type Dealer struct {
	rng       *rand.Rand
	deck      *Deck
	pile      *Pile
	onRecycle func(recycled int)
}

func NewDealer(rng *rand.Rand) *Dealer {
	return &Dealer{
		rng:  rng,
		deck: NewDeck(rng),
		pile: NewPile(),
	}
}

// NewDealerWithDeck deals from cards as given; the last card is on top.
func NewDealerWithDeck(rng *rand.Rand, cards []card.Card) *Dealer {
	return &Dealer{
		rng:  rng,
		deck: NewDeckFrom(cards),
		pile: NewPile(),
	}
}

// OnRecycle registers a callback run after the pile went back into the deck.
func (d *Dealer) OnRecycle(callback func(recycled int)) {
	d.onRecycle = callback
}

func (d *Dealer) Deck() *Deck {
	return d.deck
}

func (d *Dealer) Pile() *Pile {
	return d.pile
}

func (d *Dealer) DeckSize() int {
	return d.deck.Size()
}

func (d *Dealer) PileSize() int {
	return d.pile.Size()
}

// Draw takes amount cards, recycling the pile when the deck runs out. The
// pile always keeps its top card, so amount must stay below
// deck+pile-1.
func (d *Dealer) Draw(amount int) ([]card.Card, error) {
	available := d.deck.Size()
	if amount < 0 || amount >= available+d.pile.Size()-1 {
		return nil, fmt.Errorf("%w draw %d with %d in deck and %d in pile",
			consts.ErrorsOverdraw, amount, available, d.pile.Size())
	}
	if amount <= available {
		return d.deck.Draw(amount)
	}

	cards := make([]card.Card, 0, amount)
	drawn, err := d.deck.Draw(available)
	if err != nil {
		return nil, err
	}
	cards = append(cards, drawn...)
	if err = d.RecyclePile(); err != nil {
		return nil, err
	}
	drawn, err = d.deck.Draw(amount - available)
	if err != nil {
		return nil, err
	}
	return append(cards, drawn...), nil
}

func (d *Dealer) DrawOne() (card.Card, error) {
	cards, err := d.Draw(1)
	if err != nil {
		return card.Card{}, err
	}
	return cards[0], nil
}

// Discard puts a played card on the pile. Wild cards must carry the color
// picked by the player.
func (d *Dealer) Discard(c card.Card) error {
	if c.IsWild() && !c.HasColor() {
		return fmt.Errorf("%w %s", consts.ErrorsUncoloredWild, c)
	}
	d.pile.Add(c)
	return nil
}

// RecyclePile shuffles every pile card but the top one back under the deck.
func (d *Dealer) RecyclePile() error {
	if d.pile.Size() == 0 {
		return consts.ErrorsEmptyPile
	}
	cards := d.pile.TakeUnderTop()
	shuffleCards(d.rng, cards)
	d.deck.PutBottom(cards...)
	log.Infof("pile recycled, %d cards back in deck\n", len(cards))
	if d.onRecycle != nil {
		d.onRecycle(len(cards))
	}
	return nil
}

// FlipFirstCard opens the pile with the first non-wild card from the deck.
// Wild cards drawn on the way go back under the deck. It gives up once every
// deck card has been looked at.
func (d *Dealer) FlipFirstCard() (card.Card, error) {
	attempts := d.deck.Size()
	for i := 0; i < attempts; i++ {
		c, err := d.DrawOne()
		if err != nil {
			return card.Card{}, err
		}
		if c.IsWild() {
			d.deck.PutBottom(c)
			continue
		}
		return c, d.Discard(c)
	}
	return card.Card{}, fmt.Errorf("%w no card to open the pile among %d wild cards", consts.ErrorsOverdraw, attempts)
}

func (d *Dealer) DrawHands(players int, amount int) ([][]card.Card, error) {
	hands := make([][]card.Card, 0, players)
	for i := 0; i < players; i++ {
		hand, err := d.Draw(amount)
		if err != nil {
			return nil, err
		}
		hands = append(hands, hand)
	}
	return hands, nil
}

func (d *Dealer) TopCard() (card.Card, error) {
	top, ok := d.pile.Top()
	if !ok {
		return card.Card{}, consts.ErrorsEmptyPile
	}
	return top, nil
}
