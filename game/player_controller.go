package game

import (
	"fmt"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/consts"
)

type playerController struct {
	player Player
	seat   int
	hand   *Hand
}

func newPlayerController(player Player, seat int) *playerController {
	return &playerController{
		player: player,
		seat:   seat,
		hand:   NewHand(),
	}
}

func (c *playerController) AddCards(cards []card.Card) {
	c.hand.AddCards(cards)
}

func (c *playerController) Hand() []card.Card {
	return c.hand.Cards()
}

func (c *playerController) HandSize() int {
	return c.hand.Size()
}

func (c *playerController) Name() string {
	return c.player.Name()
}

func (c *playerController) Seat() int {
	return c.seat
}

func (c *playerController) NoCards() bool {
	return c.hand.Empty()
}

// turnPlay is what a player did on their turn.
type turnPlay struct {
	card   card.Card
	drawn  []card.Card
	played bool
}

// Play picks a card from the hand. With nothing legal in hand one card is
// drawn and played straight away when possible, otherwise kept.
func (c *playerController) Play(gameState State, dealer *Dealer) (turnPlay, error) {
	legalCards, err := c.hand.LegalCards(gameState.LastPlayedCard)
	if err != nil {
		return turnPlay{}, err
	}
	if len(legalCards) > 0 {
		selected, err := c.selectCard(legalCards, gameState)
		if err != nil {
			return turnPlay{}, err
		}
		if err = c.hand.RemoveCard(selected); err != nil {
			return turnPlay{}, err
		}
		return turnPlay{card: selected, played: true}, nil
	}

	extraCard, err := dealer.DrawOne()
	if err != nil {
		return turnPlay{}, err
	}
	drawn := []card.Card{extraCard}
	legalCards, err = LegalCards(drawn, gameState.LastPlayedCard)
	if err != nil {
		return turnPlay{}, err
	}
	if len(legalCards) == 0 {
		c.hand.AddCards(drawn)
		return turnPlay{drawn: drawn}, nil
	}
	selected, err := c.selectCard(legalCards, gameState)
	if err != nil {
		return turnPlay{}, err
	}
	return turnPlay{card: selected, drawn: drawn, played: true}, nil
}

// selectCard asks the strategy and paints a chosen wild card.
func (c *playerController) selectCard(legalCards []card.Card, gameState State) (card.Card, error) {
	selected, ok := c.player.SelectCard(legalCards, gameState)
	if !ok || !contains(legalCards, selected) {
		return card.Card{}, fmt.Errorf("%w %s chose %s from %s",
			consts.ErrorsIllegalSelection, c.player.Name(), selected, legalCards)
	}
	if selected.IsWild() {
		selected = selected.WithColor(c.player.SelectColor(gameState))
		if !selected.HasColor() {
			return card.Card{}, fmt.Errorf("%w %s picked no color", consts.ErrorsUncoloredWild, c.player.Name())
		}
	}
	return selected, nil
}

func contains(cards []card.Card, searchedCard card.Card) bool {
	for _, c := range cards {
		if c == searchedCard {
			return true
		}
	}
	return false
}
