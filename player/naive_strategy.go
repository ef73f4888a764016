package player

import (
	"math/rand"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
)

type naiveStrategy struct {
	rng *rand.Rand
}

func NewNaiveStrategy(rng *rand.Rand) game.Strategy {
	return naiveStrategy{rng: rng}
}

func (s naiveStrategy) SelectCard(legalCards []card.Card, gameState game.State) (card.Card, bool) {
	if len(legalCards) == 0 {
		return card.Card{}, false
	}
	firstCard := legalCards[0]
	return firstCard, true
}

func (s naiveStrategy) SelectColor(gameState game.State) color.Color {
	return color.Random(s.rng)
}
