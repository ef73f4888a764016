package player

import (
	"math/rand"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
)

type randomStrategy struct {
	rng *rand.Rand
}

// NewRandomStrategy picks any legal card and any color with equal odds.
func NewRandomStrategy(rng *rand.Rand) game.Strategy {
	return randomStrategy{rng: rng}
}

func (s randomStrategy) SelectCard(legalCards []card.Card, gameState game.State) (card.Card, bool) {
	if len(legalCards) == 0 {
		return card.Card{}, false
	}
	return legalCards[s.rng.Intn(len(legalCards))], true
}

func (s randomStrategy) SelectColor(gameState game.State) color.Color {
	return color.Random(s.rng)
}
