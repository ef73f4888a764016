package player

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
)

type goodStrategy struct{}

// NewGoodStrategy plays the card that leaves the most follow-ups in hand
// and names the color the hand holds most of.
func NewGoodStrategy() game.Strategy {
	return goodStrategy{}
}

func (s goodStrategy) SelectColor(gameState game.State) color.Color {
	colorCounts := make(map[color.Color]int, len(color.All))
	for _, handCard := range gameState.CurrentPlayerHand {
		if !handCard.HasColor() {
			for _, availableColor := range color.All {
				colorCounts[availableColor]++
			}
		} else {
			colorCounts[handCard.Color]++
		}
	}

	// ties go to the first color in color.All
	mostFrequentColor := color.All[0]
	mostFrequentColorAmount := 0
	for _, availableColor := range color.All {
		if amount := colorCounts[availableColor]; amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = availableColor
		}
	}
	return mostFrequentColor
}

func (s goodStrategy) SelectCard(legalCards []card.Card, gameState game.State) (card.Card, bool) {
	if len(legalCards) == 0 {
		return card.Card{}, false
	}
	mostDiscardableCardIndex := 0
	maxSpareCards := 0

	for cardIndex, playableCard := range legalCards {
		spareCards := 0
		for _, handCard := range gameState.CurrentPlayerHand {
			if game.Playable(handCard, playableCard) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	return legalCards[mostDiscardableCardIndex], true
}
