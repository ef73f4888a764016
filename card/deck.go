package card

import (
	"github.com/ratel-online/uno/card/color"
)

// StandardDeck returns the 108 cards of a standard deck, unshuffled.
func StandardDeck() []Card {
	cards := make([]Card, 0, 108)
	for _, c := range color.All {
		cards = append(cards, createColorCards(c)...)
	}
	return append(cards, createBlackCards()...)
}

func createColorCards(cardColor color.Color) []Card {
	cards := []Card{NewNumberCard(cardColor, 0)}
	for number := 1; number <= 9; number++ {
		numberCard := NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	skipCard := NewSkipCard(cardColor)
	reverseCard := NewReverseCard(cardColor)
	drawTwoCard := NewDrawTwoCard(cardColor)
	return append(cards,
		drawTwoCard, drawTwoCard,
		reverseCard, reverseCard,
		skipCard, skipCard,
	)
}

func createBlackCards() []Card {
	wildCard := NewWildCard()
	wildDrawFourCard := NewWildDrawFourCard()

	return []Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}
