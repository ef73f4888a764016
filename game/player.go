package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

// Strategy decides what a player plays.
type Strategy interface {
	// SelectCard picks one of legalCards; ok is false only when legalCards
	// is empty.
	SelectCard(legalCards []card.Card, gameState State) (selected card.Card, ok bool)
	// SelectColor is asked after a wild card was selected.
	SelectColor(gameState State) color.Color
}

type Player interface {
	Name() string
	Strategy
}
