package game

import (
	"fmt"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/consts"
)

// Playable reports whether candidate may go on top, ignoring the wild draw
// four restriction which depends on the rest of the hand.
func Playable(candidate card.Card, top card.Card) bool {
	return candidate.IsWild() ||
		candidate.Color == top.Color ||
		candidate.Symbol == top.Symbol
}

// LegalCards filters candidates down to the cards that may be played on top.
// Wild draw fours only count when no other candidate matches the top color.
func LegalCards(candidates []card.Card, top card.Card) ([]card.Card, error) {
	if len(candidates) == 0 {
		return nil, consts.ErrorsNoCandidates
	}
	if !top.HasColor() {
		return nil, fmt.Errorf("%w %s", consts.ErrorsUncoloredTop, top)
	}

	legal := make([]card.Card, 0, len(candidates))
	wildDrawFours := make([]card.Card, 0)
	colorMatched := false
	for _, candidate := range candidates {
		if candidate.IsWildDrawFour() {
			wildDrawFours = append(wildDrawFours, candidate)
			continue
		}
		if Playable(candidate, top) {
			legal = append(legal, candidate)
		}
		if candidate.Color == top.Color {
			colorMatched = true
		}
	}
	if !colorMatched {
		legal = append(legal, wildDrawFours...)
	}
	return legal, nil
}

// Dedupe drops value-equal repeats, keeping the first of each.
func Dedupe(cards []card.Card) []card.Card {
	seen := make(map[card.Card]bool, len(cards))
	unique := make([]card.Card, 0, len(cards))
	for _, c := range cards {
		if seen[c] {
			continue
		}
		seen[c] = true
		unique = append(unique, c)
	}
	return unique
}
