package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/card"
)

// State is the view of the table handed to a strategy.
type State struct {
	LastPlayedCard    card.Card
	CurrentPlayerHand []card.Card
	PlayerSequence    []string
	PlayerHandCounts  map[string]int
	DeckSize          int
	PileSize          int
	Turn              int
	Reversed          bool
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	direction := "forward"
	if s.Reversed {
		direction = "reversed"
	}
	lines = append(lines, fmt.Sprintf("Turn %d, order %s: %s", s.Turn, direction, strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Deck: %d, pile: %d", s.DeckSize, s.PileSize))
	lines = append(lines, fmt.Sprintf("Hand: %s", s.CurrentPlayerHand))

	return strings.Join(lines, "\n")
}
