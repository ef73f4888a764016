package player_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRng() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

var legalCards = []card.Card{
	card.NewNumberCard(color.Red, 3),
	card.NewSkipCard(color.Red),
	card.NewNumberCard(color.Blue, 7),
	card.NewWildCard(),
}

func TestSelectCardFromLegalCards(t *testing.T) {
	scenarios := []struct {
		name     string
		strategy game.Strategy
	}{
		{name: "random", strategy: player.NewRandomStrategy(newRng())},
		{name: "naive", strategy: player.NewNaiveStrategy(newRng())},
		{name: "good", strategy: player.NewGoodStrategy()},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			gameState := game.State{
				LastPlayedCard:    card.NewNumberCard(color.Red, 7),
				CurrentPlayerHand: legalCards,
			}
			for i := 0; i < 100; i++ {
				selected, ok := scenario.strategy.SelectCard(legalCards, gameState)
				require.True(t, ok)
				assert.Contains(t, legalCards, selected)
			}

			_, ok := scenario.strategy.SelectCard(nil, gameState)
			assert.False(t, ok)

			assert.Contains(t, color.All, scenario.strategy.SelectColor(gameState))
		})
	}
}

func TestRandomStrategyCoversLegalCards(t *testing.T) {
	strategy := player.NewRandomStrategy(newRng())
	seen := make(map[card.Card]bool)
	for i := 0; i < 500; i++ {
		selected, ok := strategy.SelectCard(legalCards, game.State{})
		require.True(t, ok)
		seen[selected] = true
	}
	assert.Len(t, seen, len(legalCards))
}

func TestNaiveStrategyPicksFirstCard(t *testing.T) {
	selected, ok := player.NewNaiveStrategy(newRng()).SelectCard(legalCards, game.State{})
	require.True(t, ok)
	assert.Equal(t, legalCards[0], selected)
}

func TestGoodStrategy(t *testing.T) {
	strategy := player.NewGoodStrategy()

	t.Run("keeps_follow_ups", func(t *testing.T) {
		hand := []card.Card{
			card.NewNumberCard(color.Blue, 1),
			card.NewNumberCard(color.Blue, 2),
			card.NewNumberCard(color.Blue, 4),
			card.NewNumberCard(color.Red, 3),
			card.NewNumberCard(color.Green, 9),
		}
		selected, ok := strategy.SelectCard([]card.Card{
			card.NewNumberCard(color.Red, 3),
			card.NewNumberCard(color.Blue, 4),
		}, game.State{CurrentPlayerHand: hand})
		require.True(t, ok)
		assert.Equal(t, card.NewNumberCard(color.Blue, 4), selected)
	})

	scenarios := []struct {
		name     string
		hand     []card.Card
		expected color.Color
	}{
		{
			name:     "empty_hand",
			hand:     nil,
			expected: color.All[0],
		},
		{
			name: "most_frequent_color",
			hand: []card.Card{
				card.NewNumberCard(color.Yellow, 1),
				card.NewNumberCard(color.Yellow, 2),
				card.NewNumberCard(color.Green, 2),
				card.NewWildCard(),
			},
			expected: color.Yellow,
		},
		{
			name: "tie_goes_to_first_color",
			hand: []card.Card{
				card.NewNumberCard(color.Green, 5),
				card.NewNumberCard(color.Red, 5),
			},
			expected: color.Red,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			picked := strategy.SelectColor(game.State{CurrentPlayerHand: scenario.hand})
			assert.Equal(t, scenario.expected, picked)
		})
	}
}
