package game_test

import (
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/game"
	"github.com/stretchr/testify/require"
)

func TestAddCards(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	})
	require.ElementsMatch(t, []card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	}, hand.Cards())
}

func TestEmpty(t *testing.T) {
	hand := game.NewHand()
	require.True(t, hand.Empty())
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	})
	require.False(t, hand.Empty())
}

func TestHandLegalCards(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 8),
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewReverseCard(color.Yellow),
		card.NewDrawTwoCard(color.Blue),
		card.NewNumberCard(color.Blue, 5),
		card.NewWildCard(),
		card.NewWildDrawFourCard(),
	})
	legal, err := hand.LegalCards(card.NewNumberCard(color.Blue, 7))
	require.NoError(t, err)
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewDrawTwoCard(color.Blue),
	}, legal)

	legal, err = game.NewHand().LegalCards(card.NewNumberCard(color.Blue, 7))
	require.NoError(t, err)
	require.Empty(t, legal)
}

func TestRemoveCard(t *testing.T) {
	t.Run("removes_an_existing_card", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{
			card.NewWildCard(),
			card.NewReverseCard(color.Yellow),
			card.NewDrawTwoCard(color.Blue),
		})

		require.NoError(t, hand.RemoveCard(card.NewReverseCard(color.Yellow)))
		require.Equal(t, []card.Card{
			card.NewWildCard(),
			card.NewDrawTwoCard(color.Blue),
		}, hand.Cards())
	})

	t.Run("fails_if_card_is_not_in_hand", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{
			card.NewWildCard(),
			card.NewReverseCard(color.Yellow),
			card.NewDrawTwoCard(color.Blue),
		})
		err := hand.RemoveCard(card.NewDrawTwoCard(color.Red))
		require.ErrorIs(t, err, consts.ErrorsCardNotInHand)
		require.True(t, consts.IsInvariantViolation(err))
		require.Equal(t, 3, hand.Size())
	})

	t.Run("removes_a_single_copy_of_the_given_card", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{
			card.NewWildCard(),
			card.NewNumberCard(color.Red, 6),
			card.NewNumberCard(color.Red, 6),
		})
		require.NoError(t, hand.RemoveCard(card.NewNumberCard(color.Red, 6)))
		require.Equal(t, []card.Card{
			card.NewWildCard(),
			card.NewNumberCard(color.Red, 6),
		}, hand.Cards())
	})

	t.Run("removes_wild_card_played_with_a_color", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{
			card.NewWildDrawFourCard(),
			card.NewNumberCard(color.Red, 6),
		})
		require.NoError(t, hand.RemoveCard(card.NewWildDrawFourCard().WithColor(color.Green)))
		require.Equal(t, []card.Card{card.NewNumberCard(color.Red, 6)}, hand.Cards())
	})
}

func TestSize(t *testing.T) {
	hand := game.NewHand()
	require.Equal(t, 0, hand.Size())
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewReverseCard(color.Yellow),
	})
	require.Equal(t, 3, hand.Size())
}
