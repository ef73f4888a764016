package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/game"
	"github.com/stretchr/testify/require"
)

func newDealer(seed int64) *game.Dealer {
	return game.NewDealer(rand.New(rand.NewSource(seed)))
}

// discardAll puts cards on the pile, painting wild cards red.
func discardAll(t *testing.T, dealer *game.Dealer, cards []card.Card) {
	t.Helper()
	for _, c := range cards {
		if c.IsWild() {
			c = c.WithColor(color.Red)
		}
		require.NoError(t, dealer.Discard(c))
	}
}

func TestDealerDraw(t *testing.T) {
	for _, n := range []int{0, 1, 3, 7, 13} {
		dealer := newDealer(int64(n))
		cards, err := dealer.Draw(n)
		require.NoError(t, err)
		require.Len(t, cards, n)
		require.Equal(t, consts.TotalCards-n, dealer.DeckSize())
	}
}

func TestDealerDrawWithRecycle(t *testing.T) {
	dealer := newDealer(3)
	cards, err := dealer.Draw(100)
	require.NoError(t, err)
	discardAll(t, dealer, cards)
	require.Equal(t, 8, dealer.DeckSize())

	topCard, err := dealer.TopCard()
	require.NoError(t, err)

	var recycled []int
	dealer.OnRecycle(func(n int) { recycled = append(recycled, n) })
	drawn, err := dealer.Draw(20)
	require.NoError(t, err)
	require.Len(t, drawn, 20)
	require.Equal(t, []int{99}, recycled)

	stillTop, err := dealer.TopCard()
	require.NoError(t, err)
	require.Equal(t, topCard, stillTop)
	require.Equal(t, 1, dealer.PileSize())
	require.Equal(t, 87, dealer.DeckSize())
	for _, c := range append(dealer.Deck().Cards(), drawn...) {
		if c.IsWild() {
			require.False(t, c.HasColor(), "wild card %s kept its color", c)
		}
	}
}

func TestDealerOverdraw(t *testing.T) {
	dealer := newDealer(4)
	_, err := dealer.Draw(consts.TotalCards - 1)
	require.ErrorIs(t, err, consts.ErrorsOverdraw)
	require.True(t, consts.IsInvariantViolation(err))

	cards, err := dealer.Draw(100)
	require.NoError(t, err)
	discardAll(t, dealer, cards)
	_, err = dealer.Draw(107)
	require.ErrorIs(t, err, consts.ErrorsOverdraw)
	require.Equal(t, 8, dealer.DeckSize())
	require.Equal(t, 100, dealer.PileSize())

	_, err = dealer.Draw(-1)
	require.ErrorIs(t, err, consts.ErrorsOverdraw)

	cards, err = dealer.Draw(106)
	require.NoError(t, err)
	require.Len(t, cards, 106)
	require.Equal(t, 1, dealer.DeckSize())
	require.Equal(t, 1, dealer.PileSize())
}

func TestDealerDiscard(t *testing.T) {
	dealer := newDealer(5)
	err := dealer.Discard(card.NewWildDrawFourCard())
	require.ErrorIs(t, err, consts.ErrorsUncoloredWild)
	require.True(t, consts.IsInvariantViolation(err))
	require.Equal(t, 0, dealer.PileSize())

	require.NoError(t, dealer.Discard(card.NewWildDrawFourCard().WithColor(color.Green)))
	top, err := dealer.TopCard()
	require.NoError(t, err)
	require.Equal(t, color.Green, top.Color)
}

func TestDealerRecyclePile(t *testing.T) {
	t.Run("empty_pile", func(t *testing.T) {
		err := newDealer(6).RecyclePile()
		require.ErrorIs(t, err, consts.ErrorsEmptyPile)
	})

	t.Run("keeps_top_card", func(t *testing.T) {
		dealer := newDealer(6)
		cards, err := dealer.Draw(40)
		require.NoError(t, err)
		discardAll(t, dealer, cards)
		topCard, err := dealer.TopCard()
		require.NoError(t, err)
		deckSize, pileSize := dealer.DeckSize(), dealer.PileSize()

		require.NoError(t, dealer.RecyclePile())
		stillTop, err := dealer.TopCard()
		require.NoError(t, err)
		require.Equal(t, topCard, stillTop)
		require.Equal(t, deckSize+pileSize-1, dealer.DeckSize())
		require.Equal(t, 1, dealer.PileSize())
		for _, c := range dealer.Deck().Cards() {
			if c.IsWild() {
				require.False(t, c.HasColor())
			}
		}
	})

	t.Run("single_card_pile", func(t *testing.T) {
		dealer := newDealer(6)
		require.NoError(t, dealer.Discard(card.NewNumberCard(color.Blue, 2)))
		require.NoError(t, dealer.RecyclePile())
		require.Equal(t, consts.TotalCards, dealer.DeckSize())
		require.Equal(t, 1, dealer.PileSize())
	})
}

func TestDealerFlipFirstCard(t *testing.T) {
	t.Run("skips_wild_cards", func(t *testing.T) {
		dealer := game.NewDealerWithDeck(rand.New(rand.NewSource(1)), []card.Card{
			card.NewNumberCard(color.Blue, 5),
			card.NewNumberCard(color.Green, 3),
			card.NewNumberCard(color.Red, 0),
			card.NewWildDrawFourCard(),
			card.NewWildCard(),
		})
		_, err := dealer.TopCard()
		require.ErrorIs(t, err, consts.ErrorsEmptyPile)

		first, err := dealer.FlipFirstCard()
		require.NoError(t, err)
		require.Equal(t, card.NewNumberCard(color.Red, 0), first)

		top, err := dealer.TopCard()
		require.NoError(t, err)
		require.Equal(t, card.NewNumberCard(color.Red, 0), top)
		require.Equal(t, []card.Card{
			card.NewWildDrawFourCard(),
			card.NewWildCard(),
			card.NewNumberCard(color.Blue, 5),
			card.NewNumberCard(color.Green, 3),
		}, dealer.Deck().Cards())
	})

	t.Run("only_wild_cards", func(t *testing.T) {
		wildCards := []card.Card{
			card.NewWildCard(),
			card.NewWildDrawFourCard(),
			card.NewWildCard(),
			card.NewWildDrawFourCard(),
		}
		dealer := game.NewDealerWithDeck(rand.New(rand.NewSource(1)), wildCards)

		_, err := dealer.FlipFirstCard()
		require.ErrorIs(t, err, consts.ErrorsOverdraw)
		require.True(t, consts.IsInvariantViolation(err))
		require.Equal(t, 0, dealer.PileSize())
		require.ElementsMatch(t, wildCards, dealer.Deck().Cards())
	})

	t.Run("standard_deck", func(t *testing.T) {
		dealer := newDealer(8)
		first, err := dealer.FlipFirstCard()
		require.NoError(t, err)
		require.False(t, first.IsWild())
		require.Equal(t, 1, dealer.PileSize())
		require.Equal(t, consts.TotalCards-1, dealer.DeckSize())
	})
}

func TestDealerDrawHands(t *testing.T) {
	dealer := newDealer(9)
	hands, err := dealer.DrawHands(consts.DefaultPlayers, consts.InitialHandSize)
	require.NoError(t, err)
	require.Len(t, hands, consts.DefaultPlayers)
	for _, hand := range hands {
		require.Len(t, hand, consts.InitialHandSize)
	}
	require.Equal(t, consts.TotalCards-consts.DefaultPlayers*consts.InitialHandSize, dealer.DeckSize())

	_, err = dealer.DrawHands(11, 10)
	require.ErrorIs(t, err, consts.ErrorsOverdraw)
}

func TestDealerConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	dealer := newDealer(11)
	var hand []card.Card
	check := func() {
		require.Equal(t, consts.TotalCards, dealer.DeckSize()+dealer.PileSize()+len(hand))
	}

	first, err := dealer.FlipFirstCard()
	require.NoError(t, err)
	require.False(t, first.IsWild())
	check()

	for i := 0; i < 2000; i++ {
		switch op := rng.Intn(3); {
		case op == 0:
			limit := dealer.DeckSize() + dealer.PileSize() - 1
			if limit <= 0 {
				continue
			}
			cards, err := dealer.Draw(rng.Intn(min(limit, 10)))
			require.NoError(t, err)
			hand = append(hand, cards...)
		case op == 1 && len(hand) > 0:
			index := rng.Intn(len(hand))
			c := hand[index]
			if c.IsWild() {
				c = c.WithColor(color.Random(rng))
			}
			require.NoError(t, dealer.Discard(c))
			hand = append(hand[:index], hand[index+1:]...)
		case op == 2:
			require.NoError(t, dealer.RecyclePile())
		}
		check()
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
