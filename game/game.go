package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/event"
)

type Game struct {
	id         uuid.UUID
	players    *PlayerIterator
	dealer     *Dealer
	events     *event.Dispatcher
	handSize   int
	maxTurns   int
	totalCards int
	recycles   int
}

type Option func(g *Game)

func WithHandSize(handSize int) Option {
	return func(g *Game) {
		g.handSize = handSize
	}
}

// WithMaxTurns stops the game without a winner after maxTurns turns; zero
// means no limit.
func WithMaxTurns(maxTurns int) Option {
	return func(g *Game) {
		g.maxTurns = maxTurns
	}
}

func WithDispatcher(events *event.Dispatcher) Option {
	return func(g *Game) {
		g.events = events
	}
}

// WithDealer replaces the shuffled standard deck, e.g. with a stacked one.
func WithDealer(dealer *Dealer) Option {
	return func(g *Game) {
		g.dealer = dealer
	}
}

func New(players []Player, rng *rand.Rand, options ...Option) (*Game, error) {
	if len(players) < consts.MinPlayers || len(players) > consts.MaxPlayers {
		return nil, fmt.Errorf("%w %d players", consts.ErrorsInvalidPlayerCount, len(players))
	}
	iterator, err := newPlayerIterator(players)
	if err != nil {
		return nil, err
	}
	g := &Game{
		id:       uuid.New(),
		players:  iterator,
		dealer:   NewDealer(rng),
		events:   event.NewDispatcher(),
		handSize: consts.InitialHandSize,
	}
	for _, option := range options {
		option(g)
	}
	g.totalCards = g.dealer.DeckSize() + g.dealer.PileSize()
	// the deal has to leave enough cards to flip the first one
	if g.handSize < 1 || g.handSize*len(players)+3 > g.totalCards {
		return nil, fmt.Errorf("%w %d cards for %d players", consts.ErrorsInvalidHandSize, g.handSize, len(players))
	}
	g.dealer.OnRecycle(func(recycled int) {
		g.recycles++
		g.events.PileRecycled.Emit(event.PileRecycledPayload{Recycled: recycled})
	})
	return g, nil
}

func (g *Game) ID() string {
	return g.id.String()
}

func (g *Game) Players() *PlayerIterator {
	return g.players
}

func (g *Game) Dealer() *Dealer {
	return g.dealer
}

func (g *Game) Events() *event.Dispatcher {
	return g.events
}

func (g *Game) GetPlayerCards(name string) []card.Card {
	var cards []card.Card
	g.players.ForEach(func(player *playerController) {
		if cards == nil && player.Name() == name {
			cards = player.Hand()
		}
	})
	return cards
}

func (g *Game) DealStartingCards() error {
	hands, err := g.dealer.DrawHands(g.players.Len(), g.handSize)
	if err != nil {
		return err
	}
	g.players.ForEach(func(player *playerController) {
		player.AddCards(hands[player.Seat()])
	})
	return g.CheckConservation()
}

func (g *Game) PlayFirstCard() (card.Card, error) {
	firstCard, err := g.dealer.FlipFirstCard()
	if err != nil {
		return card.Card{}, err
	}
	g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		Card: firstCard,
	})
	return firstCard, nil
}

// PerformCardActions applies the effects of the card just put on the pile
// to the players still to come.
func (g *Game) PerformCardActions(playedCard card.Card) error {
	for _, cardAction := range playedCard.Actions() {
		switch cardAction {
		case card.DrawCardsAction:
			victim := g.players.Peek()
			cards, err := g.dealer.Draw(playedCard.DrawAmount())
			if err != nil {
				return err
			}
			victim.AddCards(cards)
			g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
				PlayerName: victim.Name(),
				Cards:      cards,
			})
		case card.ReverseTurnsAction:
			g.players.Reverse()
			g.events.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{Turn: g.players.Turn()})
		case card.SkipTurnAction:
			g.skip()
		case card.PickColorAction:
			// the color was picked before the card reached the pile
		}
	}
	return nil
}

func (g *Game) skip() {
	skipped := g.players.Skip()
	g.events.TurnSkipped.Emit(event.TurnSkippedPayload{PlayerName: skipped.Name()})
}

// PlayTurn lets the next player play. It returns the player's name when
// they emptied their hand.
func (g *Game) PlayTurn() (string, error) {
	player := g.players.Next()
	gameState, err := g.ExtractState(player)
	if err != nil {
		return "", err
	}
	turn, err := player.Play(gameState, g.dealer)
	if err != nil {
		return "", err
	}
	if len(turn.drawn) > 0 {
		g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
			PlayerName: player.Name(),
			Cards:      turn.drawn,
		})
	}
	if !turn.played {
		g.events.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: player.Name()})
		return "", g.CheckConservation()
	}

	if err = g.dealer.Discard(turn.card); err != nil {
		return "", err
	}
	g.events.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.Name(),
		Card:       turn.card,
	})
	if turn.card.IsWild() {
		g.events.ColorPicked.Emit(event.ColorPickedPayload{
			PlayerName: player.Name(),
			Color:      turn.card.Color,
		})
	}
	// a card drawn and played straight away leaves the hand size unchanged
	if len(turn.drawn) == 0 && player.HandSize() == consts.UnoCards {
		g.events.UnoCalled.Emit(event.UnoCalledPayload{PlayerName: player.Name()})
	}
	if err = g.CheckConservation(); err != nil {
		return "", err
	}
	if player.NoCards() {
		g.events.GameWon.Emit(event.GameWonPayload{
			PlayerName: player.Name(),
			Turn:       g.players.Turn(),
		})
		return player.Name(), nil
	}
	return "", g.PerformCardActions(turn.card)
}

// Run plays a whole game: deal, flip the first card, then turns until a
// hand is empty or the turn limit is hit.
func (g *Game) Run() (*Result, error) {
	log.Infof("game %s started, %d players, %d cards each\n", g.id, g.players.Len(), g.handSize)
	if err := g.DealStartingCards(); err != nil {
		return nil, err
	}
	firstCard, err := g.PlayFirstCard()
	if err != nil {
		return nil, err
	}
	if err = g.PerformCardActions(firstCard); err != nil {
		return nil, err
	}
	for {
		if g.maxTurns > 0 && g.players.Turn() >= g.maxTurns {
			log.Infof("game %s stopped after %d turns\n", g.id, g.players.Turn())
			return g.result(""), fmt.Errorf("%w game %s after %d turns", consts.ErrorsTurnLimit, g.id, g.players.Turn())
		}
		winner, err := g.PlayTurn()
		if err != nil {
			log.Errorf("game %s turn %d: %v\n", g.id, g.players.Turn(), err)
			return nil, err
		}
		if winner != "" {
			log.Infof("game %s won by %s after %d turns\n", g.id, winner, g.players.Turn())
			return g.result(winner), nil
		}
	}
}

func (g *Game) ExtractState(player *playerController) (State, error) {
	topCard, err := g.dealer.TopCard()
	if err != nil {
		return State{}, err
	}
	playerSequence := make([]string, 0, g.players.Len())
	playerHandCounts := make(map[string]int, g.players.Len())
	g.players.ForEach(func(p *playerController) {
		playerSequence = append(playerSequence, p.Name())
		playerHandCounts[p.Name()] = p.HandSize()
	})

	return State{
		LastPlayedCard:    topCard,
		CurrentPlayerHand: player.Hand(),
		PlayerSequence:    playerSequence,
		PlayerHandCounts:  playerHandCounts,
		DeckSize:          g.dealer.DeckSize(),
		PileSize:          g.dealer.PileSize(),
		Turn:              g.players.Turn(),
		Reversed:          g.players.Reversed(),
	}, nil
}

// CheckConservation verifies that deck, pile and hands still hold every
// card the game started with.
func (g *Game) CheckConservation() error {
	total := g.dealer.DeckSize() + g.dealer.PileSize()
	g.players.ForEach(func(player *playerController) {
		total += player.HandSize()
	})
	if total != g.totalCards {
		return fmt.Errorf("%w %d of %d", consts.ErrorsCardsNotConserved, total, g.totalCards)
	}
	return nil
}
