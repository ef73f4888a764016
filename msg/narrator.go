package msg

import (
	"io"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/event"
)

// Narrator prints every game event as a line of text.
type Narrator struct {
	out io.Writer
}

func NewNarrator(out io.Writer) *Narrator {
	return &Narrator{out: out}
}

func (n *Narrator) Print(text string) {
	if _, err := io.WriteString(n.out, text); err != nil {
		log.Error(err)
	}
}

func (n *Narrator) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	n.Print(Message.FirstCardPlayed(payload.Card))
}

func (n *Narrator) OnCardPlayed(payload event.CardPlayedPayload) {
	n.Print(Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (n *Narrator) OnColorPicked(payload event.ColorPickedPayload) {
	n.Print(Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (n *Narrator) OnPlayerPassed(payload event.PlayerPassedPayload) {
	n.Print(Message.PlayerPassed(payload.PlayerName))
}

func (n *Narrator) OnCardsDrawn(payload event.CardsDrawnPayload) {
	n.Print(Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
}

func (n *Narrator) OnTurnSkipped(payload event.TurnSkippedPayload) {
	n.Print(Message.PlayerTurnSkipped(payload.PlayerName))
}

func (n *Narrator) OnTurnOrderReversed(payload event.TurnOrderReversedPayload) {
	n.Print(Message.TurnOrderReversed())
}

func (n *Narrator) OnPileRecycled(payload event.PileRecycledPayload) {
	n.Print(Message.PileRecycled(payload.Recycled))
}

func (n *Narrator) OnUnoCalled(payload event.UnoCalledPayload) {
	n.Print(Message.PlayerCalledUno(payload.PlayerName))
}

func (n *Narrator) OnGameWon(payload event.GameWonPayload) {
	n.Print(Message.WinnerFound(payload.PlayerName, payload.Turn))
}
