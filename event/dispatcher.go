package event

// Dispatcher holds the emitters of one game.
type Dispatcher struct {
	FirstCardPlayed   *firstCardPlayedEmitter
	CardPlayed        *cardPlayedEmitter
	ColorPicked       *colorPickedEmitter
	PlayerPassed      *playerPassedEmitter
	CardsDrawn        *cardsDrawnEmitter
	TurnSkipped       *turnSkippedEmitter
	TurnOrderReversed *turnOrderReversedEmitter
	PileRecycled      *pileRecycledEmitter
	UnoCalled         *unoCalledEmitter
	GameWon           *gameWonEmitter
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		FirstCardPlayed:   &firstCardPlayedEmitter{},
		CardPlayed:        &cardPlayedEmitter{},
		ColorPicked:       &colorPickedEmitter{},
		PlayerPassed:      &playerPassedEmitter{},
		CardsDrawn:        &cardsDrawnEmitter{},
		TurnSkipped:       &turnSkippedEmitter{},
		TurnOrderReversed: &turnOrderReversedEmitter{},
		PileRecycled:      &pileRecycledEmitter{},
		UnoCalled:         &unoCalledEmitter{},
		GameWon:           &gameWonEmitter{},
	}
}

// Subscribe adds listener to every emitter whose listener interface it
// implements.
func (d *Dispatcher) Subscribe(listener interface{}) {
	if l, ok := listener.(FirstCardPlayedListener); ok {
		d.FirstCardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		d.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(ColorPickedListener); ok {
		d.ColorPicked.AddListener(l)
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		d.PlayerPassed.AddListener(l)
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		d.CardsDrawn.AddListener(l)
	}
	if l, ok := listener.(TurnSkippedListener); ok {
		d.TurnSkipped.AddListener(l)
	}
	if l, ok := listener.(TurnOrderReversedListener); ok {
		d.TurnOrderReversed.AddListener(l)
	}
	if l, ok := listener.(PileRecycledListener); ok {
		d.PileRecycled.AddListener(l)
	}
	if l, ok := listener.(UnoCalledListener); ok {
		d.UnoCalled.AddListener(l)
	}
	if l, ok := listener.(GameWonListener); ok {
		d.GameWon.AddListener(l)
	}
}
