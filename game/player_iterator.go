package game

type PlayerIterator struct {
	players []*playerController
	cycler  *Cycler
}

func newPlayerIterator(players []Player) (*PlayerIterator, error) {
	cycler, err := NewCycler(len(players))
	if err != nil {
		return nil, err
	}
	controllers := make([]*playerController, 0, len(players))
	for seat, player := range players {
		controllers = append(controllers, newPlayerController(player, seat))
	}
	return &PlayerIterator{
		players: controllers,
		cycler:  cycler,
	}, nil
}

func (i *PlayerIterator) Current() *playerController {
	return i.players[i.cycler.Current()]
}

// ForEach visits players in seat order.
func (i *PlayerIterator) ForEach(function func(player *playerController)) {
	for _, player := range i.players {
		function(player)
	}
}

func (i *PlayerIterator) Len() int {
	return len(i.players)
}

func (i *PlayerIterator) Next() *playerController {
	return i.players[i.cycler.Next()]
}

// Peek returns the player whose turn is next.
func (i *PlayerIterator) Peek() *playerController {
	return i.players[i.cycler.Peek()]
}

func (i *PlayerIterator) Reverse() {
	i.cycler.Reverse()
}

func (i *PlayerIterator) Reversed() bool {
	return i.cycler.Reversed()
}

// Skip moves past the next player and returns them.
func (i *PlayerIterator) Skip() *playerController {
	return i.Next()
}

func (i *PlayerIterator) Turn() int {
	return i.cycler.Turn()
}
