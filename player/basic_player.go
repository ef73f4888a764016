package player

import (
	"github.com/ratel-online/uno/game"
)

type basicPlayer struct {
	game.Strategy
	name string
}

// New seats a named player who plays with strategy.
func New(name string, strategy game.Strategy) game.Player {
	return basicPlayer{Strategy: strategy, name: name}
}

func (p basicPlayer) Name() string {
	return p.name
}
