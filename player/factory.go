package player

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/game"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// NewStrategy builds the strategy registered under name.
func NewStrategy(name string, rng *rand.Rand) (game.Strategy, error) {
	switch name {
	case consts.StrategyRandom:
		return NewRandomStrategy(rng), nil
	case consts.StrategyNaive:
		return NewNaiveStrategy(rng), nil
	case consts.StrategyGood:
		return NewGoodStrategy(), nil
	default:
		return nil, fmt.Errorf("unknown strategy '%s'", name)
	}
}

// CreatePlayers seats numberOfPlayers bots with distinct names, all playing
// the named strategy.
func CreatePlayers(numberOfPlayers int, strategyName string, rng *rand.Rand) ([]game.Player, error) {
	if numberOfPlayers < consts.MinPlayers || numberOfPlayers > consts.MaxPlayers {
		return nil, fmt.Errorf("%w %d players", consts.ErrorsInvalidPlayerCount, numberOfPlayers)
	}
	names := make([]string, len(botNames))
	copy(names, botNames)
	rng.Shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })

	players := make([]game.Player, 0, numberOfPlayers)
	for _, botName := range names[:numberOfPlayers] {
		strategy, err := NewStrategy(strategyName, rng)
		if err != nil {
			return nil, err
		}
		players = append(players, New(botName, strategy))
	}
	return players, nil
}
