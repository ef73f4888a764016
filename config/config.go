package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/uno/consts"
	"github.com/spf13/cast"
)

const (
	EnvPlayers  = "UNO_PLAYERS"
	EnvHandSize = "UNO_HAND_SIZE"
	EnvSeed     = "UNO_SEED"
	EnvStrategy = "UNO_STRATEGY"
	EnvMaxTurns = "UNO_MAX_TURNS"
	EnvJSON     = "UNO_JSON"
	EnvNoColor  = "UNO_NO_COLOR"
)

type Config struct {
	Players  int
	HandSize int
	Seed     int64
	Strategy string
	// MaxTurns of zero lets the game run until someone wins.
	MaxTurns int
	JSON     bool
	NoColor  bool
}

func Default() Config {
	return Config{
		Players:  consts.DefaultPlayers,
		HandSize: consts.InitialHandSize,
		Seed:     time.Now().UnixNano(),
		Strategy: consts.StrategyRandom,
	}
}

// Load reads the optional env files, then the environment. Without files
// it reads ".env" from the working directory.
func Load(filenames ...string) (Config, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	conf := Default()
	var err error
	if value, ok := lookup(EnvPlayers); ok {
		if conf.Players, err = cast.ToIntE(value); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvPlayers, err)
		}
	}
	if value, ok := lookup(EnvHandSize); ok {
		if conf.HandSize, err = cast.ToIntE(value); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvHandSize, err)
		}
	}
	if value, ok := lookup(EnvSeed); ok {
		if conf.Seed, err = cast.ToInt64E(value); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
	}
	if value, ok := lookup(EnvStrategy); ok {
		conf.Strategy = strings.ToLower(value)
	}
	if value, ok := lookup(EnvMaxTurns); ok {
		if conf.MaxTurns, err = cast.ToIntE(value); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvMaxTurns, err)
		}
	}
	if value, ok := lookup(EnvJSON); ok {
		if conf.JSON, err = cast.ToBoolE(value); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvJSON, err)
		}
	}
	if value, ok := lookup(EnvNoColor); ok {
		if conf.NoColor, err = cast.ToBoolE(value); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvNoColor, err)
		}
	}
	return conf, conf.Validate()
}

func (c Config) Validate() error {
	if c.Players < consts.MinPlayers || c.Players > consts.MaxPlayers {
		return fmt.Errorf("%w %d players", consts.ErrorsInvalidPlayerCount, c.Players)
	}
	if c.HandSize < 1 {
		return fmt.Errorf("%w %d cards", consts.ErrorsInvalidHandSize, c.HandSize)
	}
	if c.MaxTurns < 0 {
		return fmt.Errorf("%s must not be negative, got %d", EnvMaxTurns, c.MaxTurns)
	}
	switch c.Strategy {
	case consts.StrategyRandom, consts.StrategyNaive, consts.StrategyGood:
		return nil
	default:
		return fmt.Errorf("unknown strategy '%s'", c.Strategy)
	}
}

func lookup(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}
