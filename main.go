package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/event"
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/msg"
	"github.com/ratel-online/uno/player"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	if err := run(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run() error {
	conf, err := config.Load()
	if err != nil {
		return err
	}
	if conf.NoColor || conf.JSON {
		color.Disable()
	}

	rng := rand.New(rand.NewSource(conf.Seed))
	players, err := player.CreatePlayers(conf.Players, conf.Strategy, rng)
	if err != nil {
		return err
	}
	dispatcher := event.NewDispatcher()
	narrator := msg.NewNarrator(color.Stdout)
	if !conf.JSON {
		narrator.Print(msg.Message.Welcome())
		dispatcher.Subscribe(narrator)
	}

	g, err := game.New(players, rng,
		game.WithHandSize(conf.HandSize),
		game.WithMaxTurns(conf.MaxTurns),
		game.WithDispatcher(dispatcher),
	)
	if err != nil {
		return err
	}
	result, err := g.Run()
	if err != nil && !errors.Is(err, consts.ErrorsTurnLimit) {
		return err
	}
	result.Seed = conf.Seed

	if conf.JSON {
		fmt.Println(string(json.Marshal(result)))
	} else if result.Winner == "" {
		narrator.Print(msg.Message.TurnLimitReached(result.Turns))
	}
	return nil
}
