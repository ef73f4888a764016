package game

// Result summarizes a finished or interrupted game.
type Result struct {
	GameID   string         `json:"game_id"`
	Winner   string         `json:"winner,omitempty"`
	Seed     int64          `json:"seed"`
	Turns    int            `json:"turns"`
	Recycles int            `json:"recycles"`
	Hands    map[string]int `json:"hands"`
}

func (g *Game) result(winner string) *Result {
	hands := make(map[string]int, g.players.Len())
	g.players.ForEach(func(player *playerController) {
		hands[player.Name()] = player.HandSize()
	})
	return &Result{
		GameID:   g.ID(),
		Winner:   winner,
		Turns:    g.players.Turn(),
		Recycles: g.recycles,
		Hands:    hands,
	}
}
