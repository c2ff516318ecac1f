package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"boardgame/agent"
	"boardgame/game"
)

// maxTurns caps runaway matches, e.g. two random territory-capture agents
// that keep capturing each other's stones.
const maxTurns = 10000

// Result summarizes one finished match.
type Result struct {
	Winner game.Winner
	Moves  int
}

// Local drives one game synchronously between two agents: one move is fully
// validated and applied before the next is requested.
type Local struct {
	Game   *game.Game
	Agents map[game.Player]agent.Agent
}

// NewLocal binds a game to the agents playing each side.
func NewLocal(g *game.Game, a, b agent.Agent) *Local {
	return &Local{
		Game: g,
		Agents: map[game.Player]agent.Agent{
			game.PlayerA: a,
			game.PlayerB: b,
		},
	}
}

// Run plays the game to completion and returns the result. The turn cap
// resigns the player to move so every run produces a finished game.
func (e *Local) Run() (Result, error) {
	g := e.Game
	moves := 0
	for !g.Finished() {
		if moves >= maxTurns {
			log.Warn().Int("moves", moves).Msg("turn cap reached, resigning player to move")
			if err := g.Resign(); err != nil {
				return Result{}, err
			}
			break
		}
		current := g.CurrentPlayer()
		move := e.Agents[current].SelectMove(g.Board(), g.Rules(), current)
		if err := g.ApplyMove(move); err != nil {
			return Result{}, fmt.Errorf("player %s played %s: %w", current.Symbol(), move.Action, err)
		}
		moves++
		log.Debug().
			Str("player", current.Symbol()).
			Str("action", move.Action.String()).
			Int("row", move.Pos.Row).
			Int("col", move.Pos.Col).
			Msg("move applied")
	}
	log.Info().
		Str("ruleset", g.Rules().ID()).
		Str("winner", g.Winner().String()).
		Int("moves", moves).
		Msg("game over")
	return Result{Winner: g.Winner(), Moves: moves}, nil
}
