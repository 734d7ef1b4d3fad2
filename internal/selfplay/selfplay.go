// Package selfplay drives one Blokus game to completion using mcts.Search
// at every turn, then packages the move history and visit policies for the
// evaluator to train on.
package selfplay

import (
	"context"
	"fmt"

	"github.com/alexracape/blokus-engine/internal/evaluator"
	"github.com/alexracape/blokus-engine/internal/game"
	"github.com/alexracape/blokus-engine/internal/mcts"
)

// Result is the outcome of one finished game: the final seat-indexed
// payoff and the number of tiles played. The TrainingGame itself has
// already been handed to the evaluator and is not part of Result.
type Result struct {
	Payoff [4]float32
	Moves  int
}

// PlayGame runs a full game against ev, saving the finished game via
// ev.Save before returning.
func PlayGame(ctx context.Context, ev evaluator.Evaluator, cfg mcts.Config) (Result, error) {
	g := game.Reset()
	var policies []evaluator.Policy

	moveNumber := 0
	for !g.IsTerminal() {
		action, policy, err := mcts.Search(ctx, g, ev, cfg, moveNumber)
		if err != nil {
			return Result{}, fmt.Errorf("selfplay: search at move %d: %w", moveNumber, err)
		}
		policies = append(policies, policy)

		if err := g.Apply(action); err != nil {
			return Result{}, fmt.Errorf("selfplay: applying move %d (tile %d): %w", moveNumber, action, err)
		}
		moveNumber++
	}

	payoff := g.Payoff()

	history := make([]evaluator.HistoryEntry, 0, len(g.History))
	for _, entry := range g.History {
		history = append(history, evaluator.HistoryEntry{Seat: int32(entry.Seat), Tile: int32(entry.Tile)})
	}

	trainingGame := evaluator.TrainingGame{
		History:  history,
		Policies: policies,
		Values:   payoff,
	}
	if err := ev.Save(ctx, trainingGame); err != nil {
		return Result{}, fmt.Errorf("selfplay: saving finished game: %w", err)
	}

	return Result{Payoff: payoff, Moves: moveNumber}, nil
}
