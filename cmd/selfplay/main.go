// Command selfplay drives Blokus self-play games against a remote
// evaluator, feeding finished games back for training.
package main

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/alexracape/blokus-engine/internal/config"
	"github.com/alexracape/blokus-engine/internal/evaluator"
	"github.com/alexracape/blokus-engine/internal/selfplay"
	"github.com/alexracape/blokus-engine/internal/statusserver"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Fatalf("selfplay: parsing flags: %v", err)
	}

	client, err := evaluator.Dial(cfg.ServerAddr)
	if err != nil {
		log.Fatalf("selfplay: connecting to evaluator at %s: %v", cfg.ServerAddr, err)
	}
	defer client.Close()

	status := statusserver.New()
	go func() {
		if err := status.ListenAndServe(":8081"); err != nil {
			log.Printf("selfplay: status server stopped: %v", err)
		}
	}()

	ctx := context.Background()

	for round := 0; round < cfg.TrainingRounds; round++ {
		if err := waitForRound(ctx, client, status, round); err != nil {
			log.Fatalf("selfplay: waiting for training round %d: %v", round, err)
		}

		status.StartRound(round)
		log.Printf("selfplay: starting round %d with %d games", round, cfg.GamesPerClient)

		var wg sync.WaitGroup
		for g := 0; g < cfg.GamesPerClient; g++ {
			wg.Add(1)
			go func(gameNum int) {
				defer wg.Done()
				result, err := selfplay.PlayGame(ctx, client, cfg.Search)
				if err != nil {
					log.Printf("selfplay: round %d game %d failed: %v", round, gameNum, err)
					return
				}
				status.RecordGame(round, result.Payoff)
				log.Printf("selfplay: round %d game %d finished in %d moves, payoff=%v", round, gameNum, result.Moves, result.Payoff)
			}(g)
		}
		wg.Wait()
	}

	log.Printf("selfplay: completed %d training rounds", cfg.TrainingRounds)
}

// waitForRound polls Check until the evaluator reports it has reached
// round, so self-play doesn't keep producing games off a stale model
// while a new one is training.
func waitForRound(ctx context.Context, ev evaluator.Evaluator, status *statusserver.Server, round int) error {
	for {
		result, err := ev.Check(ctx)
		if err != nil {
			status.SetHealthy(false)
			return err
		}
		status.SetHealthy(true)
		if int(result.Round) >= round {
			return nil
		}
		time.Sleep(time.Second)
	}
}
