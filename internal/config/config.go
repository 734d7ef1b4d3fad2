// Package config parses the self-play driver's command-line flags the
// way every cmd/ entrypoint in this module's lineage configures itself:
// flag.FlagSet with documented defaults, no external config library.
package config

import (
	"flag"

	"github.com/alexracape/blokus-engine/internal/mcts"
)

// Config is everything cmd/selfplay needs to run a training round.
type Config struct {
	ServerAddr     string
	GamesPerClient int
	TrainingRounds int
	Search         mcts.Config
}

// Parse reads args (typically os.Args[1:]) into a Config, applying the
// defaults the self-play worker ships with.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("selfplay", flag.ContinueOnError)

	serverAddr := fs.String("server", "localhost:50052", "address of the evaluator gRPC service")
	gamesPerClient := fs.Int("games", 20, "self-play games to run per training round")
	trainingRounds := fs.Int("rounds", 1, "training rounds to wait for before exiting")
	simsPerMove := fs.Int("sims", 100, "MCTS simulations per move")
	sampleMoves := fs.Int("sample-moves", 10, "plies sampled from the visit distribution before switching to argmax")
	cBase := fs.Float64("c-base", 19652, "PUCT exploration base")
	cInit := fs.Float64("c-init", 1.25, "PUCT exploration init constant")
	dirichletAlpha := fs.Float64("dirichlet-alpha", 0.3, "Dirichlet root noise concentration")
	explorationFraction := fs.Float64("exploration-frac", 0.25, "fraction of root prior replaced by Dirichlet noise")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return Config{
		ServerAddr:     *serverAddr,
		GamesPerClient: *gamesPerClient,
		TrainingRounds: *trainingRounds,
		Search: mcts.Config{
			SimsPerMove:         *simsPerMove,
			SampleMoves:         *sampleMoves,
			CBase:               *cBase,
			CInit:               *cInit,
			DirichletAlpha:      *dirichletAlpha,
			ExplorationFraction: *explorationFraction,
		},
	}, nil
}
