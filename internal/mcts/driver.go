package mcts

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/alexracape/blokus-engine/internal/evaluator"
	"github.com/alexracape/blokus-engine/internal/game"
)

// Config holds the tunables of a single self-play driver's search, loaded
// from command-line flags by the config package.
type Config struct {
	SimsPerMove         int
	SampleMoves         int
	CBase               float64
	CInit               float64
	DirichletAlpha      float64
	ExplorationFraction float64
}

// Search runs Config.SimsPerMove simulations from g's current state and
// returns the tile to play plus the visit-count policy to record for
// training. moveNumber is the 0-indexed ply within the current game, used
// to decide between softmax sampling and the visit-count argmax.
func Search(ctx context.Context, g *game.Game, ev evaluator.Evaluator, cfg Config, moveNumber int) (int, evaluator.Policy, error) {
	root := NewNode(0)
	if _, err := evaluate(ctx, root, g, ev); err != nil {
		return 0, evaluator.Policy{}, fmt.Errorf("mcts: evaluating root: %w", err)
	}
	addExplorationNoise(root, cfg)

	for i := 0; i < cfg.SimsPerMove; i++ {
		node := root
		scratch := g.Clone()
		var searchPath []int

		for node.Expanded() {
			action := selectChild(node, cfg)
			node = node.Children[action]
			_ = scratch.Apply(action)
			searchPath = append(searchPath, action)
		}

		values, err := evaluate(ctx, node, scratch, ev)
		if err != nil {
			return 0, evaluator.Policy{}, fmt.Errorf("mcts: evaluating leaf: %w", err)
		}
		backpropagate(root, searchPath, values)
	}

	policy := visitPolicy(root)
	action := selectAction(root, moveNumber, cfg)
	return action, policy, nil
}

// evaluate expands node using the evaluator's prediction for scratch's
// current state, or returns the terminal payoff directly if scratch has
// already ended.
func evaluate(ctx context.Context, node *Node, scratch *game.Game, ev evaluator.Evaluator) ([4]float32, error) {
	if scratch.IsTerminal() {
		return scratch.Payoff(), nil
	}

	seat, _ := scratch.CurrentPlayer()
	rep, err := scratch.Representation()
	if err != nil {
		return [4]float32{}, err
	}

	req := evaluator.StateRepresentation{Player: rep.Player}
	copy(req.Boards[:], rep.Boards[:])

	pred, err := ev.Predict(ctx, req)
	if err != nil {
		return [4]float32{}, err
	}

	type weighted struct {
		tile int
		p    float64
	}
	var exp []weighted
	var total float64
	for tile := 0; tile < evaluator.Spaces; tile++ {
		if !rep.Boards[4*evaluator.Spaces+tile] {
			continue
		}
		p := math.Exp(float64(pred.Policy[tile]))
		exp = append(exp, weighted{tile, p})
		total += p
	}

	node.ToPlay = seat
	node.Children = make(map[int]*Node, len(exp))
	for _, w := range exp {
		node.Children[w.tile] = NewNode(w.p / total)
	}

	return pred.Value, nil
}

// ucbScore is the PUCT score: the child's prior scaled by
// ln(parent visits + cBase + 1/cBase) + cInit, a factor that grows slowly
// with the parent's visit count, plus the child's mean backed-up value.
func ucbScore(parent, child *Node, cfg Config) float64 {
	explorationConstant := math.Log(float64(parent.Visits)+cfg.CBase+1/cfg.CBase) + cfg.CInit
	priorScore := explorationConstant * child.Prior
	return priorScore + child.Value()
}

func selectChild(node *Node, cfg Config) int {
	bestScore := math.Inf(-1)
	bestAction := 0
	for action, child := range node.Children {
		score := ucbScore(node, child, cfg)
		if score > bestScore {
			bestScore = score
			bestAction = action
		}
	}
	return bestAction
}

// addExplorationNoise perturbs the root's child priors with Dirichlet
// noise so self-play doesn't collapse onto the same opening repeatedly.
func addExplorationNoise(root *Node, cfg Config) {
	numActions := len(root.Children)
	if numActions <= 1 {
		return
	}

	alpha := make([]float64, numActions)
	for i := range alpha {
		alpha[i] = cfg.DirichletAlpha
	}
	dirichlet := distmv.NewDirichlet(alpha, xrand.NewSource(uint64(rand.Int63())))
	noise := dirichlet.Rand(nil)

	i := 0
	for _, child := range root.Children {
		child.Prior = child.Prior*(1-cfg.ExplorationFraction) + noise[i]*cfg.ExplorationFraction
		i++
	}
}

// backpropagate credits every node below the root on the path to the
// evaluated leaf with the value belonging to that node's own seat to move;
// the root's own visits and value are not updated. Unlike a
// two-player minimax tree, values are never sign-flipped while walking up
// since each seat's payoff share lives in its own slot of values.
func backpropagate(root *Node, searchPath []int, values [4]float32) {
	node := root
	for _, tile := range searchPath {
		node = node.Children[tile]
		node.Visits++
		node.ValueSum += float64(values[node.ToPlay])
	}
}

func visitPolicy(root *Node) evaluator.Policy {
	var totalVisits int
	for _, child := range root.Children {
		totalVisits += child.Visits
	}

	probs := make([]evaluator.ActionProb, 0, len(root.Children))
	for tile, child := range root.Children {
		var p float32
		if totalVisits > 0 {
			p = float32(child.Visits) / float32(totalVisits)
		}
		probs = append(probs, evaluator.ActionProb{Action: int32(tile), Prob: p})
	}
	return evaluator.Policy{Probs: probs}
}

// selectAction samples from the visit distribution for the first
// cfg.SampleMoves plies to keep openings varied, then switches to the
// highest-visit action for the remainder of the game.
func selectAction(root *Node, moveNumber int, cfg Config) int {
	if moveNumber < cfg.SampleMoves {
		return softmaxSample(root)
	}
	return argmaxVisits(root)
}

func argmaxVisits(root *Node) int {
	best := -1
	bestVisits := -1
	for tile, child := range root.Children {
		if child.Visits > bestVisits {
			bestVisits = child.Visits
			best = tile
		}
	}
	return best
}

func softmaxSample(root *Node) int {
	var totalVisits int
	for _, child := range root.Children {
		totalVisits += child.Visits
	}

	sample := rand.Float64()
	var cumulative float64
	last := -1
	for tile, child := range root.Children {
		last = tile
		if totalVisits == 0 {
			continue
		}
		cumulative += float64(child.Visits) / float64(totalVisits)
		if cumulative > sample {
			return tile
		}
	}
	return last
}
