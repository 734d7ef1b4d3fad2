// Package evaluator defines the external neural evaluator contract: a
// request/response channel to a model server that scores board states and
// receives finished games for training. The wire types mirror the 5x400
// channel representation the MCTS driver builds from a game.Representation.
package evaluator

import "context"

// Spaces is the number of cells per channel (20x20 board).
const Spaces = 400

// Channels is the number of boolean planes in a StateRepresentation.
const Channels = 5

// StateRepresentation is the request payload for Predict: 5 boolean
// planes of 400 cells each (4 occupancy channels rotated so channel 0 is
// the seat to move, plus a legal-move channel), and the raw seat index
// for logging on the evaluator side.
type StateRepresentation struct {
	Boards [Channels * Spaces]bool
	Player int32
}

// Prediction is the evaluator's response to Predict: policy logits over
// the 400 board cells (in the request's seat-to-move orientation) and a
// seat-indexed value vector matching the request's channel order.
type Prediction struct {
	Policy [Spaces]float32
	Value  [4]float32
}

// ActionProb is one entry of a training Policy: a board tile and the
// visit-proportional probability the search assigned it.
type ActionProb struct {
	Action int32
	Prob   float32
}

// Policy is the MCTS visit distribution emitted for one move.
type Policy struct {
	Probs []ActionProb
}

// HistoryEntry records one played tile for a finished game.
type HistoryEntry struct {
	Seat int32
	Tile int32
}

// TrainingGame is the payload Save deposits at the end of a self-play
// game: its move history, the per-move visit policies, and the final
// seat-indexed payoff.
type TrainingGame struct {
	History  []HistoryEntry
	Policies []Policy
	Values   [4]float32
}

// CheckResult reports the evaluator's current training round. Self-play
// drivers poll Check between rounds and resume once Round advances.
type CheckResult struct {
	Round int32
}

// Evaluator is the external neural network: scores board states for MCTS
// and collects finished self-play games for training.
type Evaluator interface {
	// Predict returns terminal-free policy logits and a seat-indexed value
	// vector for state.
	Predict(ctx context.Context, state StateRepresentation) (Prediction, error)
	// Save deposits a finished game's training tuples.
	Save(ctx context.Context, g TrainingGame) error
	// Check returns the evaluator's current training round.
	Check(ctx context.Context) (CheckResult, error)
}
