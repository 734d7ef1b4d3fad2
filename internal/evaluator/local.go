package evaluator

import "context"

// Local is a deterministic in-process Evaluator used for tests and offline
// runs where no model server is available. It returns a uniform policy
// over every requested cell and a value of zero for every seat, and keeps
// saved games in memory instead of forwarding them to a trainer.
type Local struct {
	Round int32
	Games []TrainingGame
}

// NewLocal returns a Local evaluator at training round 0.
func NewLocal() *Local {
	return &Local{}
}

func (l *Local) Predict(ctx context.Context, state StateRepresentation) (Prediction, error) {
	var pred Prediction
	legal := 0
	for cell := 0; cell < Spaces; cell++ {
		if state.Boards[4*Spaces+cell] {
			legal++
		}
	}
	if legal == 0 {
		return pred, nil
	}
	p := float32(1) / float32(legal)
	for cell := 0; cell < Spaces; cell++ {
		if state.Boards[4*Spaces+cell] {
			pred.Policy[cell] = p
		}
	}
	return pred, nil
}

func (l *Local) Save(ctx context.Context, g TrainingGame) error {
	l.Games = append(l.Games, g)
	return nil
}

func (l *Local) Check(ctx context.Context) (CheckResult, error) {
	return CheckResult{Round: l.Round}, nil
}
