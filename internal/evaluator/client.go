package evaluator

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// callTimeout bounds a single Predict/Save/Check round trip. Self-play
// workers call Predict once per simulated node, so this needs to stay
// well under the pace a training round expects from a client.
const callTimeout = 10 * time.Second

// Client is a gRPC-backed Evaluator. It dials once and reuses the
// connection for every call made during a training round.
type Client struct {
	conn *grpc.ClientConn
}

// Dial connects to the evaluator server at addr. The connection carries
// no transport security, matching how this pack's other gRPC clients
// reach same-cluster model servers.
func Dial(addr string) (*Client, error) {
	conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("evaluator: dial %s: %w", addr, err)
	}
	return &Client{conn: conn}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) Predict(ctx context.Context, state StateRepresentation) (Prediction, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var resp Prediction
	if err := c.conn.Invoke(ctx, methodPredict, &state, &resp, grpc.ForceCodec(jsonCodec{})); err != nil {
		return Prediction{}, fmt.Errorf("evaluator: predict: %w", err)
	}
	return resp, nil
}

func (c *Client) Save(ctx context.Context, g TrainingGame) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var resp empty
	if err := c.conn.Invoke(ctx, methodSave, &g, &resp, grpc.ForceCodec(jsonCodec{})); err != nil {
		return fmt.Errorf("evaluator: save: %w", err)
	}
	return nil
}

func (c *Client) Check(ctx context.Context) (CheckResult, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var resp CheckResult
	if err := c.conn.Invoke(ctx, methodCheck, &empty{}, &resp, grpc.ForceCodec(jsonCodec{})); err != nil {
		return CheckResult{}, fmt.Errorf("evaluator: check: %w", err)
	}
	return resp, nil
}
