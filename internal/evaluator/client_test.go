package evaluator

import (
	"context"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

func dialBufconn(t *testing.T, srv Evaluator) (*Client, func()) {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	gs := grpc.NewServer()
	RegisterEvaluatorServer(gs, srv)
	go func() {
		_ = gs.Serve(lis)
	}()

	conn, err := grpc.Dial("bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial bufconn: %v", err)
	}

	return &Client{conn: conn}, func() {
		conn.Close()
		gs.Stop()
	}
}

func TestClientPredictRoundTrip(t *testing.T) {
	local := NewLocal()
	client, closeFn := dialBufconn(t, local)
	defer closeFn()

	var state StateRepresentation
	state.Boards[4*Spaces+7] = true
	state.Boards[4*Spaces+9] = true

	pred, err := client.Predict(context.Background(), state)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if pred.Policy[7] != 0.5 || pred.Policy[9] != 0.5 {
		t.Fatalf("expected uniform 0.5 policy over the two legal cells, got %v and %v", pred.Policy[7], pred.Policy[9])
	}
}

func TestClientSaveAndCheckRoundTrip(t *testing.T) {
	local := NewLocal()
	local.Round = 3
	client, closeFn := dialBufconn(t, local)
	defer closeFn()

	game := TrainingGame{
		History: []HistoryEntry{{Seat: 0, Tile: 0}},
		Values:  [4]float32{1, 0, 0, 0},
	}
	if err := client.Save(context.Background(), game); err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(local.Games) != 1 {
		t.Fatalf("expected server to record one saved game, got %d", len(local.Games))
	}

	result, err := client.Check(context.Background())
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if result.Round != 3 {
		t.Fatalf("expected round 3, got %d", result.Round)
	}
}
