package graph

import (
	"context"
	"errors"
	"testing"
)

func TestConnection_ExecuteBeforeConnect(t *testing.T) {
	conn := NewConnection(Options{URI: "bolt://localhost:7687"}, nil)

	if _, err := conn.ExecuteRead(context.Background(), "RETURN 1", nil); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
	if _, err := conn.ExecuteWrite(context.Background(), "RETURN 1", nil); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
	if err := conn.VerifyConnectivity(context.Background()); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
}

func TestConnection_ConnectRequiresURI(t *testing.T) {
	conn := NewConnection(Options{}, nil)

	if err := conn.Connect(context.Background()); !errors.Is(err, ErrMissingURI) {
		t.Fatalf("expected ErrMissingURI, got %v", err)
	}
	if conn.State() != StateDisconnected {
		t.Fatalf("expected disconnected state, got %v", conn.State())
	}
}

func TestConnection_CloseIsIdempotent(t *testing.T) {
	conn := NewConnection(Options{URI: "bolt://localhost:7687"}, nil)

	if err := conn.Close(context.Background()); err != nil {
		t.Fatalf("first close failed: %v", err)
	}
	if err := conn.Close(context.Background()); err != nil {
		t.Fatalf("second close failed: %v", err)
	}
	if conn.State() != StateClosed {
		t.Fatalf("expected closed state, got %v", conn.State())
	}
}

func TestConnection_ConnectAfterClose(t *testing.T) {
	conn := NewConnection(Options{URI: "bolt://localhost:7687"}, nil)

	if err := conn.Close(context.Background()); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := conn.Connect(context.Background()); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected on closed connection, got %v", err)
	}
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		StateDisconnected: "disconnected",
		StateConnected:    "connected",
		StateClosed:       "closed",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}

func TestMemoryClient_QueuesResults(t *testing.T) {
	mem := NewMemoryClient()
	mem.PushReadResult(Result{Records: []Record{{"n": int64(1)}}})
	mem.PushReadResult(Result{Records: []Record{{"n": int64(2)}}})

	first, err := mem.ExecuteRead(context.Background(), "RETURN 1", nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if first.Records[0]["n"] != int64(1) {
		t.Errorf("expected first queued result, got %v", first.Records[0]["n"])
	}

	second, _ := mem.ExecuteRead(context.Background(), "RETURN 1", nil)
	if second.Records[0]["n"] != int64(2) {
		t.Errorf("expected second queued result, got %v", second.Records[0]["n"])
	}

	// Drained queue yields empty results, not errors.
	third, err := mem.ExecuteRead(context.Background(), "RETURN 1", nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(third.Records) != 0 {
		t.Errorf("expected empty result, got %d records", len(third.Records))
	}
}

func TestMemoryClient_RecordsParams(t *testing.T) {
	mem := NewMemoryClient()

	params := map[string]any{"id": "witcher3"}
	if _, err := mem.ExecuteWrite(context.Background(), "CREATE", params); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Later mutation of the caller's map must not leak into the snapshot.
	params["id"] = "changed"

	calls := mem.WriteCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Params["id"] != "witcher3" {
		t.Errorf("expected snapshot id witcher3, got %v", calls[0].Params["id"])
	}
}
