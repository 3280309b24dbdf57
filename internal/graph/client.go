package graph

import (
	"context"
	"errors"
)

// Client is the minimal contract repositories need to talk to the graph
// engine.
type Client interface {
	ExecuteWrite(ctx context.Context, cypher string, params map[string]any) (Result, error)
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error)
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

// Result is a simplified representation of a query response.
type Result struct {
	Records  []Record
	Counters Counters
}

// Record groups key-value pairs returned from the graph engine.
type Record map[string]any

// Counters carries the mutation counts reported by the engine for a single
// statement. The relationship repository uses RelationshipsCreated to tell a
// missing endpoint apart from a successful edge create.
type Counters struct {
	NodesCreated         int
	NodesDeleted         int
	RelationshipsCreated int
}

// Options configures the graph connection.
type Options struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// ErrMissingURI indicates the graph URI is not provided.
var ErrMissingURI = errors.New("graph URI is required")

// ErrNotConnected is returned when a statement is issued before Connect has
// succeeded, or after Close. It signals a caller defect, not an environment
// failure.
var ErrNotConnected = errors.New("graph connection not established: call Connect first")
