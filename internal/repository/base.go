package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gamegraph/internal/graph"
)

// ErrNoNodesMatched is returned by relationship creation when the endpoint
// match produced zero nodes, so no edge was created. Callers that pre-check
// existence can treat it as "endpoint missing"; otherwise it is ambiguous
// with a concurrent delete.
var ErrNoNodesMatched = errors.New("no nodes matched; relationship not created")

// base supplies the shared query primitives every repository is built on.
// Failures during writes are logged here, at the repository boundary.
type base struct {
	client graph.Client
	logger *slog.Logger
}

func newBase(client graph.Client, logger *slog.Logger) base {
	if logger == nil {
		logger = slog.Default()
	}
	return base{client: client, logger: logger}
}

// executeQuery runs a read statement and returns the ordered records; an
// empty slice when nothing matches.
func (b base) executeQuery(ctx context.Context, cypher string, params map[string]any) ([]graph.Record, error) {
	res, err := b.client.ExecuteRead(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

// executeSingle runs a read statement and returns the first record. Zero rows
// is reported through the bool, never as an error.
func (b base) executeSingle(ctx context.Context, cypher string, params map[string]any) (graph.Record, bool, error) {
	res, err := b.client.ExecuteRead(ctx, cypher, params)
	if err != nil {
		return nil, false, err
	}
	if len(res.Records) == 0 {
		return nil, false, nil
	}
	return res.Records[0], true, nil
}

// executeWrite runs a write statement. Any failure is logged and returned;
// nothing escapes as a panic.
func (b base) executeWrite(ctx context.Context, cypher string, params map[string]any) (graph.Result, error) {
	res, err := b.client.ExecuteWrite(ctx, cypher, params)
	if err != nil {
		b.logger.Error("write query failed", "error", err)
		return graph.Result{}, err
	}
	return res, nil
}

// countNodes returns the number of nodes carrying the given label; zero when
// none exist. The label is interpolated because Cypher does not parameterize
// labels; callers only pass compile-time label constants.
func (b base) countNodes(ctx context.Context, label string) (int, error) {
	cypher := fmt.Sprintf("MATCH (n:%s) RETURN count(n) as count", label)
	record, found, err := b.executeSingle(ctx, cypher, nil)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}
	return toInt(record["count"]), nil
}
