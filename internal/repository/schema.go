package repository

import (
	"context"
	"fmt"
	"log/slog"

	"gamegraph/internal/domain"
	"gamegraph/internal/graph"
	"gamegraph/internal/queries"
)

// SchemaRepository manages database-level structure: constraints, indexes,
// and the bulk clear used by demo and test setup. All setup statements are
// idempotent.
type SchemaRepository struct {
	base
}

// NewSchemaRepository constructs a SchemaRepository over the supplied client.
func NewSchemaRepository(client graph.Client, logger *slog.Logger) *SchemaRepository {
	return &SchemaRepository{base: newBase(client, logger)}
}

// ClearAll deletes every node and edge.
func (r *SchemaRepository) ClearAll(ctx context.Context) error {
	res, err := r.executeWrite(ctx, queries.ClearDatabase, nil)
	if err != nil {
		return fmt.Errorf("clear database: %w", err)
	}
	r.logger.Info("database cleared", "nodes_deleted", res.Counters.NodesDeleted)
	return nil
}

// EnsureConstraints declares every uniqueness constraint; re-running is safe.
func (r *SchemaRepository) EnsureConstraints(ctx context.Context) error {
	for _, stmt := range queries.Constraints() {
		if _, err := r.executeWrite(ctx, stmt, nil); err != nil {
			return fmt.Errorf("ensure constraint: %w", err)
		}
	}
	return nil
}

// EnsureIndexes declares every secondary index; re-running is safe.
func (r *SchemaRepository) EnsureIndexes(ctx context.Context) error {
	for _, stmt := range queries.Indexes() {
		if _, err := r.executeWrite(ctx, stmt, nil); err != nil {
			return fmt.Errorf("ensure index: %w", err)
		}
	}
	return nil
}

// LabelCounts returns the per-label node totals across the whole graph.
func (r *SchemaRepository) LabelCounts(ctx context.Context) ([]domain.LabelCount, error) {
	records, err := r.executeQuery(ctx, queries.LabelCounts, nil)
	if err != nil {
		return nil, fmt.Errorf("label counts: %w", err)
	}
	counts := make([]domain.LabelCount, 0, len(records))
	for _, record := range records {
		counts = append(counts, domain.LabelCount{
			Label:      toString(record["label"]),
			TotalCount: toInt(record["total_count"]),
		})
	}
	return counts, nil
}
