package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gamegraph/internal/domain"
	"gamegraph/internal/graph"
	"gamegraph/internal/queries"
)

// DeveloperRepository persists and reads Developer nodes, keyed by name.
type DeveloperRepository struct {
	base
}

// NewDeveloperRepository constructs a DeveloperRepository over the supplied client.
func NewDeveloperRepository(client graph.Client, logger *slog.Logger) *DeveloperRepository {
	return &DeveloperRepository{base: newBase(client, logger)}
}

// Create inserts a new developer node.
func (r *DeveloperRepository) Create(ctx context.Context, dev domain.Developer) error {
	if dev.Name == "" {
		return errors.New("developer name is required")
	}

	params := map[string]any{
		"name":         dev.Name,
		"founded_year": dev.FoundedYear,
		"country":      dev.Country,
		"employees":    dev.Employees,
	}
	if _, err := r.executeWrite(ctx, queries.CreateDeveloper, params); err != nil {
		return fmt.Errorf("create developer %s: %w", dev.Name, err)
	}
	return nil
}

// All returns every developer ordered by name.
func (r *DeveloperRepository) All(ctx context.Context) ([]domain.DeveloperRow, error) {
	records, err := r.executeQuery(ctx, queries.AllDevelopers, nil)
	if err != nil {
		return nil, fmt.Errorf("list developers: %w", err)
	}

	rows := make([]domain.DeveloperRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, mapDeveloperRow(record))
	}
	return rows, nil
}

// ByName fetches one developer by name; the bool reports whether it exists.
func (r *DeveloperRepository) ByName(ctx context.Context, name string) (domain.DeveloperRow, bool, error) {
	record, found, err := r.executeSingle(ctx, queries.DeveloperByName, map[string]any{"name": name})
	if err != nil {
		return domain.DeveloperRow{}, false, fmt.Errorf("get developer %s: %w", name, err)
	}
	if !found {
		return domain.DeveloperRow{}, false, nil
	}
	return mapDeveloperRow(record), true, nil
}

// Exists reports whether a developer with the given name is stored.
func (r *DeveloperRepository) Exists(ctx context.Context, name string) (bool, error) {
	_, found, err := r.executeSingle(ctx, queries.DeveloperByName, map[string]any{"name": name})
	if err != nil {
		return false, fmt.Errorf("check developer %s: %w", name, err)
	}
	return found, nil
}

// Count returns the total number of developer nodes.
func (r *DeveloperRepository) Count(ctx context.Context) (int, error) {
	return r.countNodes(ctx, "Developer")
}

func mapDeveloperRow(record graph.Record) domain.DeveloperRow {
	return domain.DeveloperRow{
		Name:        toString(record["name"]),
		FoundedYear: toInt(record["founded_year"]),
		Country:     toString(record["country"]),
		Employees:   toInt(record["employees"]),
	}
}
