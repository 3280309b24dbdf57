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

// GenreRepository persists Genre nodes. The label is constrained in the
// schema but no service operation consumes it yet.
type GenreRepository struct {
	base
}

func NewGenreRepository(client graph.Client, logger *slog.Logger) *GenreRepository {
	return &GenreRepository{base: newBase(client, logger)}
}

func (r *GenreRepository) Create(ctx context.Context, genre domain.Genre) error {
	if genre.Name == "" {
		return errors.New("genre name is required")
	}
	params := map[string]any{
		"name":        genre.Name,
		"description": genre.Description,
	}
	if _, err := r.executeWrite(ctx, queries.CreateGenre, params); err != nil {
		return fmt.Errorf("create genre %s: %w", genre.Name, err)
	}
	return nil
}

func (r *GenreRepository) All(ctx context.Context) ([]domain.Genre, error) {
	records, err := r.executeQuery(ctx, queries.AllGenres, nil)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	rows := make([]domain.Genre, 0, len(records))
	for _, record := range records {
		rows = append(rows, domain.Genre{
			Name:        toString(record["name"]),
			Description: toString(record["description"]),
		})
	}
	return rows, nil
}

func (r *GenreRepository) Count(ctx context.Context) (int, error) {
	return r.countNodes(ctx, "Genre")
}

// PlatformRepository persists Platform nodes; schema-level only, like Genre.
type PlatformRepository struct {
	base
}

func NewPlatformRepository(client graph.Client, logger *slog.Logger) *PlatformRepository {
	return &PlatformRepository{base: newBase(client, logger)}
}

func (r *PlatformRepository) Create(ctx context.Context, platform domain.Platform) error {
	if platform.Name == "" {
		return errors.New("platform name is required")
	}
	params := map[string]any{
		"name":         platform.Name,
		"manufacturer": platform.Manufacturer,
	}
	if _, err := r.executeWrite(ctx, queries.CreatePlatform, params); err != nil {
		return fmt.Errorf("create platform %s: %w", platform.Name, err)
	}
	return nil
}

func (r *PlatformRepository) All(ctx context.Context) ([]domain.Platform, error) {
	records, err := r.executeQuery(ctx, queries.AllPlatforms, nil)
	if err != nil {
		return nil, fmt.Errorf("list platforms: %w", err)
	}
	rows := make([]domain.Platform, 0, len(records))
	for _, record := range records {
		rows = append(rows, domain.Platform{
			Name:         toString(record["name"]),
			Manufacturer: toString(record["manufacturer"]),
		})
	}
	return rows, nil
}

func (r *PlatformRepository) Count(ctx context.Context) (int, error) {
	return r.countNodes(ctx, "Platform")
}
