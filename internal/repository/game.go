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

// GameRepository persists and reads Game nodes.
type GameRepository struct {
	base
}

// NewGameRepository constructs a GameRepository over the supplied client.
func NewGameRepository(client graph.Client, logger *slog.Logger) *GameRepository {
	return &GameRepository{base: newBase(client, logger)}
}

// Create inserts a new game node. A uniqueness-constraint violation on the id
// surfaces as a write error.
func (r *GameRepository) Create(ctx context.Context, game domain.Game) error {
	if game.ID == "" {
		return errors.New("game id is required")
	}

	params := map[string]any{
		"id":           game.ID,
		"title":        game.Title,
		"release_date": formatDate(game.ReleaseDate),
		"rating":       game.Rating,
		"price":        game.Price,
		"description":  game.Description,
	}
	if _, err := r.executeWrite(ctx, queries.CreateGame, params); err != nil {
		return fmt.Errorf("create game %s: %w", game.ID, err)
	}
	return nil
}

// All returns every game ordered by title.
func (r *GameRepository) All(ctx context.Context) ([]domain.GameRow, error) {
	records, err := r.executeQuery(ctx, queries.AllGames, nil)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	rows := make([]domain.GameRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, mapGameRow(record))
	}
	return rows, nil
}

// ByID fetches one game by id; the bool reports whether it exists.
func (r *GameRepository) ByID(ctx context.Context, gameID string) (domain.GameRow, bool, error) {
	record, found, err := r.executeSingle(ctx, queries.GameByID, map[string]any{"game_id": gameID})
	if err != nil {
		return domain.GameRow{}, false, fmt.Errorf("get game %s: %w", gameID, err)
	}
	if !found {
		return domain.GameRow{}, false, nil
	}
	return mapGameRow(record), true, nil
}

// TopRated returns up to limit games ordered by rating descending.
func (r *GameRepository) TopRated(ctx context.Context, limit int) ([]domain.GameRow, error) {
	records, err := r.executeQuery(ctx, queries.TopRatedGames, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("top rated games: %w", err)
	}

	rows := make([]domain.GameRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, mapGameRow(record))
	}
	return rows, nil
}

// Engagement aggregates distinct owners, distinct raters, and the average
// user rating for one game. The bool reports whether the game exists.
func (r *GameRepository) Engagement(ctx context.Context, gameID string) (domain.GameEngagement, bool, error) {
	record, found, err := r.executeSingle(ctx, queries.GameEngagement, map[string]any{"game_id": gameID})
	if err != nil {
		return domain.GameEngagement{}, false, fmt.Errorf("game engagement %s: %w", gameID, err)
	}
	if !found {
		return domain.GameEngagement{}, false, nil
	}
	return domain.GameEngagement{
		Title:         toString(record["title"]),
		TotalOwners:   toInt(record["total_owners"]),
		TotalRatings:  toInt(record["total_ratings"]),
		AvgUserRating: toFloat64Ptr(record["avg_user_rating"]),
	}, true, nil
}

// Exists reports whether a game with the given id is stored.
func (r *GameRepository) Exists(ctx context.Context, gameID string) (bool, error) {
	_, found, err := r.executeSingle(ctx, queries.GameByID, map[string]any{"game_id": gameID})
	if err != nil {
		return false, fmt.Errorf("check game %s: %w", gameID, err)
	}
	return found, nil
}

// Count returns the total number of game nodes.
func (r *GameRepository) Count(ctx context.Context) (int, error) {
	return r.countNodes(ctx, "Game")
}

func mapGameRow(record graph.Record) domain.GameRow {
	return domain.GameRow{
		ID:          toString(record["id"]),
		Title:       toString(record["title"]),
		Rating:      toFloat64(record["rating"]),
		ReleaseDate: toDate(record["release_date"]),
		Price:       toFloat64(record["price"]),
		Description: toString(record["description"]),
	}
}
