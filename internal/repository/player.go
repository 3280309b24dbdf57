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

// PlayerRepository persists and reads Player nodes.
type PlayerRepository struct {
	base
}

// NewPlayerRepository constructs a PlayerRepository over the supplied client.
func NewPlayerRepository(client graph.Client, logger *slog.Logger) *PlayerRepository {
	return &PlayerRepository{base: newBase(client, logger)}
}

// Create inserts a new player node.
func (r *PlayerRepository) Create(ctx context.Context, player domain.Player) error {
	if player.ID == "" {
		return errors.New("player id is required")
	}

	params := map[string]any{
		"id":             player.ID,
		"username":       player.Username,
		"email":          player.Email,
		"join_date":      formatDate(player.JoinDate),
		"level":          player.Level,
		"total_playtime": player.TotalPlaytime,
	}
	if _, err := r.executeWrite(ctx, queries.CreatePlayer, params); err != nil {
		return fmt.Errorf("create player %s: %w", player.ID, err)
	}
	return nil
}

// All returns every player ordered by username.
func (r *PlayerRepository) All(ctx context.Context) ([]domain.PlayerRow, error) {
	records, err := r.executeQuery(ctx, queries.AllPlayers, nil)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	rows := make([]domain.PlayerRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, mapPlayerRow(record))
	}
	return rows, nil
}

// ByID fetches one player by id; the bool reports whether it exists.
func (r *PlayerRepository) ByID(ctx context.Context, playerID string) (domain.PlayerRow, bool, error) {
	record, found, err := r.executeSingle(ctx, queries.PlayerByID, map[string]any{"player_id": playerID})
	if err != nil {
		return domain.PlayerRow{}, false, fmt.Errorf("get player %s: %w", playerID, err)
	}
	if !found {
		return domain.PlayerRow{}, false, nil
	}
	return mapPlayerRow(record), true, nil
}

// OwnedGames lists the games a player owns, most recent purchase first, each
// joined with the player's own rating when one exists.
func (r *PlayerRepository) OwnedGames(ctx context.Context, playerID string) ([]domain.OwnedGameRow, error) {
	records, err := r.executeQuery(ctx, queries.PlayerOwnedGames, map[string]any{"player_id": playerID})
	if err != nil {
		return nil, fmt.Errorf("owned games for %s: %w", playerID, err)
	}

	rows := make([]domain.OwnedGameRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, domain.OwnedGameRow{
			Title:        toString(record["title"]),
			GameRating:   toFloat64(record["game_rating"]),
			Playtime:     toInt(record["playtime"]),
			PurchaseDate: toDate(record["purchase_date"]),
			UserRating:   toFloat64Ptr(record["user_rating"]),
		})
	}
	return rows, nil
}

// Exists reports whether a player with the given id is stored.
func (r *PlayerRepository) Exists(ctx context.Context, playerID string) (bool, error) {
	_, found, err := r.executeSingle(ctx, queries.PlayerByID, map[string]any{"player_id": playerID})
	if err != nil {
		return false, fmt.Errorf("check player %s: %w", playerID, err)
	}
	return found, nil
}

// Count returns the total number of player nodes.
func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	return r.countNodes(ctx, "Player")
}

func mapPlayerRow(record graph.Record) domain.PlayerRow {
	return domain.PlayerRow{
		ID:            toString(record["id"]),
		Username:      toString(record["username"]),
		Email:         toString(record["email"]),
		JoinDate:      toDate(record["join_date"]),
		Level:         toInt(record["level"]),
		TotalPlaytime: toInt(record["total_playtime"]),
	}
}
