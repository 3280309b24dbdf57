package service

import (
	"context"

	"gamegraph/internal/domain"
)

// GameStore is the storage contract the services need for games.
type GameStore interface {
	Create(ctx context.Context, game domain.Game) error
	All(ctx context.Context) ([]domain.GameRow, error)
	ByID(ctx context.Context, gameID string) (domain.GameRow, bool, error)
	TopRated(ctx context.Context, limit int) ([]domain.GameRow, error)
	Engagement(ctx context.Context, gameID string) (domain.GameEngagement, bool, error)
	Exists(ctx context.Context, gameID string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// PlayerStore is the storage contract the services need for players.
type PlayerStore interface {
	Create(ctx context.Context, player domain.Player) error
	All(ctx context.Context) ([]domain.PlayerRow, error)
	ByID(ctx context.Context, playerID string) (domain.PlayerRow, bool, error)
	OwnedGames(ctx context.Context, playerID string) ([]domain.OwnedGameRow, error)
	Exists(ctx context.Context, playerID string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// DeveloperStore is the storage contract the services need for developers.
type DeveloperStore interface {
	Create(ctx context.Context, dev domain.Developer) error
	All(ctx context.Context) ([]domain.DeveloperRow, error)
	Exists(ctx context.Context, name string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// RelationshipStore is the storage contract for edge creation.
type RelationshipStore interface {
	DeveloperDeveloped(ctx context.Context, developerName, gameID string) error
	PlayerOwns(ctx context.Context, playerID, gameID string, ownership domain.Ownership) error
	PlayerRated(ctx context.Context, playerID, gameID string, rating domain.Rating) error
	PlayersFriends(ctx context.Context, player1ID, player2ID string, friendship domain.Friendship) error
}
