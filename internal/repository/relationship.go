package repository

import (
	"context"
	"fmt"
	"log/slog"

	"gamegraph/internal/domain"
	"gamegraph/internal/graph"
	"gamegraph/internal/queries"
)

// RelationshipRepository creates the directed edges of the graph. It performs
// no validation of its own; services pre-check endpoint existence. Edges are
// created with CREATE, not MERGE, so repeated calls add parallel edges.
type RelationshipRepository struct {
	base
}

// NewRelationshipRepository constructs a RelationshipRepository over the
// supplied client.
func NewRelationshipRepository(client graph.Client, logger *slog.Logger) *RelationshipRepository {
	return &RelationshipRepository{base: newBase(client, logger)}
}

// DeveloperDeveloped links a developer to a game with a DEVELOPED edge.
func (r *RelationshipRepository) DeveloperDeveloped(ctx context.Context, developerName, gameID string) error {
	params := map[string]any{
		"developer_name": developerName,
		"game_id":        gameID,
	}
	return r.createEdge(ctx, queries.DeveloperDevelopedGame, params, "DEVELOPED")
}

// PlayerOwns links a player to a game with an OWNS edge.
func (r *RelationshipRepository) PlayerOwns(ctx context.Context, playerID, gameID string, ownership domain.Ownership) error {
	params := map[string]any{
		"player_id":     playerID,
		"game_id":       gameID,
		"purchase_date": formatDate(ownership.PurchaseDate),
		"playtime":      ownership.Playtime,
	}
	return r.createEdge(ctx, queries.PlayerOwnsGame, params, "OWNS")
}

// PlayerRated links a player to a game with a RATED edge. A nil review text
// is stored as a null property.
func (r *RelationshipRepository) PlayerRated(ctx context.Context, playerID, gameID string, rating domain.Rating) error {
	var review any
	if rating.ReviewText != nil {
		review = *rating.ReviewText
	}
	params := map[string]any{
		"player_id":   playerID,
		"game_id":     gameID,
		"rating":      rating.Rating,
		"review_date": formatDate(rating.ReviewDate),
		"review_text": review,
	}
	return r.createEdge(ctx, queries.PlayerRatedGame, params, "RATED")
}

// PlayersFriends links two players with a FRIENDS_WITH edge, directed as
// given; no reciprocal edge is created.
func (r *RelationshipRepository) PlayersFriends(ctx context.Context, player1ID, player2ID string, friendship domain.Friendship) error {
	params := map[string]any{
		"player1_id": player1ID,
		"player2_id": player2ID,
		"since":      formatDate(friendship.Since),
	}
	return r.createEdge(ctx, queries.PlayersFriends, params, "FRIENDS_WITH")
}

func (r *RelationshipRepository) createEdge(ctx context.Context, cypher string, params map[string]any, edgeType string) error {
	res, err := r.executeWrite(ctx, cypher, params)
	if err != nil {
		return fmt.Errorf("create %s edge: %w", edgeType, err)
	}
	if res.Counters.RelationshipsCreated == 0 {
		r.logger.Warn("relationship not created, endpoint match was empty", "edge", edgeType)
		return fmt.Errorf("create %s edge: %w", edgeType, ErrNoNodesMatched)
	}
	return nil
}
