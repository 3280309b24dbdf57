package queries

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateStatementsCarryAllParameters(t *testing.T) {
	cases := []struct {
		name   string
		query  string
		params []string
	}{
		{"game", CreateGame, []string{"$id", "$title", "$release_date", "$rating", "$price", "$description"}},
		{"player", CreatePlayer, []string{"$id", "$username", "$email", "$join_date", "$level", "$total_playtime"}},
		{"developer", CreateDeveloper, []string{"$name", "$founded_year", "$country", "$employees"}},
		{"genre", CreateGenre, []string{"$name", "$description"}},
		{"platform", CreatePlatform, []string{"$name", "$manufacturer"}},
	}
	for _, tc := range cases {
		for _, param := range tc.params {
			assert.Contains(t, tc.query, param, "%s statement missing %s", tc.name, param)
		}
	}
}

func TestReadStatementsAliasEveryColumn(t *testing.T) {
	for _, alias := range []string{"as id", "as title", "as rating", "as release_date", "as price"} {
		assert.Contains(t, AllGames, alias)
		assert.Contains(t, GameByID, alias)
	}
	for _, alias := range []string{"as id", "as username", "as email", "as join_date", "as level", "as total_playtime"} {
		assert.Contains(t, AllPlayers, alias)
		assert.Contains(t, PlayerByID, alias)
	}
	for _, alias := range []string{"as title", "as game_rating", "as playtime", "as purchase_date", "as user_rating"} {
		assert.Contains(t, PlayerOwnedGames, alias)
	}
	for _, alias := range []string{"as title", "as total_owners", "as avg_user_rating", "as total_ratings"} {
		assert.Contains(t, GameEngagement, alias)
	}
}

func TestSchemaStatementsAreIdempotent(t *testing.T) {
	constraints := Constraints()
	assert.Len(t, constraints, 5)
	for _, stmt := range constraints {
		assert.Contains(t, stmt, "IF NOT EXISTS")
		assert.Contains(t, stmt, "IS UNIQUE")
	}

	indexes := Indexes()
	assert.Len(t, indexes, 3)
	for _, stmt := range indexes {
		assert.Contains(t, stmt, "IF NOT EXISTS")
	}
}

func TestRelationshipStatementsMatchBeforeCreate(t *testing.T) {
	for name, stmt := range map[string]string{
		"developed":    DeveloperDevelopedGame,
		"owns":         PlayerOwnsGame,
		"rated":        PlayerRatedGame,
		"friends_with": PlayersFriends,
	} {
		matchIdx := strings.Index(stmt, "MATCH")
		createIdx := strings.Index(stmt, "CREATE")
		assert.True(t, matchIdx >= 0 && createIdx > matchIdx,
			"%s statement must match endpoints before creating the edge", name)
		// CREATE, not MERGE: repeated calls add parallel edges.
		assert.NotContains(t, stmt, "MERGE", name)
	}
}

func TestDateValuesGoThroughDateFunction(t *testing.T) {
	assert.Contains(t, CreateGame, "date($release_date)")
	assert.Contains(t, CreatePlayer, "date($join_date)")
	assert.Contains(t, PlayerOwnsGame, "date($purchase_date)")
	assert.Contains(t, PlayerRatedGame, "date($review_date)")
	assert.Contains(t, PlayersFriends, "date($since)")
}

func TestOrderedListings(t *testing.T) {
	assert.Contains(t, AllGames, "ORDER BY g.title")
	assert.Contains(t, AllPlayers, "ORDER BY p.username")
	assert.Contains(t, AllDevelopers, "ORDER BY d.name")
	assert.Contains(t, TopRatedGames, "ORDER BY g.rating DESC")
	assert.Contains(t, TopRatedGames, "LIMIT $limit")
	assert.Contains(t, PlayerOwnedGames, "ORDER BY owns.purchase_date DESC")
}

func TestOwnedGamesRatingJoinIsOptional(t *testing.T) {
	assert.Contains(t, PlayerOwnedGames, "OPTIONAL MATCH (p)-[rated:RATED]->(g)")
	assert.Contains(t, GameEngagement, "OPTIONAL MATCH")
	assert.Contains(t, GameEngagement, "count(DISTINCT owner)")
	assert.Contains(t, GameEngagement, "count(DISTINCT rater)")
}
