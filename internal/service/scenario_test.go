package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamegraph/internal/domain"
)

// Walks the whole create-purchase-rate-profile flow across the services over
// shared stub stores.
func TestEndToEndFlow(t *testing.T) {
	ctx := context.Background()

	games := &stubGameStore{}
	players := &stubPlayerStore{owned: map[string][]domain.OwnedGameRow{}}
	developers := &stubDeveloperStore{}
	relationships := &stubRelationshipStore{}

	gameService := newGameServiceForTest(games, developers, relationships)
	playerService := newPlayerServiceForTest(players, games, relationships)

	require.NoError(t, developers.Create(ctx, domain.Developer{
		Name: "Acme", FoundedYear: 1990, Country: "X", Employees: 10,
	}))

	input := GameInput{
		ID:          "g1",
		Title:       "First Game",
		ReleaseDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Rating:      9.0,
		Price:       39.99,
	}
	require.NoError(t, gameService.CreateWithDeveloper(ctx, input, "Acme"))
	assert.ErrorIs(t, gameService.CreateWithDeveloper(ctx, input, "Acme"), ErrAlreadyExists)

	require.NoError(t, playerService.Create(ctx, PlayerInput{
		ID: "p1", Username: "player-one", Email: "a@b.com",
	}))

	require.NoError(t, playerService.Purchase(ctx, "p1", "g1", time.Time{}))

	review := "great"
	require.NoError(t, playerService.Rate(ctx, "p1", "g1", 9.5, &review))

	bad := "bad"
	assert.ErrorIs(t, playerService.Rate(ctx, "p1", "g1", 11, &bad), ErrRatingOutOfRange)

	// The rejected rating must not have touched the recorded edges.
	var rated int
	for _, edge := range relationships.edges {
		if edge.kind == "RATED" {
			rated++
			assert.Equal(t, 9.5, edge.rating.Rating)
		}
	}
	assert.Equal(t, 1, rated)

	// Reflect the recorded purchase into the read model before profiling.
	for _, edge := range relationships.edges {
		if edge.kind == "OWNS" {
			players.owned["p1"] = append(players.owned["p1"], domain.OwnedGameRow{
				Title:        "First Game",
				GameRating:   9.0,
				Playtime:     edge.ownership.Playtime,
				PurchaseDate: edge.ownership.PurchaseDate,
			})
		}
	}

	profile, err := playerService.Profile(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, 1, profile.GamesOwned)
	assert.Equal(t, 0, profile.TotalPlaytimeHours)
	assert.Zero(t, profile.AveragePlaytimePerGame)
}
