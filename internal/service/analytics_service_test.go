package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamegraph/internal/domain"
)

func TestAnalyticsService_DatabaseOverview(t *testing.T) {
	games := &stubGameStore{games: []domain.GameRow{
		{ID: "a", Title: "A", Rating: 9.0},
		{ID: "b", Title: "B", Rating: 8.0},
		{ID: "c", Title: "C", Rating: 9.5},
		{ID: "d", Title: "D", Rating: 7.0},
	}}
	players := &stubPlayerStore{}
	for _, id := range []string{"p1", "p2", "p3", "p4"} {
		require.NoError(t, players.Create(context.Background(), domain.Player{ID: id, Username: id}))
	}
	developers := &stubDeveloperStore{}
	require.NoError(t, developers.Create(context.Background(), domain.Developer{Name: "Valve Corporation"}))

	svc := NewAnalyticsService(games, players, developers, nil)
	overview := svc.DatabaseOverview(context.Background())

	assert.Equal(t, 4, overview.Games.Total)
	require.Len(t, overview.Games.TopRated, 3)
	assert.Equal(t, "C", overview.Games.TopRated[0].Title)

	assert.Equal(t, 4, overview.Players.Total)
	assert.Len(t, overview.Players.Sample, 3)

	assert.Equal(t, 1, overview.Developers.Total)
	assert.Len(t, overview.Developers.All, 1)
}

func TestAnalyticsService_DatabaseOverview_ReadFailure(t *testing.T) {
	games := &stubGameStore{readErr: errors.New("down")}
	svc := NewAnalyticsService(games, &stubPlayerStore{}, &stubDeveloperStore{}, nil)

	overview := svc.DatabaseOverview(context.Background())
	assert.Equal(t, domain.DatabaseOverview{}, overview)
}

func TestAnalyticsService_Insights_Empty(t *testing.T) {
	svc := NewAnalyticsService(&stubGameStore{}, &stubPlayerStore{}, &stubDeveloperStore{}, nil)

	insights := svc.Insights(context.Background())
	assert.Equal(t, "No data available", insights.MostCommonPriceRange)
	assert.Equal(t, "No data available", insights.PlayerEngagement)
	assert.Equal(t, "No data available", insights.GameQuality)
}

func TestAnalyticsService_PriceDistribution(t *testing.T) {
	games := &stubGameStore{games: []domain.GameRow{
		{ID: "a", Price: 19.99},
		{ID: "b", Price: 29.99},
		{ID: "c", Price: 39.99},
		{ID: "d", Price: 59.99},
	}}
	svc := NewAnalyticsService(games, &stubPlayerStore{}, &stubDeveloperStore{}, nil)

	insights := svc.Insights(context.Background())
	assert.Equal(t, "Mid-range", insights.MostCommonPriceRange)
}

func TestAnalyticsService_PriceDistribution_TieOrder(t *testing.T) {
	// One game per bucket: the tie resolves in fixed bucket order.
	games := &stubGameStore{games: []domain.GameRow{
		{ID: "a", Price: 10},
		{ID: "b", Price: 30},
		{ID: "c", Price: 50},
		{ID: "d", Price: 70},
	}}
	svc := NewAnalyticsService(games, &stubPlayerStore{}, &stubDeveloperStore{}, nil)
	assert.Equal(t, "Budget", svc.Insights(context.Background()).MostCommonPriceRange)

	games = &stubGameStore{games: []domain.GameRow{
		{ID: "c", Price: 50},
		{ID: "d", Price: 70},
	}}
	svc = NewAnalyticsService(games, &stubPlayerStore{}, &stubDeveloperStore{}, nil)
	assert.Equal(t, "Premium", svc.Insights(context.Background()).MostCommonPriceRange)
}

func TestAnalyticsService_PlayerEngagementThresholds(t *testing.T) {
	cases := []struct {
		playtimes []int
		want      string
	}{
		{[]int{3500, 5200}, "High engagement"},
		{[]int{2000}, "Medium engagement"}, // exactly 2000 is not above the High bar
		{[]int{1500}, "Medium engagement"},
		{[]int{1000}, "Low engagement"},
		{[]int{850}, "Low engagement"},
	}
	for _, tc := range cases {
		players := &stubPlayerStore{}
		for i, playtime := range tc.playtimes {
			require.NoError(t, players.Create(context.Background(), domain.Player{
				ID:            string(rune('a' + i)),
				TotalPlaytime: playtime,
			}))
		}
		svc := NewAnalyticsService(&stubGameStore{}, players, &stubDeveloperStore{}, nil)
		assert.Equal(t, tc.want, svc.Insights(context.Background()).PlayerEngagement, "playtimes %v", tc.playtimes)
	}
}

func TestAnalyticsService_GameQualityThresholds(t *testing.T) {
	cases := []struct {
		ratings []float64
		want    string
	}{
		{[]float64{9.0, 8.5}, "Excellent quality games"},
		{[]float64{8.5}, "Excellent quality games"},
		{[]float64{7.0}, "Good quality games"},
		{[]float64{8.4, 6.0}, "Good quality games"},
		{[]float64{6.99}, "Mixed quality games"},
	}
	for _, tc := range cases {
		games := &stubGameStore{}
		for i, rating := range tc.ratings {
			games.games = append(games.games, domain.GameRow{ID: string(rune('a' + i)), Rating: rating})
		}
		svc := NewAnalyticsService(games, &stubPlayerStore{}, &stubDeveloperStore{}, nil)
		assert.Equal(t, tc.want, svc.Insights(context.Background()).GameQuality, "ratings %v", tc.ratings)
	}
}

func TestAnalyticsService_Insights_PartialFailure(t *testing.T) {
	players := &stubPlayerStore{}
	require.NoError(t, players.Create(context.Background(), domain.Player{ID: "p1", TotalPlaytime: 3000}))
	games := &stubGameStore{readErr: errors.New("down")}

	svc := NewAnalyticsService(games, players, &stubDeveloperStore{}, nil)
	insights := svc.Insights(context.Background())

	// The game-backed heuristics degrade independently of the player one.
	assert.Equal(t, "No data available", insights.MostCommonPriceRange)
	assert.Equal(t, "No data available", insights.GameQuality)
	assert.Equal(t, "High engagement", insights.PlayerEngagement)
}
