package service

import (
	"context"
	"log/slog"

	"gamegraph/internal/domain"
)

const noData = "No data available"

// AnalyticsService aggregates cross-entity reporting and the insight
// heuristics.
type AnalyticsService struct {
	games      GameStore
	players    PlayerStore
	developers DeveloperStore
	logger     *slog.Logger
}

// NewAnalyticsService constructs an AnalyticsService.
func NewAnalyticsService(games GameStore, players PlayerStore, developers DeveloperStore, logger *slog.Logger) *AnalyticsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsService{
		games:      games,
		players:    players,
		developers: developers,
		logger:     logger,
	}
}

// DatabaseOverview collects entity totals and small samples for reporting.
// Any underlying failure is logged and yields an empty overview, never an
// error.
func (s *AnalyticsService) DatabaseOverview(ctx context.Context) domain.DatabaseOverview {
	gamesTotal, err := s.games.Count(ctx)
	if err != nil {
		return s.overviewFailed(err)
	}
	topRated, err := s.games.TopRated(ctx, 3)
	if err != nil {
		return s.overviewFailed(err)
	}

	playersTotal, err := s.players.Count(ctx)
	if err != nil {
		return s.overviewFailed(err)
	}
	allPlayers, err := s.players.All(ctx)
	if err != nil {
		return s.overviewFailed(err)
	}
	sample := allPlayers
	if len(sample) > 3 {
		sample = sample[:3]
	}

	developersTotal, err := s.developers.Count(ctx)
	if err != nil {
		return s.overviewFailed(err)
	}
	allDevelopers, err := s.developers.All(ctx)
	if err != nil {
		return s.overviewFailed(err)
	}

	s.logger.Info("database overview generated")
	return domain.DatabaseOverview{
		Games:      domain.GamesOverview{Total: gamesTotal, TopRated: topRated},
		Players:    domain.PlayersOverview{Total: playersTotal, Sample: sample},
		Developers: domain.DevelopersOverview{Total: developersTotal, All: allDevelopers},
	}
}

// Insights runs the three independent heuristics. A heuristic with no data
// behind it (or a failed read) reports "No data available".
func (s *AnalyticsService) Insights(ctx context.Context) domain.Insights {
	return domain.Insights{
		MostCommonPriceRange: s.priceDistribution(ctx),
		PlayerEngagement:     s.playerEngagement(ctx),
		GameQuality:          s.gameQuality(ctx),
	}
}

// priceDistribution reports the most populous price bucket. Ties resolve in
// the fixed check order Budget, Mid-range, Premium, AAA.
func (s *AnalyticsService) priceDistribution(ctx context.Context) string {
	games, err := s.games.All(ctx)
	if err != nil {
		s.logger.Error("price distribution read failed", "error", err)
		return noData
	}
	if len(games) == 0 {
		return noData
	}

	counts := map[string]int{}
	for _, game := range games {
		counts[priceCategory(game.Price)]++
	}

	winner := noData
	best := -1
	for _, category := range []string{"Budget", "Mid-range", "Premium", "AAA"} {
		if counts[category] > best {
			best = counts[category]
			winner = category
		}
	}
	return winner
}

func (s *AnalyticsService) playerEngagement(ctx context.Context) string {
	players, err := s.players.All(ctx)
	if err != nil {
		s.logger.Error("engagement read failed", "error", err)
		return noData
	}
	if len(players) == 0 {
		return noData
	}

	total := 0
	for _, player := range players {
		total += player.TotalPlaytime
	}
	avg := float64(total) / float64(len(players))

	switch {
	case avg > 2000:
		return "High engagement"
	case avg > 1000:
		return "Medium engagement"
	default:
		return "Low engagement"
	}
}

func (s *AnalyticsService) gameQuality(ctx context.Context) string {
	games, err := s.games.All(ctx)
	if err != nil {
		s.logger.Error("quality read failed", "error", err)
		return noData
	}
	if len(games) == 0 {
		return noData
	}

	var sum float64
	for _, game := range games {
		sum += game.Rating
	}
	avg := sum / float64(len(games))

	switch {
	case avg >= 8.5:
		return "Excellent quality games"
	case avg >= 7.0:
		return "Good quality games"
	default:
		return "Mixed quality games"
	}
}

func (s *AnalyticsService) overviewFailed(err error) domain.DatabaseOverview {
	s.logger.Error("database overview failed", "error", err)
	return domain.DatabaseOverview{}
}
