package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"gamegraph/internal/domain"
)

const (
	defaultTopRatedLimit = 10
	maxTopRatedLimit     = 50
)

// GameInput is the inbound payload for creating a game.
type GameInput struct {
	ID          string
	Title       string
	ReleaseDate time.Time
	Rating      float64
	Price       float64
	Description string
}

// GameService layers validation and derived statistics over the game
// repositories.
type GameService struct {
	games         GameStore
	developers    DeveloperStore
	relationships RelationshipStore
	logger        *slog.Logger
	nowFn         func() time.Time
}

// NewGameService constructs a GameService.
func NewGameService(games GameStore, developers DeveloperStore, relationships RelationshipStore, logger *slog.Logger) *GameService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GameService{
		games:         games,
		developers:    developers,
		relationships: relationships,
		logger:        logger,
		nowFn:         time.Now,
	}
}

// WithClock overrides the time provider (used primarily in tests).
func (s *GameService) WithClock(nowFn func() time.Time) {
	if nowFn != nil {
		s.nowFn = nowFn
	}
}

// CreateWithDeveloper creates a game node and its DEVELOPED edge. The
// developer must already exist and the game id must be free. The existence
// checks and the creates are separate statements, so concurrent callers can
// race past the pre-check; the storage uniqueness constraint is the backstop.
// A failed edge create does not roll back the game node.
func (s *GameService) CreateWithDeveloper(ctx context.Context, input GameInput, developerName string) error {
	exists, err := s.developers.Exists(ctx, developerName)
	if err != nil {
		return fmt.Errorf("check developer: %w", err)
	}
	if !exists {
		s.logger.Error("developer does not exist", "developer", developerName)
		return fmt.Errorf("developer %q: %w", developerName, ErrDeveloperNotFound)
	}

	exists, err = s.games.Exists(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("check game: %w", err)
	}
	if exists {
		s.logger.Error("game already exists", "game_id", input.ID)
		return fmt.Errorf("game %q: %w", input.ID, ErrAlreadyExists)
	}

	game := domain.Game{
		ID:          input.ID,
		Title:       input.Title,
		ReleaseDate: input.ReleaseDate,
		Rating:      input.Rating,
		Price:       input.Price,
		Description: input.Description,
	}
	if err := s.games.Create(ctx, game); err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	if err := s.relationships.DeveloperDeveloped(ctx, developerName, input.ID); err != nil {
		// The game node stays behind as an orphan; callers may re-drive.
		s.logger.Error("developer edge creation failed after game create",
			"game_id", input.ID, "developer", developerName, "error", err)
		return fmt.Errorf("link developer: %w", err)
	}

	s.logger.Info("game created", "title", game.Title, "developer", developerName)
	return nil
}

// ListWithDetails returns every game enriched with its price category and age
// in whole years (plain year subtraction).
func (s *GameService) ListWithDetails(ctx context.Context) ([]domain.GameDetails, error) {
	games, err := s.games.All(ctx)
	if err != nil {
		return nil, err
	}

	currentYear := s.nowFn().Year()
	details := make([]domain.GameDetails, 0, len(games))
	for _, game := range games {
		details = append(details, domain.GameDetails{
			GameRow:       game,
			PriceCategory: priceCategory(game.Price),
			AgeYears:      currentYear - game.ReleaseDate.Year(),
		})
	}
	return details, nil
}

// TopRated returns the highest rated games. The limit is clamped to [1, 50]:
// ten when not positive, fifty when above the cap.
func (s *GameService) TopRated(ctx context.Context, limit int) ([]domain.GameRow, error) {
	if limit <= 0 {
		limit = defaultTopRatedLimit
	} else if limit > maxTopRatedLimit {
		limit = maxTopRatedLimit
		s.logger.Warn("top rated limit capped", "limit", maxTopRatedLimit)
	}
	return s.games.TopRated(ctx, limit)
}

// Statistics summarizes the catalog. An empty catalog yields the reduced
// {total_games: 0} shape.
func (s *GameService) Statistics(ctx context.Context) (domain.GameStatistics, error) {
	total, err := s.games.Count(ctx)
	if err != nil {
		return domain.GameStatistics{}, err
	}
	games, err := s.games.All(ctx)
	if err != nil {
		return domain.GameStatistics{}, err
	}
	if len(games) == 0 {
		return domain.GameStatistics{}, nil
	}

	ratings := make([]float64, 0, len(games))
	prices := make([]float64, 0, len(games))
	for _, game := range games {
		ratings = append(ratings, game.Rating)
		prices = append(prices, game.Price)
	}

	return domain.GameStatistics{
		TotalGames:    total,
		AverageRating: ptr(round2(mean(ratings))),
		HighestRating: ptr(maxOf(ratings)),
		LowestRating:  ptr(minOf(ratings)),
		AveragePrice:  ptr(round2(mean(prices))),
		MostExpensive: ptr(maxOf(prices)),
		Cheapest:      ptr(minOf(prices)),
	}, nil
}

// Engagement returns per-game ownership and rating aggregates; nil when the
// game does not exist.
func (s *GameService) Engagement(ctx context.Context, gameID string) (*domain.GameEngagement, error) {
	engagement, found, err := s.games.Engagement(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &engagement, nil
}

// priceCategory buckets a price into Budget (<20), Mid-range (<40),
// Premium (<60) and AAA.
func priceCategory(price float64) string {
	switch {
	case price < 20:
		return "Budget"
	case price < 40:
		return "Mid-range"
	case price < 60:
		return "Premium"
	default:
		return "AAA"
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func maxOf(values []float64) float64 {
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func minOf(values []float64) float64 {
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ptr[T any](v T) *T {
	return &v
}
