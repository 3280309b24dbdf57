package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gamegraph/internal/domain"
)

// PlayerInput is the inbound payload for creating a player.
type PlayerInput struct {
	ID            string
	Username      string
	Email         string
	JoinDate      time.Time
	Level         int
	TotalPlaytime int
}

// PlayerService layers validation and profile aggregation over the player
// repositories.
type PlayerService struct {
	players       PlayerStore
	games         GameStore
	relationships RelationshipStore
	logger        *slog.Logger
	nowFn         func() time.Time
}

// NewPlayerService constructs a PlayerService.
func NewPlayerService(players PlayerStore, games GameStore, relationships RelationshipStore, logger *slog.Logger) *PlayerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlayerService{
		players:       players,
		games:         games,
		relationships: relationships,
		logger:        logger,
		nowFn:         time.Now,
	}
}

// WithClock overrides the time provider (used primarily in tests).
func (s *PlayerService) WithClock(nowFn func() time.Time) {
	if nowFn != nil {
		s.nowFn = nowFn
	}
}

// Create adds a new player. The id must be free and the email must contain
// an @ character; that presence check is the only email validation performed.
func (s *PlayerService) Create(ctx context.Context, input PlayerInput) error {
	exists, err := s.players.Exists(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("check player: %w", err)
	}
	if exists {
		s.logger.Error("player already exists", "player_id", input.ID)
		return fmt.Errorf("player %q: %w", input.ID, ErrAlreadyExists)
	}

	if !strings.Contains(input.Email, "@") {
		s.logger.Error("invalid email format", "email", input.Email)
		return ErrInvalidEmail
	}

	player := domain.Player{
		ID:            input.ID,
		Username:      input.Username,
		Email:         input.Email,
		JoinDate:      input.JoinDate,
		Level:         input.Level,
		TotalPlaytime: input.TotalPlaytime,
	}
	if err := s.players.Create(ctx, player); err != nil {
		return fmt.Errorf("create player: %w", err)
	}

	s.logger.Info("player created", "username", player.Username)
	return nil
}

// Purchase records a game purchase as a new OWNS edge with zero playtime.
// A zero purchase date defaults to today. There is no check for an existing
// ownership edge: buying the same game twice adds a parallel edge.
func (s *PlayerService) Purchase(ctx context.Context, playerID, gameID string, purchaseDate time.Time) error {
	if err := s.requirePlayerAndGame(ctx, playerID, gameID); err != nil {
		return err
	}

	if purchaseDate.IsZero() {
		purchaseDate = s.nowFn()
	}
	ownership := domain.Ownership{
		PurchaseDate: purchaseDate,
		Playtime:     0,
	}
	if err := s.relationships.PlayerOwns(ctx, playerID, gameID, ownership); err != nil {
		return fmt.Errorf("record purchase: %w", err)
	}

	s.logger.Info("game purchased", "player_id", playerID, "game_id", gameID)
	return nil
}

// Rate records a rating as a new RATED edge. The rating must lie in [1, 10].
// Like Purchase, repeated calls append parallel edges rather than updating.
func (s *PlayerService) Rate(ctx context.Context, playerID, gameID string, rating float64, reviewText *string) error {
	if rating < 1 || rating > 10 {
		s.logger.Error("rating out of range", "rating", rating)
		return ErrRatingOutOfRange
	}
	if err := s.requirePlayerAndGame(ctx, playerID, gameID); err != nil {
		return err
	}

	playerRating := domain.Rating{
		Rating:     rating,
		ReviewDate: s.nowFn(),
		ReviewText: reviewText,
	}
	if err := s.relationships.PlayerRated(ctx, playerID, gameID, playerRating); err != nil {
		return fmt.Errorf("record rating: %w", err)
	}

	s.logger.Info("game rated", "player_id", playerID, "game_id", gameID, "rating", rating)
	return nil
}

// AddFriend links two players with a FRIENDS_WITH edge, directed from the
// first to the second. A zero since date defaults to today.
func (s *PlayerService) AddFriend(ctx context.Context, playerID, friendID string, since time.Time) error {
	for _, id := range []string{playerID, friendID} {
		exists, err := s.players.Exists(ctx, id)
		if err != nil {
			return fmt.Errorf("check player: %w", err)
		}
		if !exists {
			s.logger.Error("player does not exist", "player_id", id)
			return fmt.Errorf("player %q: %w", id, ErrPlayerNotFound)
		}
	}

	if since.IsZero() {
		since = s.nowFn()
	}
	if err := s.relationships.PlayersFriends(ctx, playerID, friendID, domain.Friendship{Since: since}); err != nil {
		return fmt.Errorf("record friendship: %w", err)
	}

	s.logger.Info("friendship recorded", "player_id", playerID, "friend_id", friendID)
	return nil
}

// Profile returns the player's stored attributes merged with ownership
// aggregates and the owned-games listing; nil when the player does not exist.
func (s *PlayerService) Profile(ctx context.Context, playerID string) (*domain.PlayerProfile, error) {
	player, found, err := s.players.ByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if !found {
		s.logger.Warn("player not found", "player_id", playerID)
		return nil, nil
	}

	games, err := s.players.OwnedGames(ctx, playerID)
	if err != nil {
		return nil, err
	}

	totalPlaytime := 0
	for _, game := range games {
		totalPlaytime += game.Playtime
	}
	averagePlaytime := 0.0
	if len(games) > 0 {
		averagePlaytime = round1(float64(totalPlaytime) / float64(len(games)))
	}

	profile := &domain.PlayerProfile{
		PlayerRow:              player,
		GamesOwned:             len(games),
		TotalPlaytimeHours:     totalPlaytime,
		AveragePlaytimePerGame: averagePlaytime,
		LevelCategory:          levelCategory(player.Level),
		Games:                  games,
	}

	s.logger.Info("profile generated", "username", player.Username)
	return profile, nil
}

// Statistics summarizes the player base. An empty base yields the reduced
// {total_players: 0} shape.
func (s *PlayerService) Statistics(ctx context.Context) (domain.PlayerStatistics, error) {
	total, err := s.players.Count(ctx)
	if err != nil {
		return domain.PlayerStatistics{}, err
	}
	players, err := s.players.All(ctx)
	if err != nil {
		return domain.PlayerStatistics{}, err
	}
	if len(players) == 0 {
		return domain.PlayerStatistics{}, nil
	}

	highestLevel := 0
	levelSum := 0
	playtimeSum := 0
	for _, player := range players {
		levelSum += player.Level
		playtimeSum += player.TotalPlaytime
		if player.Level > highestLevel {
			highestLevel = player.Level
		}
	}

	n := float64(len(players))
	return domain.PlayerStatistics{
		TotalPlayers:            total,
		AverageLevel:            ptr(round1(float64(levelSum) / n)),
		HighestLevel:            ptr(highestLevel),
		AveragePlaytime:         ptr(round1(float64(playtimeSum) / n)),
		TotalPlaytimeAllPlayers: ptr(playtimeSum),
	}, nil
}

func (s *PlayerService) requirePlayerAndGame(ctx context.Context, playerID, gameID string) error {
	exists, err := s.players.Exists(ctx, playerID)
	if err != nil {
		return fmt.Errorf("check player: %w", err)
	}
	if !exists {
		s.logger.Error("player does not exist", "player_id", playerID)
		return fmt.Errorf("player %q: %w", playerID, ErrPlayerNotFound)
	}

	exists, err = s.games.Exists(ctx, gameID)
	if err != nil {
		return fmt.Errorf("check game: %w", err)
	}
	if !exists {
		s.logger.Error("game does not exist", "game_id", gameID)
		return fmt.Errorf("game %q: %w", gameID, ErrGameNotFound)
	}
	return nil
}

// levelCategory buckets a level into Beginner (<10), Intermediate (<25),
// Advanced (<50) and Expert.
func levelCategory(level int) string {
	switch {
	case level < 10:
		return "Beginner"
	case level < 25:
		return "Intermediate"
	case level < 50:
		return "Advanced"
	default:
		return "Expert"
	}
}
