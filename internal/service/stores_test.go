package service

import (
	"context"
	"sort"

	"gamegraph/internal/domain"
)

type stubGameStore struct {
	games       []domain.GameRow
	engagements map[string]domain.GameEngagement
	created     []domain.Game
	createErr   error
	readErr     error
}

func (s *stubGameStore) Create(ctx context.Context, game domain.Game) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, game)
	s.games = append(s.games, domain.GameRow{
		ID:          game.ID,
		Title:       game.Title,
		Rating:      game.Rating,
		ReleaseDate: game.ReleaseDate,
		Price:       game.Price,
		Description: game.Description,
	})
	return nil
}

func (s *stubGameStore) All(ctx context.Context) ([]domain.GameRow, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.games, nil
}

func (s *stubGameStore) ByID(ctx context.Context, gameID string) (domain.GameRow, bool, error) {
	if s.readErr != nil {
		return domain.GameRow{}, false, s.readErr
	}
	for _, game := range s.games {
		if game.ID == gameID {
			return game, true, nil
		}
	}
	return domain.GameRow{}, false, nil
}

func (s *stubGameStore) TopRated(ctx context.Context, limit int) ([]domain.GameRow, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	sorted := append([]domain.GameRow(nil), s.games...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (s *stubGameStore) Engagement(ctx context.Context, gameID string) (domain.GameEngagement, bool, error) {
	if s.readErr != nil {
		return domain.GameEngagement{}, false, s.readErr
	}
	engagement, ok := s.engagements[gameID]
	return engagement, ok, nil
}

func (s *stubGameStore) Exists(ctx context.Context, gameID string) (bool, error) {
	_, found, err := s.ByID(ctx, gameID)
	return found, err
}

func (s *stubGameStore) Count(ctx context.Context) (int, error) {
	if s.readErr != nil {
		return 0, s.readErr
	}
	return len(s.games), nil
}

type stubPlayerStore struct {
	players []domain.PlayerRow
	owned   map[string][]domain.OwnedGameRow
	readErr error
}

func (s *stubPlayerStore) Create(ctx context.Context, player domain.Player) error {
	s.players = append(s.players, domain.PlayerRow{
		ID:            player.ID,
		Username:      player.Username,
		Email:         player.Email,
		JoinDate:      player.JoinDate,
		Level:         player.Level,
		TotalPlaytime: player.TotalPlaytime,
	})
	return nil
}

func (s *stubPlayerStore) All(ctx context.Context) ([]domain.PlayerRow, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.players, nil
}

func (s *stubPlayerStore) ByID(ctx context.Context, playerID string) (domain.PlayerRow, bool, error) {
	if s.readErr != nil {
		return domain.PlayerRow{}, false, s.readErr
	}
	for _, player := range s.players {
		if player.ID == playerID {
			return player, true, nil
		}
	}
	return domain.PlayerRow{}, false, nil
}

func (s *stubPlayerStore) OwnedGames(ctx context.Context, playerID string) ([]domain.OwnedGameRow, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.owned[playerID], nil
}

func (s *stubPlayerStore) Exists(ctx context.Context, playerID string) (bool, error) {
	_, found, err := s.ByID(ctx, playerID)
	return found, err
}

func (s *stubPlayerStore) Count(ctx context.Context) (int, error) {
	if s.readErr != nil {
		return 0, s.readErr
	}
	return len(s.players), nil
}

type stubDeveloperStore struct {
	developers []domain.DeveloperRow
	readErr    error
}

func (s *stubDeveloperStore) Create(ctx context.Context, dev domain.Developer) error {
	s.developers = append(s.developers, domain.DeveloperRow{
		Name:        dev.Name,
		FoundedYear: dev.FoundedYear,
		Country:     dev.Country,
		Employees:   dev.Employees,
	})
	return nil
}

func (s *stubDeveloperStore) All(ctx context.Context) ([]domain.DeveloperRow, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.developers, nil
}

func (s *stubDeveloperStore) Exists(ctx context.Context, name string) (bool, error) {
	if s.readErr != nil {
		return false, s.readErr
	}
	for _, dev := range s.developers {
		if dev.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubDeveloperStore) Count(ctx context.Context) (int, error) {
	if s.readErr != nil {
		return 0, s.readErr
	}
	return len(s.developers), nil
}

type recordedEdge struct {
	kind      string
	from      string
	to        string
	ownership domain.Ownership
	rating    domain.Rating
	since     domain.Friendship
}

type stubRelationshipStore struct {
	edges []recordedEdge
	err   error
}

func (s *stubRelationshipStore) DeveloperDeveloped(ctx context.Context, developerName, gameID string) error {
	if s.err != nil {
		return s.err
	}
	s.edges = append(s.edges, recordedEdge{kind: "DEVELOPED", from: developerName, to: gameID})
	return nil
}

func (s *stubRelationshipStore) PlayerOwns(ctx context.Context, playerID, gameID string, ownership domain.Ownership) error {
	if s.err != nil {
		return s.err
	}
	s.edges = append(s.edges, recordedEdge{kind: "OWNS", from: playerID, to: gameID, ownership: ownership})
	return nil
}

func (s *stubRelationshipStore) PlayerRated(ctx context.Context, playerID, gameID string, rating domain.Rating) error {
	if s.err != nil {
		return s.err
	}
	s.edges = append(s.edges, recordedEdge{kind: "RATED", from: playerID, to: gameID, rating: rating})
	return nil
}

func (s *stubRelationshipStore) PlayersFriends(ctx context.Context, player1ID, player2ID string, friendship domain.Friendship) error {
	if s.err != nil {
		return s.err
	}
	s.edges = append(s.edges, recordedEdge{kind: "FRIENDS_WITH", from: player1ID, to: player2ID, since: friendship})
	return nil
}
