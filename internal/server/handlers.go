package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"gamegraph/internal/domain"
	"gamegraph/internal/service"
)

// GameAPI is the game-service surface the handlers depend on.
type GameAPI interface {
	CreateWithDeveloper(ctx context.Context, input service.GameInput, developerName string) error
	ListWithDetails(ctx context.Context) ([]domain.GameDetails, error)
	TopRated(ctx context.Context, limit int) ([]domain.GameRow, error)
	Statistics(ctx context.Context) (domain.GameStatistics, error)
	Engagement(ctx context.Context, gameID string) (*domain.GameEngagement, error)
}

// PlayerAPI is the player-service surface the handlers depend on.
type PlayerAPI interface {
	Create(ctx context.Context, input service.PlayerInput) error
	Purchase(ctx context.Context, playerID, gameID string, purchaseDate time.Time) error
	Rate(ctx context.Context, playerID, gameID string, rating float64, reviewText *string) error
	AddFriend(ctx context.Context, playerID, friendID string, since time.Time) error
	Profile(ctx context.Context, playerID string) (*domain.PlayerProfile, error)
	Statistics(ctx context.Context) (domain.PlayerStatistics, error)
}

// AnalyticsAPI is the analytics-service surface the handlers depend on.
type AnalyticsAPI interface {
	DatabaseOverview(ctx context.Context) domain.DatabaseOverview
	Insights(ctx context.Context) domain.Insights
}

// APIHandlers exposes HTTP handlers for the REST API.
type APIHandlers struct {
	logger    *slog.Logger
	games     GameAPI
	players   PlayerAPI
	analytics AnalyticsAPI
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, games GameAPI, players PlayerAPI, analytics AnalyticsAPI) *APIHandlers {
	return &APIHandlers{
		logger:    logger,
		games:     games,
		players:   players,
		analytics: analytics,
	}
}

func (h *APIHandlers) handleGames(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listGames(w, r)
	case http.MethodPost:
		h.createGame(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (h *APIHandlers) listGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.games.ListWithDetails(r.Context())
	if err != nil {
		h.logger.Error("failed to list games", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list games")
		return
	}
	respondJSON(w, http.StatusOK, games)
}

func (h *APIHandlers) createGame(w http.ResponseWriter, r *http.Request) {
	var payload createGameRequest
	if err := decodeAndValidate(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if payload.ID == "" {
		payload.ID = uuid.NewString()
	}
	releaseDate, err := time.Parse(dateLayout, payload.ReleaseDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "release_date must be YYYY-MM-DD")
		return
	}

	input := service.GameInput{
		ID:          payload.ID,
		Title:       payload.Title,
		ReleaseDate: releaseDate,
		Rating:      payload.Rating,
		Price:       payload.Price,
		Description: payload.Description,
	}
	if err := h.games.CreateWithDeveloper(r.Context(), input, payload.Developer); err != nil {
		h.writeServiceError(w, err, "failed to create game")
		return
	}
	respondJSON(w, http.StatusCreated, createdResponse{ID: payload.ID})
}

func (h *APIHandlers) handleTopGames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	games, err := h.games.TopRated(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to fetch top rated games", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch top rated games")
		return
	}
	respondJSON(w, http.StatusOK, games)
}

func (h *APIHandlers) handleGameStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	stats, err := h.games.Statistics(r.Context())
	if err != nil {
		h.logger.Error("failed to compute game statistics", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute game statistics")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *APIHandlers) handleGameSubroutes(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/games/"), "/")
	parts := strings.Split(rest, "/")

	if len(parts) == 2 && parts[1] == "engagement" {
		if r.Method != http.MethodGet {
			methodNotAllowed(w, http.MethodGet)
			return
		}
		h.gameEngagement(w, r, parts[0])
		return
	}
	http.NotFound(w, r)
}

func (h *APIHandlers) gameEngagement(w http.ResponseWriter, r *http.Request, gameID string) {
	engagement, err := h.games.Engagement(r.Context(), gameID)
	if err != nil {
		h.logger.Error("failed to fetch game engagement", "error", err, "game_id", gameID)
		writeError(w, http.StatusInternalServerError, "failed to fetch game engagement")
		return
	}
	if engagement == nil {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}
	respondJSON(w, http.StatusOK, engagement)
}

func (h *APIHandlers) handlePlayers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var payload createPlayerRequest
	if err := decodeAndValidate(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if payload.ID == "" {
		payload.ID = uuid.NewString()
	}
	joinDate, err := parseDateOrZero(payload.JoinDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "join_date must be YYYY-MM-DD")
		return
	}
	if joinDate.IsZero() {
		joinDate = time.Now()
	}

	input := service.PlayerInput{
		ID:            payload.ID,
		Username:      payload.Username,
		Email:         payload.Email,
		JoinDate:      joinDate,
		Level:         payload.Level,
		TotalPlaytime: payload.TotalPlaytime,
	}
	if err := h.players.Create(r.Context(), input); err != nil {
		h.writeServiceError(w, err, "failed to create player")
		return
	}
	respondJSON(w, http.StatusCreated, createdResponse{ID: payload.ID})
}

func (h *APIHandlers) handlePlayerStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	stats, err := h.players.Statistics(r.Context())
	if err != nil {
		h.logger.Error("failed to compute player statistics", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute player statistics")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *APIHandlers) handlePlayerSubroutes(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/players/"), "/")
	parts := strings.Split(rest, "/")
	playerID := parts[0]
	if playerID == "" {
		writeError(w, http.StatusBadRequest, "player ID is required")
		return
	}

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		h.playerProfile(w, r, playerID)
	case len(parts) == 2 && parts[1] == "purchases" && r.Method == http.MethodPost:
		h.purchaseGame(w, r, playerID)
	case len(parts) == 2 && parts[1] == "ratings" && r.Method == http.MethodPost:
		h.rateGame(w, r, playerID)
	case len(parts) == 2 && parts[1] == "friends" && r.Method == http.MethodPost:
		h.addFriend(w, r, playerID)
	default:
		http.NotFound(w, r)
	}
}

func (h *APIHandlers) playerProfile(w http.ResponseWriter, r *http.Request, playerID string) {
	profile, err := h.players.Profile(r.Context(), playerID)
	if err != nil {
		h.logger.Error("failed to build player profile", "error", err, "player_id", playerID)
		writeError(w, http.StatusInternalServerError, "failed to build player profile")
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "player not found")
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

func (h *APIHandlers) purchaseGame(w http.ResponseWriter, r *http.Request, playerID string) {
	var payload purchaseRequest
	if err := decodeAndValidate(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	purchaseDate, err := parseDateOrZero(payload.PurchaseDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "purchase_date must be YYYY-MM-DD")
		return
	}

	if err := h.players.Purchase(r.Context(), playerID, payload.GameID, purchaseDate); err != nil {
		h.writeServiceError(w, err, "failed to record purchase")
		return
	}
	respondJSON(w, http.StatusCreated, statusResponse{Status: "purchased"})
}

func (h *APIHandlers) rateGame(w http.ResponseWriter, r *http.Request, playerID string) {
	var payload rateRequest
	if err := decodeAndValidate(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.players.Rate(r.Context(), playerID, payload.GameID, payload.Rating, payload.ReviewText); err != nil {
		h.writeServiceError(w, err, "failed to record rating")
		return
	}
	respondJSON(w, http.StatusCreated, statusResponse{Status: "rated"})
}

func (h *APIHandlers) addFriend(w http.ResponseWriter, r *http.Request, playerID string) {
	var payload friendRequest
	if err := decodeAndValidate(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	since, err := parseDateOrZero(payload.Since)
	if err != nil {
		writeError(w, http.StatusBadRequest, "since must be YYYY-MM-DD")
		return
	}

	if err := h.players.AddFriend(r.Context(), playerID, payload.FriendID, since); err != nil {
		h.writeServiceError(w, err, "failed to record friendship")
		return
	}
	respondJSON(w, http.StatusCreated, statusResponse{Status: "friends"})
}

func (h *APIHandlers) handleOverview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	respondJSON(w, http.StatusOK, h.analytics.DatabaseOverview(r.Context()))
}

func (h *APIHandlers) handleInsights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	respondJSON(w, http.StatusOK, h.analytics.Insights(r.Context()))
}

// writeServiceError maps domain errors to HTTP statuses: missing referenced
// entities to 404, duplicates to 409, validation failures to 400, everything
// else to 500.
func (h *APIHandlers) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrDeveloperNotFound),
		errors.Is(err, service.ErrGameNotFound),
		errors.Is(err, service.ErrPlayerNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrRatingOutOfRange):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error(fallback, "error", err)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
