package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamegraph/internal/config"
	"gamegraph/internal/domain"
	"gamegraph/internal/graph"
	"gamegraph/internal/logging"
	"gamegraph/internal/repository"
	"gamegraph/internal/service"
)

type seedGame struct {
	input     service.GameInput
	developer string
}

type seedReview struct {
	playerID string
	gameID   string
	rating   float64
	review   string
}

func main() {
	var (
		clear      = flag.Bool("clear", false, "Remove all existing nodes and relationships before seeding")
		schemaOnly = flag.Bool("schema-only", false, "Apply constraints and indexes, then exit without seeding data")
		demo       = flag.Bool("demo", true, "Print a demonstration report after seeding")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging).With("component", "seed")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conn := graph.NewConnection(graph.Options{
		URI:            cfg.Neo4j.URI,
		Database:       cfg.Neo4j.Database,
		Username:       cfg.Neo4j.Username,
		Password:       cfg.Neo4j.Password,
		MaxConnections: cfg.Neo4j.MaxConnections,
	}, logger)

	if err := conn.Connect(ctx); err != nil {
		logger.Error("failed to connect to graph database", "error", err, "uri", cfg.Neo4j.URI)
		os.Exit(1)
	}
	defer func() {
		if err := conn.Close(context.Background()); err != nil {
			logger.Warn("closing graph connection failed", "error", err)
		}
	}()

	games := repository.NewGameRepository(conn, logger)
	players := repository.NewPlayerRepository(conn, logger)
	developers := repository.NewDeveloperRepository(conn, logger)
	relationships := repository.NewRelationshipRepository(conn, logger)
	schema := repository.NewSchemaRepository(conn, logger)
	genres := repository.NewGenreRepository(conn, logger)
	platforms := repository.NewPlatformRepository(conn, logger)

	if *clear {
		logger.Info("clearing existing data")
		if err := schema.ClearAll(ctx); err != nil {
			logger.Error("failed to clear database", "error", err)
			os.Exit(1)
		}
	}

	if err := schema.EnsureConstraints(ctx); err != nil {
		logger.Error("failed to apply constraints", "error", err)
		os.Exit(1)
	}
	if err := schema.EnsureIndexes(ctx); err != nil {
		logger.Error("failed to apply indexes", "error", err)
		os.Exit(1)
	}
	logger.Info("database structure ready")

	if *schemaOnly {
		return
	}

	gameService := service.NewGameService(games, developers, relationships, logger)
	playerService := service.NewPlayerService(players, games, relationships, logger)
	analyticsService := service.NewAnalyticsService(games, players, developers, logger)

	if err := seedCatalog(ctx, genres, platforms); err != nil {
		logger.Error("catalog seeding failed", "error", err)
		os.Exit(1)
	}
	if err := seedSampleData(ctx, logger, developers, gameService, playerService); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	logger.Info("sample data created")

	if *demo {
		printReport(ctx, logger, gameService, playerService, analyticsService, schema)
	}
}

func seedSampleData(
	ctx context.Context,
	logger *slog.Logger,
	developers *repository.DeveloperRepository,
	gameService *service.GameService,
	playerService *service.PlayerService,
) error {
	for _, dev := range sampleDevelopers() {
		created, err := ensureDeveloper(ctx, developers, dev)
		if err != nil {
			return fmt.Errorf("create developer %q: %w", dev.Name, err)
		}
		if created {
			logger.Info("created developer", "name", dev.Name)
		} else {
			logger.Info("developer already present", "name", dev.Name)
		}
	}

	for _, entry := range sampleGames() {
		err := gameService.CreateWithDeveloper(ctx, entry.input, entry.developer)
		if err != nil && !errors.Is(err, service.ErrAlreadyExists) {
			return fmt.Errorf("create game %q: %w", entry.input.ID, err)
		}
		logger.Info("created game", "title", entry.input.Title)
	}

	for _, input := range samplePlayers() {
		err := playerService.Create(ctx, input)
		if err != nil && !errors.Is(err, service.ErrAlreadyExists) {
			return fmt.Errorf("create player %q: %w", input.ID, err)
		}
		logger.Info("created player", "username", input.Username)
	}

	for _, entry := range sampleReviews() {
		if err := playerService.Purchase(ctx, entry.playerID, entry.gameID, time.Time{}); err != nil {
			return fmt.Errorf("purchase %s/%s: %w", entry.playerID, entry.gameID, err)
		}
		review := entry.review
		if err := playerService.Rate(ctx, entry.playerID, entry.gameID, entry.rating, &review); err != nil {
			return fmt.Errorf("rate %s/%s: %w", entry.playerID, entry.gameID, err)
		}
	}

	friendships := [][2]string{
		{"player001", "player002"},
		{"player002", "player004"},
		{"player001", "player003"},
	}
	for _, pair := range friendships {
		if err := playerService.AddFriend(ctx, pair[0], pair[1], time.Time{}); err != nil {
			return fmt.Errorf("friendship %s/%s: %w", pair[0], pair[1], err)
		}
	}

	return nil
}

// ensureDeveloper creates the developer unless a node with that name already
// exists. Reports whether a node was created.
func ensureDeveloper(ctx context.Context, developers *repository.DeveloperRepository, dev domain.Developer) (bool, error) {
	exists, err := developers.Exists(ctx, dev.Name)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := developers.Create(ctx, dev); err != nil {
		return false, err
	}
	return true, nil
}

func seedCatalog(ctx context.Context, genres *repository.GenreRepository, platforms *repository.PlatformRepository) error {
	existingGenres, err := genres.All(ctx)
	if err != nil {
		return fmt.Errorf("list genres: %w", err)
	}
	haveGenre := make(map[string]bool, len(existingGenres))
	for _, g := range existingGenres {
		haveGenre[g.Name] = true
	}
	for _, genre := range []domain.Genre{
		{Name: "RPG", Description: "Role-playing games"},
		{Name: "Action", Description: "Action and adventure games"},
		{Name: "Sandbox", Description: "Open-ended building and exploration"},
		{Name: "Puzzle", Description: "Logic and puzzle games"},
	} {
		if haveGenre[genre.Name] {
			continue
		}
		if err := genres.Create(ctx, genre); err != nil {
			return fmt.Errorf("create genre %q: %w", genre.Name, err)
		}
	}

	existingPlatforms, err := platforms.All(ctx)
	if err != nil {
		return fmt.Errorf("list platforms: %w", err)
	}
	havePlatform := make(map[string]bool, len(existingPlatforms))
	for _, p := range existingPlatforms {
		havePlatform[p.Name] = true
	}
	for _, platform := range []domain.Platform{
		{Name: "PC", Manufacturer: "Various"},
		{Name: "PlayStation 5", Manufacturer: "Sony"},
		{Name: "Xbox Series X", Manufacturer: "Microsoft"},
		{Name: "Nintendo Switch", Manufacturer: "Nintendo"},
	} {
		if havePlatform[platform.Name] {
			continue
		}
		if err := platforms.Create(ctx, platform); err != nil {
			return fmt.Errorf("create platform %q: %w", platform.Name, err)
		}
	}
	return nil
}

func sampleDevelopers() []domain.Developer {
	return []domain.Developer{
		{Name: "CD Projekt RED", FoundedYear: 2002, Country: "Poland", Employees: 1100},
		{Name: "Rockstar Games", FoundedYear: 1998, Country: "USA", Employees: 2000},
		{Name: "Mojang Studios", FoundedYear: 2009, Country: "Sweden", Employees: 600},
		{Name: "Valve Corporation", FoundedYear: 1996, Country: "USA", Employees: 360},
		{Name: "Nintendo EPD", FoundedYear: 2015, Country: "Japan", Employees: 800},
	}
}

func sampleGames() []seedGame {
	return []seedGame{
		{
			input: service.GameInput{
				ID:          "witcher3",
				Title:       "The Witcher 3: Wild Hunt",
				ReleaseDate: time.Date(2015, 5, 19, 0, 0, 0, 0, time.UTC),
				Rating:      9.3,
				Price:       39.99,
				Description: "Epic open world RPG adventure",
			},
			developer: "CD Projekt RED",
		},
		{
			input: service.GameInput{
				ID:          "cyberpunk2077",
				Title:       "Cyberpunk 2077",
				ReleaseDate: time.Date(2020, 12, 10, 0, 0, 0, 0, time.UTC),
				Rating:      7.8,
				Price:       59.99,
				Description: "Futuristic open world RPG",
			},
			developer: "CD Projekt RED",
		},
		{
			input: service.GameInput{
				ID:          "gta5",
				Title:       "Grand Theft Auto V",
				ReleaseDate: time.Date(2013, 9, 17, 0, 0, 0, 0, time.UTC),
				Rating:      8.7,
				Price:       29.99,
				Description: "Open world action adventure",
			},
			developer: "Rockstar Games",
		},
		{
			input: service.GameInput{
				ID:          "rdr2",
				Title:       "Red Dead Redemption 2",
				ReleaseDate: time.Date(2018, 10, 26, 0, 0, 0, 0, time.UTC),
				Rating:      9.1,
				Price:       49.99,
				Description: "Western action adventure",
			},
			developer: "Rockstar Games",
		},
		{
			input: service.GameInput{
				ID:          "minecraft",
				Title:       "Minecraft",
				ReleaseDate: time.Date(2011, 11, 18, 0, 0, 0, 0, time.UTC),
				Rating:      9.0,
				Price:       26.95,
				Description: "Sandbox building game",
			},
			developer: "Mojang Studios",
		},
		{
			input: service.GameInput{
				ID:          "portal2",
				Title:       "Portal 2",
				ReleaseDate: time.Date(2011, 4, 19, 0, 0, 0, 0, time.UTC),
				Rating:      9.5,
				Price:       19.99,
				Description: "Puzzle platform game",
			},
			developer: "Valve Corporation",
		},
	}
}

func samplePlayers() []service.PlayerInput {
	return []service.PlayerInput{
		{
			ID:            "player001",
			Username:      "GamerPro123",
			Email:         "gamerpro@example.com",
			JoinDate:      time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
			Level:         45,
			TotalPlaytime: 3500,
		},
		{
			ID:            "player002",
			Username:      "RPGLover",
			Email:         "rpglover@example.com",
			JoinDate:      time.Date(2019, 6, 10, 0, 0, 0, 0, time.UTC),
			Level:         62,
			TotalPlaytime: 5200,
		},
		{
			ID:            "player003",
			Username:      "CasualGamer",
			Email:         "casual@example.com",
			JoinDate:      time.Date(2021, 3, 20, 0, 0, 0, 0, time.UTC),
			Level:         18,
			TotalPlaytime: 850,
		},
		{
			ID:            "player004",
			Username:      "CompetitivePlayer",
			Email:         "competitive@example.com",
			JoinDate:      time.Date(2018, 8, 5, 0, 0, 0, 0, time.UTC),
			Level:         78,
			TotalPlaytime: 7800,
		},
	}
}

func sampleReviews() []seedReview {
	return []seedReview{
		{"player001", "witcher3", 9.5, "Amazing storytelling and world!"},
		{"player001", "gta5", 8.0, "Great gameplay but story could be better"},
		{"player001", "minecraft", 8.5, "Endless creativity!"},

		{"player002", "witcher3", 10.0, "Best RPG ever made!"},
		{"player002", "cyberpunk2077", 7.0, "Good game after patches"},
		{"player002", "portal2", 9.8, "Perfect puzzle design"},

		{"player003", "minecraft", 9.0, "Relaxing and fun"},
		{"player003", "portal2", 9.0, "Love the humor"},

		{"player004", "gta5", 8.5, "Great for competitive play"},
		{"player004", "rdr2", 9.2, "Incredible attention to detail"},
		{"player004", "witcher3", 9.0, "Epic adventure"},
	}
}

func printReport(
	ctx context.Context,
	logger *slog.Logger,
	gameService *service.GameService,
	playerService *service.PlayerService,
	analyticsService *service.AnalyticsService,
	schema *repository.SchemaRepository,
) {
	counts, err := schema.LabelCounts(ctx)
	if err != nil {
		logger.Error("report: failed to count nodes by label", "error", err)
	} else {
		for _, c := range counts {
			logger.Info("node count", "label", c.Label, "total", c.TotalCount)
		}
	}

	games, err := gameService.ListWithDetails(ctx)
	if err != nil {
		logger.Error("report: failed to list games", "error", err)
	} else {
		logger.Info("game catalog", "count", len(games))
		for _, game := range games {
			logger.Info("game",
				"title", game.Title,
				"rating", game.Rating,
				"price", game.Price,
				"price_category", game.PriceCategory,
				"age_years", game.AgeYears,
			)
		}
	}

	top, err := gameService.TopRated(ctx, 3)
	if err != nil {
		logger.Error("report: failed to fetch top rated games", "error", err)
	} else {
		for i, game := range top {
			logger.Info("top rated", "rank", i+1, "title", game.Title, "rating", game.Rating)
		}
	}

	gameStats, err := gameService.Statistics(ctx)
	if err != nil {
		logger.Error("report: failed to compute game statistics", "error", err)
	} else {
		logger.Info("game statistics",
			"total_games", gameStats.TotalGames,
			"average_rating", deref(gameStats.AverageRating),
			"cheapest", deref(gameStats.Cheapest),
			"most_expensive", deref(gameStats.MostExpensive),
			"average_price", deref(gameStats.AveragePrice),
		)
	}

	playerStats, err := playerService.Statistics(ctx)
	if err != nil {
		logger.Error("report: failed to compute player statistics", "error", err)
	} else {
		logger.Info("player statistics",
			"total_players", playerStats.TotalPlayers,
			"average_level", deref(playerStats.AverageLevel),
			"average_playtime", deref(playerStats.AveragePlaytime),
			"total_playtime_all_players", derefI(playerStats.TotalPlaytimeAllPlayers),
		)
	}

	for _, playerID := range []string{"player002", "player004"} {
		profile, err := playerService.Profile(ctx, playerID)
		if err != nil || profile == nil {
			logger.Error("report: failed to build profile", "player_id", playerID, "error", err)
			continue
		}
		logger.Info("player profile",
			"username", profile.Username,
			"level", profile.Level,
			"level_category", profile.LevelCategory,
			"games_owned", profile.GamesOwned,
			"total_playtime_hours", profile.TotalPlaytimeHours,
			"average_playtime_per_game", profile.AveragePlaytimePerGame,
		)
	}

	overview := analyticsService.DatabaseOverview(ctx)
	logger.Info("database overview",
		"games", overview.Games.Total,
		"players", overview.Players.Total,
		"developers", overview.Developers.Total,
	)

	insights := analyticsService.Insights(ctx)
	logger.Info("insights",
		"most_common_price_range", insights.MostCommonPriceRange,
		"player_engagement", insights.PlayerEngagement,
		"game_quality", insights.GameQuality,
	)
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefI(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
