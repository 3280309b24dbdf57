package domain

// GameStatistics summarizes the game catalog. On an empty catalog only
// TotalGames is populated; the remaining fields stay nil so the serialized
// shape reduces to {"total_games": 0}.
type GameStatistics struct {
	TotalGames    int      `json:"total_games"`
	AverageRating *float64 `json:"average_rating,omitempty"`
	HighestRating *float64 `json:"highest_rating,omitempty"`
	LowestRating  *float64 `json:"lowest_rating,omitempty"`
	AveragePrice  *float64 `json:"average_price,omitempty"`
	MostExpensive *float64 `json:"most_expensive,omitempty"`
	Cheapest      *float64 `json:"cheapest,omitempty"`
}

// PlayerStatistics summarizes the player base, with the same reduced shape
// convention on an empty catalog.
type PlayerStatistics struct {
	TotalPlayers            int      `json:"total_players"`
	AverageLevel            *float64 `json:"average_level,omitempty"`
	HighestLevel            *int     `json:"highest_level,omitempty"`
	AveragePlaytime         *float64 `json:"average_playtime,omitempty"`
	TotalPlaytimeAllPlayers *int     `json:"total_playtime_all_players,omitempty"`
}

// PlayerProfile merges a player's stored attributes with derived ownership
// aggregates and the full owned-games listing.
type PlayerProfile struct {
	PlayerRow
	GamesOwned             int            `json:"games_owned"`
	TotalPlaytimeHours     int            `json:"total_playtime_hours"`
	AveragePlaytimePerGame float64        `json:"average_playtime_per_game"`
	LevelCategory          string         `json:"player_level_category"`
	Games                  []OwnedGameRow `json:"games"`
}

// GamesOverview is the games slice of the database overview.
type GamesOverview struct {
	Total    int       `json:"total"`
	TopRated []GameRow `json:"top_rated"`
}

// PlayersOverview is the players slice of the database overview.
type PlayersOverview struct {
	Total  int         `json:"total"`
	Sample []PlayerRow `json:"sample"`
}

// DevelopersOverview is the developers slice of the database overview.
type DevelopersOverview struct {
	Total int            `json:"total"`
	All   []DeveloperRow `json:"all"`
}

// DatabaseOverview aggregates entity totals and small samples for reporting.
type DatabaseOverview struct {
	Games      GamesOverview      `json:"games"`
	Players    PlayersOverview    `json:"players"`
	Developers DevelopersOverview `json:"developers"`
}

// Insights holds the three independent heuristic labels. A heuristic with no
// underlying data reports "No data available".
type Insights struct {
	MostCommonPriceRange string `json:"most_common_price_range"`
	PlayerEngagement     string `json:"player_engagement"`
	GameQuality          string `json:"game_quality"`
}
