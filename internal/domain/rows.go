package domain

import "time"

// GameRow is the projection returned by the game read queries. Field names
// match the query output aliases one to one.
type GameRow struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Rating      float64   `json:"rating"`
	ReleaseDate time.Time `json:"release_date"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
}

// GameDetails is a GameRow enriched with the derived fields computed by the
// game service.
type GameDetails struct {
	GameRow
	PriceCategory string `json:"price_category"`
	AgeYears      int    `json:"age_years"`
}

// PlayerRow is the projection returned by the player read queries.
type PlayerRow struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	JoinDate      time.Time `json:"join_date"`
	Level         int       `json:"level"`
	TotalPlaytime int       `json:"total_playtime"`
}

// DeveloperRow is the projection returned by the developer read queries.
type DeveloperRow struct {
	Name        string `json:"name"`
	FoundedYear int    `json:"founded_year"`
	Country     string `json:"country"`
	Employees   int    `json:"employees"`
}

// OwnedGameRow is one row of the owned-games join: a game the player owns,
// left-joined with the player's own rating of it when present.
type OwnedGameRow struct {
	Title        string    `json:"title"`
	GameRating   float64   `json:"game_rating"`
	Playtime     int       `json:"playtime"`
	PurchaseDate time.Time `json:"purchase_date"`
	UserRating   *float64  `json:"user_rating,omitempty"`
}

// GameEngagement aggregates per-game ownership and rating activity.
type GameEngagement struct {
	Title         string   `json:"title"`
	TotalOwners   int      `json:"total_owners"`
	TotalRatings  int      `json:"total_ratings"`
	AvgUserRating *float64 `json:"avg_user_rating,omitempty"`
}

// LabelCount is one row of the per-label node count summary.
type LabelCount struct {
	Label      string `json:"label"`
	TotalCount int    `json:"total_count"`
}
