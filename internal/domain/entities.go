package domain

import "time"

// Game is the canonical game node. ID is the unique key.
type Game struct {
	ID          string
	Title       string
	ReleaseDate time.Time
	Rating      float64
	Price       float64
	Description string
}

// Player is the canonical player node. ID is the unique key.
type Player struct {
	ID            string
	Username      string
	Email         string
	JoinDate      time.Time
	Level         int
	TotalPlaytime int
}

// Developer is keyed by its name; there is no surrogate id.
type Developer struct {
	Name        string
	FoundedYear int
	Country     string
	Employees   int
}

// Genre is a schema-level node; no service operation touches it yet.
type Genre struct {
	Name        string
	Description string
}

// Platform is a schema-level node; no service operation touches it yet.
type Platform struct {
	Name         string
	Manufacturer string
}

// Ownership carries the properties of an OWNS edge from a player to a game.
type Ownership struct {
	PurchaseDate time.Time
	Playtime     int
}

// Rating carries the properties of a RATED edge from a player to a game.
// ReviewText is optional and stored as a null property when absent.
type Rating struct {
	Rating     float64
	ReviewDate time.Time
	ReviewText *string
}

// Friendship carries the properties of a FRIENDS_WITH edge between players.
type Friendship struct {
	Since time.Time
}
