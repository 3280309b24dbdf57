// Package queries is the static Cypher catalog for the gaming graph. Every
// statement is pure data: the same parameters always produce the same query
// text, and the output aliases here define the row shapes the repositories
// map into typed records.
package queries

// ClearDatabase removes every node and edge. Demo and test setup only.
const ClearDatabase = `MATCH (n) DETACH DELETE n`

// Constraints returns the uniqueness constraints for every keyed label.
// All statements are safe to run repeatedly.
func Constraints() []string {
	return []string{
		`CREATE CONSTRAINT game_id_unique IF NOT EXISTS FOR (g:Game) REQUIRE g.id IS UNIQUE`,
		`CREATE CONSTRAINT player_id_unique IF NOT EXISTS FOR (p:Player) REQUIRE p.id IS UNIQUE`,
		`CREATE CONSTRAINT developer_name_unique IF NOT EXISTS FOR (d:Developer) REQUIRE d.name IS UNIQUE`,
		`CREATE CONSTRAINT genre_name_unique IF NOT EXISTS FOR (g:Genre) REQUIRE g.name IS UNIQUE`,
		`CREATE CONSTRAINT platform_name_unique IF NOT EXISTS FOR (p:Platform) REQUIRE p.name IS UNIQUE`,
	}
}

// Indexes returns the secondary indexes used by the read paths.
func Indexes() []string {
	return []string{
		`CREATE INDEX game_title_index IF NOT EXISTS FOR (g:Game) ON (g.title)`,
		`CREATE INDEX player_username_index IF NOT EXISTS FOR (p:Player) ON (p.username)`,
		`CREATE INDEX game_rating_index IF NOT EXISTS FOR (g:Game) ON (g.rating)`,
	}
}

const CreateGame = `
CREATE (g:Game {
    id: $id,
    title: $title,
    release_date: date($release_date),
    rating: $rating,
    price: $price,
    description: $description
})
RETURN g
`

const AllGames = `
MATCH (g:Game)
RETURN g.id as id, g.title as title, g.rating as rating,
       g.release_date as release_date, g.price as price,
       g.description as description
ORDER BY g.title
`

const GameByID = `
MATCH (g:Game {id: $game_id})
RETURN g.id as id, g.title as title, g.rating as rating,
       g.release_date as release_date, g.price as price,
       g.description as description
`

const TopRatedGames = `
MATCH (g:Game)
RETURN g.id as id, g.title as title, g.rating as rating,
       g.release_date as release_date, g.price as price
ORDER BY g.rating DESC
LIMIT $limit
`

const CreatePlayer = `
CREATE (p:Player {
    id: $id,
    username: $username,
    email: $email,
    join_date: date($join_date),
    level: $level,
    total_playtime: $total_playtime
})
RETURN p
`

const AllPlayers = `
MATCH (p:Player)
RETURN p.id as id, p.username as username, p.email as email,
       p.join_date as join_date, p.level as level,
       p.total_playtime as total_playtime
ORDER BY p.username
`

const PlayerByID = `
MATCH (p:Player {id: $player_id})
RETURN p.id as id, p.username as username, p.email as email,
       p.join_date as join_date, p.level as level,
       p.total_playtime as total_playtime
`

const CreateDeveloper = `
CREATE (d:Developer {
    name: $name,
    founded_year: $founded_year,
    country: $country,
    employees: $employees
})
RETURN d
`

const AllDevelopers = `
MATCH (d:Developer)
RETURN d.name as name, d.founded_year as founded_year,
       d.country as country, d.employees as employees
ORDER BY d.name
`

const DeveloperByName = `
MATCH (d:Developer {name: $name})
RETURN d.name as name, d.founded_year as founded_year,
       d.country as country, d.employees as employees
`

const CreateGenre = `
CREATE (g:Genre {name: $name, description: $description})
RETURN g
`

const AllGenres = `
MATCH (g:Genre)
RETURN g.name as name, g.description as description
ORDER BY g.name
`

const CreatePlatform = `
CREATE (p:Platform {name: $name, manufacturer: $manufacturer})
RETURN p
`

const AllPlatforms = `
MATCH (p:Platform)
RETURN p.name as name, p.manufacturer as manufacturer
ORDER BY p.name
`

// Relationship creation statements match both endpoints by key first; when a
// match yields zero nodes nothing is created, which the repositories detect
// through the result counters.

const DeveloperDevelopedGame = `
MATCH (d:Developer {name: $developer_name})
MATCH (g:Game {id: $game_id})
CREATE (d)-[:DEVELOPED]->(g)
RETURN d, g
`

const PlayerOwnsGame = `
MATCH (p:Player {id: $player_id})
MATCH (g:Game {id: $game_id})
CREATE (p)-[:OWNS {
    purchase_date: date($purchase_date),
    playtime: $playtime
}]->(g)
RETURN p, g
`

const PlayerRatedGame = `
MATCH (p:Player {id: $player_id})
MATCH (g:Game {id: $game_id})
CREATE (p)-[:RATED {
    rating: $rating,
    review_date: date($review_date),
    review_text: $review_text
}]->(g)
RETURN p, g
`

const PlayersFriends = `
MATCH (p1:Player {id: $player1_id})
MATCH (p2:Player {id: $player2_id})
CREATE (p1)-[:FRIENDS_WITH {since: date($since)}]->(p2)
RETURN p1, p2
`

// PlayerOwnedGames lists a player's library, left-joined with the player's
// own rating of each game where one exists.
const PlayerOwnedGames = `
MATCH (p:Player {id: $player_id})-[owns:OWNS]->(g:Game)
OPTIONAL MATCH (p)-[rated:RATED]->(g)
RETURN g.title as title, g.rating as game_rating,
       owns.playtime as playtime, owns.purchase_date as purchase_date,
       rated.rating as user_rating
ORDER BY owns.purchase_date DESC
`

const GameEngagement = `
MATCH (g:Game {id: $game_id})
OPTIONAL MATCH (g)<-[:OWNS]-(owner:Player)
OPTIONAL MATCH (g)<-[rated:RATED]-(rater:Player)
RETURN g.title as title,
       count(DISTINCT owner) as total_owners,
       avg(rated.rating) as avg_user_rating,
       count(DISTINCT rater) as total_ratings
`

const LabelCounts = `
MATCH (n)
WITH labels(n) as nodeLabels, count(*) as count
UNWIND nodeLabels as label
RETURN label, sum(count) as total_count
ORDER BY total_count DESC
`
