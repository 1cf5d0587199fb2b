package miners

// Rarity is the categorical label a miner carries in the database.
// It selects the color palette during icon rendering.
type Rarity string

// Rarities known to the game data. Unrecognized values are still
// parsed verbatim; rendering falls back to Common for them.
const (
	Common    Rarity = "Common"
	Rare      Rarity = "Rare"
	Epic      Rarity = "Epic"
	Legendary Rarity = "Legendary"
	Mythic    Rarity = "Mythic"
	Exotic    Rarity = "Exotic"
)

// MinerRecord is one entry scraped from the miner database.
// Records are immutable after parsing and ordered by tier.
type MinerRecord struct {
	Tier   int
	Name   string
	Rarity Rarity
}
