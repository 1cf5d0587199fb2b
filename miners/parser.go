// Package miners scrapes miner entries out of the game's miner
// database source file.
package miners

import (
	"os"
	"regexp"
	"sort"
	"strconv"
)

// minerPattern matches one miner entry: a tier/name pair followed by
// the first rarity string appearing anywhere later in the text. The
// match is non-greedy and may cross block boundaries, so a block that
// lacks its own rarity captures the next block's value and consumes
// that block with it.
var minerPattern = regexp.MustCompile(`(?s)tier:\s*(\d+),\s*name:\s*'([^']+)'.*?rarity:\s*'([^']+)'`)

// Parser extracts MinerRecords from miner database content.
type Parser struct {
	pattern *regexp.Regexp
}

// NewParser creates a Parser with the standard database pattern.
func NewParser() *Parser {
	return &Parser{pattern: minerPattern}
}

// Parse scans content for miner entries and returns them sorted by
// tier, ascending. Records sharing a tier keep their encounter order.
// Content with no matching entries yields an empty slice, not an error.
func (p *Parser) Parse(content string) []MinerRecord {
	matches := p.pattern.FindAllStringSubmatch(content, -1)

	records := make([]MinerRecord, 0, len(matches))
	for _, m := range matches {
		tier, err := strconv.Atoi(m[1])
		if err != nil {
			// \d+ can still overflow int on absurd input
			continue
		}
		records = append(records, MinerRecord{
			Tier:   tier,
			Name:   m[2],
			Rarity: Rarity(m[3]),
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Tier < records[j].Tier
	})

	return records
}

// ParseFile reads the database file at path and parses it.
func (p *Parser) ParseFile(path string) ([]MinerRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(string(data)), nil
}
