// Package icon renders the per-tier miner sprites and writes the
// generated asset batch.
package icon

import (
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/kacebover/miner-icons/miners"
)

// ColorPair holds the two palette colors a rarity contributes to a
// sprite: the helmet base and the brim/pickaxe accent.
type ColorPair struct {
	Base   color.NRGBA
	Accent color.NRGBA
}

// Palette maps rarity names to their color pair.
type Palette map[miners.Rarity]ColorPair

// DefaultPalette returns the palette shipped with the game data.
func DefaultPalette() Palette {
	return Palette{
		miners.Common:    {Base: mustHex("#b0b0b0"), Accent: mustHex("#7a7a7a")},
		miners.Rare:      {Base: mustHex("#4aa3df"), Accent: mustHex("#2e86de")},
		miners.Epic:      {Base: mustHex("#b084f5"), Accent: mustHex("#8e44ad")},
		miners.Legendary: {Base: mustHex("#f7d36a"), Accent: mustHex("#f1c40f")},
		miners.Mythic:    {Base: mustHex("#f39c5a"), Accent: mustHex("#e67e22")},
		miners.Exotic:    {Base: mustHex("#f26d6d"), Accent: mustHex("#e74c3c")},
	}
}

// Lookup resolves the colors for a rarity. Unknown rarities silently
// fall back to the Common entry.
func (p Palette) Lookup(rarity miners.Rarity) ColorPair {
	if pair, ok := p[rarity]; ok {
		return pair
	}
	return p[miners.Common]
}

// paletteEntry is the YAML form of one rarity override.
type paletteEntry struct {
	Base   string `yaml:"base"`
	Accent string `yaml:"accent"`
}

// LoadPalette reads a YAML palette override file and merges it over
// the default palette. Entries replace the default pair for their
// rarity; rarities absent from the file keep their defaults.
func LoadPalette(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries map[string]paletteEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("invalid palette file %s: %w", path, err)
	}

	palette := DefaultPalette()
	for rarity, entry := range entries {
		base, err := parseHex(entry.Base)
		if err != nil {
			return nil, fmt.Errorf("palette entry %s: %w", rarity, err)
		}
		accent, err := parseHex(entry.Accent)
		if err != nil {
			return nil, fmt.Errorf("palette entry %s: %w", rarity, err)
		}
		palette[miners.Rarity(rarity)] = ColorPair{Base: base, Accent: accent}
	}

	return palette, nil
}

// parseHex converts a #rrggbb string to an opaque NRGBA color.
func parseHex(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// mustHex is parseHex for the fixed palette literals.
func mustHex(hex string) color.NRGBA {
	c, err := parseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}
