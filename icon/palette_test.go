package icon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kacebover/miner-icons/miners"
)

// TestDefaultPaletteCoversKnownRarities verifies all six shipped
// rarities resolve to distinct, opaque color pairs.
func TestDefaultPaletteCoversKnownRarities(t *testing.T) {
	palette := DefaultPalette()

	rarities := []miners.Rarity{
		miners.Common, miners.Rare, miners.Epic,
		miners.Legendary, miners.Mythic, miners.Exotic,
	}

	if len(palette) != len(rarities) {
		t.Errorf("Expected %d palette entries, got %d", len(rarities), len(palette))
	}

	for _, rarity := range rarities {
		pair, ok := palette[rarity]
		if !ok {
			t.Errorf("Missing palette entry for %s", rarity)
			continue
		}
		if pair.Base.A != 255 || pair.Accent.A != 255 {
			t.Errorf("%s: palette colors must be opaque", rarity)
		}
		if pair.Base == pair.Accent {
			t.Errorf("%s: base and accent should differ", rarity)
		}
	}
}

// TestLookupUnknownRarityFallsBackToCommon verifies the silent
// fallback for rarities the palette does not know.
func TestLookupUnknownRarityFallsBackToCommon(t *testing.T) {
	palette := DefaultPalette()

	got := palette.Lookup(miners.Rarity("Nonexistent"))
	want := palette[miners.Common]

	if got != want {
		t.Errorf("Expected Common colors for unknown rarity, got %+v", got)
	}
}

// TestLoadPaletteMergesOverDefaults verifies an override file replaces
// only the rarities it names.
func TestLoadPaletteMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	content := "Mythic:\n  base: \"#102030\"\n  accent: \"#405060\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write palette file: %v", err)
	}

	palette, err := LoadPalette(path)
	if err != nil {
		t.Fatalf("LoadPalette returned an error: %v", err)
	}

	mythic := palette[miners.Mythic]
	if mythic.Base.R != 0x10 || mythic.Base.G != 0x20 || mythic.Base.B != 0x30 {
		t.Errorf("Mythic base not overridden: %+v", mythic.Base)
	}
	if mythic.Accent.R != 0x40 || mythic.Accent.G != 0x50 || mythic.Accent.B != 0x60 {
		t.Errorf("Mythic accent not overridden: %+v", mythic.Accent)
	}

	if palette[miners.Common] != DefaultPalette()[miners.Common] {
		t.Error("Common entry should keep its default colors")
	}
}

// TestLoadPaletteRejectsBadHex verifies malformed color strings fail
// loudly instead of producing a broken palette.
func TestLoadPaletteRejectsBadHex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	content := "Rare:\n  base: \"notacolor\"\n  accent: \"#405060\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write palette file: %v", err)
	}

	if _, err := LoadPalette(path); err == nil {
		t.Error("Expected error for malformed hex color, got nil")
	}
}

// TestLoadPaletteMissingFile verifies a missing override file is an
// error, not a silent default.
func TestLoadPaletteMissingFile(t *testing.T) {
	if _, err := LoadPalette("/nonexistent/palette.yaml"); err == nil {
		t.Error("Expected error for missing palette file, got nil")
	}
}
