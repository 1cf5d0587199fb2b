package icon

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/kacebover/miner-icons/miners"
)

// Common errors
var (
	ErrNoInput  = errors.New("no input database path provided")
	ErrNoOutput = errors.New("no output directory provided")
)

// IconWrittenCallback is called after each icon file is written.
// path: the file that was written
// record: the miner the icon belongs to
type IconWrittenCallback func(path string, record miners.MinerRecord)

// Config holds generation configuration
type Config struct {
	// InputPath is the miner database source file to scrape
	InputPath string

	// OutputDir receives the tier-<N>.png files and the manifest
	OutputDir string

	// Scale is the nearest-neighbor magnification factor (default: 8)
	Scale int

	// Palette maps rarities to colors (default: DefaultPalette)
	Palette Palette

	// OnIconWritten is called once per written icon file
	OnIconWritten IconWrittenCallback
}

// DefaultConfig returns a Config with the fixed paths the game build
// invokes the tool with.
func DefaultConfig() Config {
	return Config{
		InputPath: filepath.Join("src", "Miner", "MinerDatabase.ts"),
		OutputDir: filepath.Join("assets", "ui", "miners"),
		Scale:     DefaultScale,
		Palette:   DefaultPalette(),
	}
}

// Generator runs the parse-render-write pipeline for one batch.
type Generator struct {
	config Config
	parser *miners.Parser
}

// NewGenerator creates a Generator with the given config.
func NewGenerator(config Config) (*Generator, error) {
	if config.InputPath == "" {
		return nil, ErrNoInput
	}
	if config.OutputDir == "" {
		return nil, ErrNoOutput
	}
	if config.Scale <= 0 {
		config.Scale = DefaultScale
	}
	if config.Palette == nil {
		config.Palette = DefaultPalette()
	}

	return &Generator{
		config: config,
		parser: miners.NewParser(),
	}, nil
}

// Result describes a completed generation batch.
type Result struct {
	// Records are the parsed miners, in render order.
	Records []miners.MinerRecord

	// Files are the written icon paths, in render order.
	Files []string

	// Size is the pixel edge length of the written images.
	Size int
}

// Run executes one batch: parse the database, render and write one
// icon per record, then write the manifest. Records sharing a tier
// overwrite the same filename; the last one rendered wins. The first
// failure aborts the run and no manifest is written.
func (g *Generator) Run() (*Result, error) {
	records, err := g.parser.ParseFile(g.config.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read miner database: %w", err)
	}

	if err := os.MkdirAll(g.config.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &Result{
		Records: records,
		Files:   make([]string, 0, len(records)),
		Size:    GridSize * g.config.Scale,
	}

	for _, record := range records {
		sprite := Draw(g.config.Palette, record.Rarity, record.Tier)
		scaled := Upscale(sprite, g.config.Scale)

		path := filepath.Join(g.config.OutputDir, fmt.Sprintf("tier-%d.png", record.Tier))
		if err := writePNG(path, scaled); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		result.Files = append(result.Files, path)

		if g.config.OnIconWritten != nil {
			g.config.OnIconWritten(path, record)
		}
	}

	manifest := Manifest{
		Size:  result.Size,
		Count: len(records),
		Path:  g.config.OutputDir,
	}
	if err := manifest.WriteFile(filepath.Join(g.config.OutputDir, ManifestName)); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	return result, nil
}

// writePNG encodes img to a new file at path.
func writePNG(path string, img *image.NRGBA) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
