package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kacebover/miner-icons/bundle"
	"github.com/kacebover/miner-icons/icon"
	"github.com/kacebover/miner-icons/miners"
)

func main() {
	// Subcommand dispatch
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "generate":
			runGenerateCommand(os.Args[2:])
			return
		case "bundle":
			runBundleCommand(os.Args[2:])
			return
		case "gui":
			LaunchGUI()
			return
		case "help", "--help", "-h":
			printMainHelp()
			return
		}
	}

	// Default: one-shot generation with the fixed game paths, the way
	// the asset build step invokes the tool.
	runGenerate(icon.DefaultConfig(), false)
}

func printMainHelp() {
	fmt.Println("⛏️  Miner Icon Generator")
	fmt.Println("========================")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  generate    Render the per-tier miner icons from the miner database")
	fmt.Println("  bundle      Pack a generated asset directory into a ZIP archive")
	fmt.Println("  gui         Launch the preview GUI (separate build, see cmd/gui)")
	fmt.Println("  help        Show this help")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  miner-icons                 Generate with the fixed game paths")
	fmt.Println("  miner-icons generate [options]")
	fmt.Println("  miner-icons bundle -output <zip> [options]")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  miner-icons generate -input src/Miner/MinerDatabase.ts -output assets/ui/miners")
	fmt.Println("  miner-icons generate -palette palette.yaml -verbose")
	fmt.Println("  miner-icons bundle -output miner-assets.zip -password secret")
	fmt.Println()
	fmt.Println("Run 'miner-icons <command> -h' for details.")
}

// ═══════════════════════════════════════════════════════════════════════════
// GENERATE COMMAND
// ═══════════════════════════════════════════════════════════════════════════

func runGenerateCommand(args []string) {
	generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)

	defaults := icon.DefaultConfig()
	inputPath := generateCmd.String("input", defaults.InputPath, "Miner database source file")
	outputDir := generateCmd.String("output", defaults.OutputDir, "Output directory for icons and manifest")
	scale := generateCmd.Int("scale", defaults.Scale, "Nearest-neighbor magnification factor")
	palettePath := generateCmd.String("palette", "", "YAML palette override file (optional)")
	verbose := generateCmd.Bool("verbose", false, "Verbose output")

	generateCmd.Usage = func() {
		fmt.Println("⛏️  Generate Miner Icons")
		fmt.Println("========================")
		fmt.Println()
		fmt.Println("Scrapes tier/name/rarity entries out of the miner database and")
		fmt.Println("renders one rarity-colored 16x16 pixel sprite per tier, upscaled")
		fmt.Println("to PNG, plus a manifest.json describing the batch.")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  miner-icons generate [options]")
		fmt.Println()
		fmt.Println("Options:")
		fmt.Println("  -input string")
		fmt.Println("        Miner database source file (default: src/Miner/MinerDatabase.ts)")
		fmt.Println("  -output string")
		fmt.Println("        Output directory (default: assets/ui/miners)")
		fmt.Println("  -scale int")
		fmt.Println("        Magnification factor (default: 8, 16x16 -> 128x128)")
		fmt.Println("  -palette string")
		fmt.Println("        YAML palette override file")
		fmt.Println("  -verbose")
		fmt.Println("        Verbose output")
	}

	if err := generateCmd.Parse(args); err != nil {
		os.Exit(1)
	}

	config := defaults
	config.InputPath = *inputPath
	config.OutputDir = *outputDir
	config.Scale = *scale

	if *palettePath != "" {
		palette, err := icon.LoadPalette(*palettePath)
		if err != nil {
			fmt.Printf("❌ Error: %v\n", err)
			os.Exit(1)
		}
		config.Palette = palette
	}

	runGenerate(config, *verbose)
}

func runGenerate(config icon.Config, verbose bool) {
	config.OnIconWritten = func(path string, record miners.MinerRecord) {
		if verbose {
			fmt.Printf("wrote %s (%s, tier %d, %s)\n", path, record.Name, record.Tier, record.Rarity)
		} else {
			fmt.Printf("wrote %s\n", path)
		}
	}

	generator, err := icon.NewGenerator(config)
	if err != nil {
		fmt.Printf("❌ Error: %v\n", err)
		os.Exit(1)
	}

	result, err := generator.Run()
	if err != nil {
		fmt.Printf("❌ Generation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Generated %d icons (%dx%d) in %s\n",
		len(result.Files), result.Size, result.Size, config.OutputDir)
}

// ═══════════════════════════════════════════════════════════════════════════
// BUNDLE COMMAND
// ═══════════════════════════════════════════════════════════════════════════

func runBundleCommand(args []string) {
	bundleCmd := flag.NewFlagSet("bundle", flag.ExitOnError)

	defaults := bundle.DefaultConfig()
	sourceDir := bundleCmd.String("dir", defaults.SourceDir, "Asset directory to archive")
	outputPath := bundleCmd.String("output", "", "Output ZIP path (required)")
	password := bundleCmd.String("password", "", "Encrypt the archive with AES-256 (optional)")
	verbose := bundleCmd.Bool("verbose", false, "Verbose output")

	bundleCmd.Usage = func() {
		fmt.Println("📦 Bundle Generated Assets")
		fmt.Println("==========================")
		fmt.Println()
		fmt.Println("Packs a generated asset directory into a single ZIP archive,")
		fmt.Println("optionally AES-256 password-protected.")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  miner-icons bundle -output <zip> [options]")
		fmt.Println()
		fmt.Println("Options:")
		fmt.Println("  -dir string")
		fmt.Println("        Asset directory to archive (default: assets/ui/miners)")
		fmt.Println("  -output string")
		fmt.Println("        Output ZIP path (required)")
		fmt.Println("  -password string")
		fmt.Println("        Encrypt entries with AES-256")
		fmt.Println("  -verbose")
		fmt.Println("        Verbose output")
	}

	if err := bundleCmd.Parse(args); err != nil {
		os.Exit(1)
	}

	if *outputPath == "" {
		fmt.Println("❌ Error: An output path is required (-output)")
		bundleCmd.Usage()
		os.Exit(1)
	}

	config := bundle.Config{
		SourceDir:  *sourceDir,
		OutputPath: *outputPath,
		Password:   *password,
	}
	if *verbose {
		config.OnProgress = func(current, total int, path string) {
			fmt.Printf("  adding %s (%d/%d)\n", path, current, total)
		}
	}

	bundler, err := bundle.NewBundler(config)
	if err != nil {
		fmt.Printf("❌ Error: %v\n", err)
		os.Exit(1)
	}

	result, err := bundler.Bundle()
	if err != nil {
		fmt.Printf("❌ Bundling failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Bundle complete!")
	fmt.Printf("📦 Archive: %s\n", result.OutputPath)
	fmt.Printf("📁 Files:   %d\n", result.FilesBundled)
	fmt.Printf("📊 Size:    %s\n", formatBytes(result.ArchiveSize))
	if *password != "" {
		fmt.Println("🔐 Entries encrypted with AES-256")
	}
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), []string{"KB", "MB", "GB", "TB"}[exp])
}
