package main

import (
	"fmt"
	"image"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/kacebover/miner-icons/icon"
	"github.com/kacebover/miner-icons/miners"
)

const previewSize = float32(icon.GridSize * icon.DefaultScale)

// PreviewGUI is the miner icon preview application
type PreviewGUI struct {
	app    fyne.App
	window fyne.Window

	inputEntry  *widget.Entry
	outputEntry *widget.Entry
	statusLabel *widget.Label
	grid        *fyne.Container

	palette icon.Palette
	parser  *miners.Parser
	config  *AppConfig

	// State
	records    []miners.MinerRecord
	generating atomic.Bool
}

func main() {
	gui := NewPreviewGUI()
	gui.Run()
}

// NewPreviewGUI creates a new GUI instance
func NewPreviewGUI() *PreviewGUI {
	a := app.NewWithID("com.minericons.preview")
	w := a.NewWindow("⛏️ Miner Icon Preview")

	config := LoadConfig()
	w.Resize(fyne.NewSize(float32(config.WindowWidth), float32(config.WindowHeight)))
	w.CenterOnScreen()

	gui := &PreviewGUI{
		app:     a,
		window:  w,
		palette: icon.DefaultPalette(),
		parser:  miners.NewParser(),
		config:  config,
	}

	gui.buildUI()
	return gui
}

// Run shows the window and enters the event loop.
func (g *PreviewGUI) Run() {
	if g.config.LastInputPath != "" {
		g.reload()
	}
	g.window.ShowAndRun()
	g.config.Save()
}

func (g *PreviewGUI) buildUI() {
	titleText := canvas.NewText("⛏️ Miner Icon Preview", theme.Color(theme.ColorNameForeground))
	titleText.TextSize = 24
	titleText.TextStyle.Bold = true

	g.inputEntry = widget.NewEntry()
	g.inputEntry.SetPlaceHolder("Path to MinerDatabase.ts")
	if g.config.LastInputPath != "" {
		g.inputEntry.SetText(g.config.LastInputPath)
	}

	browseBtn := widget.NewButton("📂 Browse...", func() {
		dialog.ShowFileOpen(func(uri fyne.URIReadCloser, err error) {
			if err != nil {
				dialog.ShowError(err, g.window)
				return
			}
			if uri == nil {
				return
			}
			uri.Close()
			g.inputEntry.SetText(uri.URI().Path())
			g.reload()
		}, g.window)
	})

	reloadBtn := widget.NewButton("🔄 Reload", g.reload)

	g.outputEntry = widget.NewEntry()
	g.outputEntry.SetPlaceHolder("Output directory")
	if g.config.LastOutputDir != "" {
		g.outputEntry.SetText(g.config.LastOutputDir)
	}

	exportBtn := widget.NewButton("💾 Export PNGs", g.export)
	exportBtn.Importance = widget.HighImportance

	g.statusLabel = widget.NewLabel("Pick a miner database file to preview its icons.")
	g.grid = container.NewGridWrap(fyne.NewSize(previewSize+32, previewSize+90))

	inputRow := container.NewBorder(nil, nil, widget.NewLabel("Database:"),
		container.NewHBox(browseBtn, reloadBtn), g.inputEntry)
	outputRow := container.NewBorder(nil, nil, widget.NewLabel("Output:"),
		exportBtn, g.outputEntry)

	content := container.NewBorder(
		container.NewVBox(
			container.NewPadded(titleText),
			inputRow,
			outputRow,
			widget.NewSeparator(),
			g.statusLabel,
		),
		nil, nil, nil,
		container.NewScroll(g.grid),
	)

	g.window.SetContent(content)
}

// reload parses the database and rebuilds the preview grid.
func (g *PreviewGUI) reload() {
	path := g.inputEntry.Text
	if path == "" {
		g.statusLabel.SetText("No database file selected.")
		return
	}

	records, err := g.parser.ParseFile(path)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to read database: %w", err), g.window)
		return
	}

	g.records = records
	g.config.LastInputPath = path
	g.config.Save()

	g.grid.RemoveAll()
	for _, record := range records {
		g.grid.Add(g.previewCell(record))
	}
	g.grid.Refresh()

	g.statusLabel.SetText(fmt.Sprintf("%d miners parsed from %s", len(records), path))
}

// previewCell builds one grid cell: the pixel-scaled sprite plus its
// name, tier and rarity.
func (g *PreviewGUI) previewCell(record miners.MinerRecord) fyne.CanvasObject {
	var sprite image.Image = icon.Draw(g.palette, record.Rarity, record.Tier)

	img := canvas.NewImageFromImage(sprite)
	img.ScaleMode = canvas.ImageScalePixels
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(previewSize, previewSize))

	name := widget.NewLabelWithStyle(record.Name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	detail := widget.NewLabelWithStyle(
		fmt.Sprintf("Tier %d · %s", record.Tier, record.Rarity),
		fyne.TextAlignCenter, fyne.TextStyle{})

	return container.NewVBox(img, name, detail)
}

// export runs the full generator against the chosen output directory.
func (g *PreviewGUI) export() {
	if !g.generating.CompareAndSwap(false, true) {
		return
	}

	inputPath := g.inputEntry.Text
	outputDir := g.outputEntry.Text

	config := icon.DefaultConfig()
	config.InputPath = inputPath
	config.Palette = g.palette
	if outputDir != "" {
		config.OutputDir = outputDir
	}

	generator, err := icon.NewGenerator(config)
	if err != nil {
		g.generating.Store(false)
		dialog.ShowError(err, g.window)
		return
	}

	g.config.LastOutputDir = config.OutputDir
	g.config.Save()
	g.statusLabel.SetText("Exporting...")

	go func() {
		defer g.generating.Store(false)

		result, err := generator.Run()

		fyne.Do(func() {
			if err != nil {
				g.statusLabel.SetText("Export failed.")
				dialog.ShowError(err, g.window)
				return
			}
			g.statusLabel.SetText(fmt.Sprintf("Exported %d icons to %s", len(result.Files), config.OutputDir))
			dialog.ShowInformation("Export complete",
				fmt.Sprintf("%d icons (%dx%d) written to %s",
					len(result.Files), result.Size, result.Size, config.OutputDir),
				g.window)
		})
	}()
}
