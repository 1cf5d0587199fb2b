// Package main provides the miner icon generator CLI
package main

import (
	"fmt"
)

// LaunchGUI points at the GUI build (requires Fyne to be installed)
func LaunchGUI() {
	// The GUI version lives in cmd/gui so the CLI builds without
	// fyne's cgo toolchain requirements:
	// go build -o miner-icons-gui ./cmd/gui
	fmt.Println("To launch the preview GUI, build it from cmd/gui:")
	fmt.Println("  cd cmd/gui && go build -o ../../miner-icons-gui")
	fmt.Println("Then run: ./miner-icons-gui")
}
