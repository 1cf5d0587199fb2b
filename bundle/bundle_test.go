package bundle

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/alexmullins/zip"
)

// writeAssets creates a fake generated-asset directory.
func writeAssets(t *testing.T, dir string) {
	t.Helper()
	files := map[string]string{
		"tier-1.png":    "png-one",
		"tier-7.png":    "png-seven",
		"manifest.json": `{"size":128,"count":2}`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write asset %s: %v", name, err)
		}
	}
}

// TestBundleDirectory verifies a plain archive contains every file
// from the source directory under its relative path.
func TestBundleDirectory(t *testing.T) {
	srcDir := t.TempDir()
	writeAssets(t, srcDir)
	outputPath := filepath.Join(t.TempDir(), "assets.zip")

	bundler, err := NewBundler(Config{SourceDir: srcDir, OutputPath: outputPath})
	if err != nil {
		t.Fatalf("NewBundler returned an error: %v", err)
	}

	result, err := bundler.Bundle()
	if err != nil {
		t.Fatalf("Bundle returned an error: %v", err)
	}
	if result.FilesBundled != 3 {
		t.Errorf("Expected 3 bundled files, got %d", result.FilesBundled)
	}
	if result.ArchiveSize <= 0 {
		t.Error("Expected a non-empty archive")
	}

	reader, err := zip.OpenReader(outputPath)
	if err != nil {
		t.Fatalf("Failed to open archive: %v", err)
	}
	defer reader.Close()

	var names []string
	for _, file := range reader.File {
		names = append(names, file.Name)
	}
	sort.Strings(names)

	want := []string{"manifest.json", "tier-1.png", "tier-7.png"}
	if len(names) != len(want) {
		t.Fatalf("Expected entries %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Entry %d: expected %s, got %s", i, want[i], names[i])
		}
	}
}

// TestBundleWithPassword verifies encrypted entries decrypt back to
// their source content with the right password.
func TestBundleWithPassword(t *testing.T) {
	srcDir := t.TempDir()
	writeAssets(t, srcDir)
	outputPath := filepath.Join(t.TempDir(), "assets.zip")

	bundler, err := NewBundler(Config{
		SourceDir:  srcDir,
		OutputPath: outputPath,
		Password:   "s3cret",
	})
	if err != nil {
		t.Fatalf("NewBundler returned an error: %v", err)
	}
	if _, err := bundler.Bundle(); err != nil {
		t.Fatalf("Bundle returned an error: %v", err)
	}

	reader, err := zip.OpenReader(outputPath)
	if err != nil {
		t.Fatalf("Failed to open archive: %v", err)
	}
	defer reader.Close()

	for _, file := range reader.File {
		if !file.IsEncrypted() {
			t.Errorf("Entry %s should be encrypted", file.Name)
			continue
		}
		if file.Name != "tier-1.png" {
			continue
		}
		file.SetPassword("s3cret")
		rc, err := file.Open()
		if err != nil {
			t.Fatalf("Failed to open encrypted entry: %v", err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("Failed to read encrypted entry: %v", err)
		}
		if string(content) != "png-one" {
			t.Errorf("Decrypted content mismatch: %q", content)
		}
	}
}

// TestBundleProgress verifies the callback fires once per file.
func TestBundleProgress(t *testing.T) {
	srcDir := t.TempDir()
	writeAssets(t, srcDir)

	var calls int
	bundler, err := NewBundler(Config{
		SourceDir:  srcDir,
		OutputPath: filepath.Join(t.TempDir(), "assets.zip"),
		OnProgress: func(current, total int, path string) {
			calls++
			if total != 3 {
				t.Errorf("Expected total 3, got %d", total)
			}
		},
	})
	if err != nil {
		t.Fatalf("NewBundler returned an error: %v", err)
	}
	if _, err := bundler.Bundle(); err != nil {
		t.Fatalf("Bundle returned an error: %v", err)
	}
	if calls != 3 {
		t.Errorf("Expected 3 progress calls, got %d", calls)
	}
}

// TestBundleEmptySource verifies an empty directory is an error, not
// an empty archive.
func TestBundleEmptySource(t *testing.T) {
	bundler, err := NewBundler(Config{
		SourceDir:  t.TempDir(),
		OutputPath: filepath.Join(t.TempDir(), "assets.zip"),
	})
	if err != nil {
		t.Fatalf("NewBundler returned an error: %v", err)
	}
	if _, err := bundler.Bundle(); err == nil {
		t.Error("Expected error for empty source directory, got nil")
	}
}

// TestNewBundlerValidation verifies the config checks.
func TestNewBundlerValidation(t *testing.T) {
	if _, err := NewBundler(Config{OutputPath: "out.zip"}); err != ErrNoSource {
		t.Errorf("Expected ErrNoSource, got %v", err)
	}
	if _, err := NewBundler(Config{SourceDir: "assets"}); err != ErrInvalidOutput {
		t.Errorf("Expected ErrInvalidOutput, got %v", err)
	}
}
