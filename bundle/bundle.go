// Package bundle packs a generated asset directory into a single ZIP
// archive for handoff to the game build, optionally protected with
// AES-256 encryption.
package bundle

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexmullins/zip"
)

// Common errors
var (
	ErrNoSource      = errors.New("no source directory provided")
	ErrInvalidOutput = errors.New("invalid output path")
	ErrEmptySource   = errors.New("source directory contains no files")
)

// ProgressCallback is called once per archived file.
// current: 1-based index of the file being archived
// total: total number of files
// path: archive path of the current file
type ProgressCallback func(current, total int, path string)

// Config holds bundling configuration
type Config struct {
	// SourceDir is the generated asset directory to archive
	SourceDir string

	// OutputPath is the full path for the output ZIP file
	OutputPath string

	// Password enables AES-256 encryption when non-empty
	Password string

	// OnProgress is called to report bundling progress
	OnProgress ProgressCallback
}

// DefaultConfig returns a Config pointing at the standard asset
// output directory.
func DefaultConfig() Config {
	return Config{
		SourceDir: filepath.Join("assets", "ui", "miners"),
	}
}

// Bundler archives generated assets.
type Bundler struct {
	config Config
}

// NewBundler creates a Bundler with the given config.
func NewBundler(config Config) (*Bundler, error) {
	if config.SourceDir == "" {
		return nil, ErrNoSource
	}
	if config.OutputPath == "" {
		return nil, ErrInvalidOutput
	}
	return &Bundler{config: config}, nil
}

// Result describes a completed bundling run.
type Result struct {
	OutputPath   string
	FilesBundled int
	ArchiveSize  int64
}

// Bundle walks the source directory and writes every file into the
// archive under its forward-slash relative path. The first failure
// aborts the run and removes the partial archive.
func (b *Bundler) Bundle() (*Result, error) {
	files, err := b.collectFiles()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySource, b.config.SourceDir)
	}

	if err := os.MkdirAll(filepath.Dir(b.config.OutputPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	zipFile, err := os.Create(b.config.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive: %w", err)
	}
	defer zipFile.Close()

	zipWriter := zip.NewWriter(zipFile)

	for i, file := range files {
		if b.config.OnProgress != nil {
			b.config.OnProgress(i+1, len(files), file.archivePath)
		}
		if err := b.addFile(zipWriter, file); err != nil {
			zipWriter.Close()
			zipFile.Close()
			os.Remove(b.config.OutputPath)
			return nil, err
		}
	}

	if err := zipWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	info, err := os.Stat(b.config.OutputPath)
	if err != nil {
		return nil, err
	}

	return &Result{
		OutputPath:   b.config.OutputPath,
		FilesBundled: len(files),
		ArchiveSize:  info.Size(),
	}, nil
}

// fileEntry pairs a source path with its path inside the archive.
type fileEntry struct {
	sourcePath  string
	archivePath string
}

// collectFiles walks the source directory, skipping subdirectories'
// entries themselves but keeping their files.
func (b *Bundler) collectFiles() ([]fileEntry, error) {
	info, err := os.Stat(b.config.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSource, b.config.SourceDir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrNoSource, b.config.SourceDir)
	}

	var files []fileEntry
	err = filepath.Walk(b.config.SourceDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		relPath, err := filepath.Rel(b.config.SourceDir, path)
		if err != nil {
			relPath = filepath.Base(path)
		}
		files = append(files, fileEntry{
			sourcePath:  path,
			archivePath: strings.ReplaceAll(relPath, string(os.PathSeparator), "/"),
		})
		return nil
	})
	return files, err
}

// addFile streams one file into the archive, encrypted when a
// password is configured.
func (b *Bundler) addFile(zipWriter *zip.Writer, file fileEntry) error {
	srcFile, err := os.Open(file.sourcePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file.sourcePath, err)
	}
	defer srcFile.Close()

	var writer io.Writer
	if b.config.Password != "" {
		writer, err = zipWriter.Encrypt(file.archivePath, b.config.Password)
	} else {
		writer, err = zipWriter.Create(file.archivePath)
	}
	if err != nil {
		return fmt.Errorf("failed to create archive entry %s: %w", file.archivePath, err)
	}

	if _, err := io.Copy(writer, srcFile); err != nil {
		return fmt.Errorf("failed to archive %s: %w", file.sourcePath, err)
	}
	return nil
}
