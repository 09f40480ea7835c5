// =============================================================================
// Payroll File Encoder - File Manager Utility
// =============================================================================
//
// File management for the encoder CLI:
//   - Input discovery (payroll XLSX exports)
//   - Output writing with configurable naming
//   - Archival of processed inputs
//
// ARCHIVAL STRATEGY:
//   - Input sheets are moved to the archive directory after a successful
//     generation run; a timestamp suffix avoids collisions when the portal
//     re-exports a sheet under the same name.
//   - Failed inputs stay where they are so the run can be repeated.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the encoder.
type FileManager struct {
	// InputDir is the directory where payroll exports are placed.
	InputDir string

	// OutputDir is the directory where generated files are written.
	OutputDir string

	// ArchiveDir is the directory processed inputs are moved to.
	ArchiveDir string

	// NameFormat is the output naming pattern; see OutputName.
	NameFormat string
}

// NewFileManager creates a FileManager over the configured directories.
func NewFileManager(inputDir, outputDir, archiveDir, nameFormat string) *FileManager {
	return &FileManager{
		InputDir:   inputDir,
		OutputDir:  outputDir,
		ArchiveDir: archiveDir,
		NameFormat: nameFormat,
	}
}

// EnsureDirectories creates the working directories if they don't exist.
func (fm *FileManager) EnsureDirectories() error {
	for _, dir := range []string{fm.InputDir, fm.OutputDir, fm.ArchiveDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverInputFiles scans the input directory for files matching pattern
// (default "*.xlsx"). Directories are skipped.
func (fm *FileManager) DiscoverInputFiles(pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*.xlsx"
	}

	files, err := filepath.Glob(filepath.Join(fm.InputDir, pattern))
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory: %w", err)
	}

	var result []string
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			result = append(result, file)
		}
	}

	return result, nil
}

// =============================================================================
// OUTPUT WRITING
// =============================================================================

// OutputName renders the configured naming pattern. Placeholders:
//
//	{uuid}      - a random UUID
//	{timestamp} - YYYYMMDD_HHMMSS
//	{sequence}  - the batch/file sequence number
//
// ext is appended when the rendered name does not already carry it.
func (fm *FileManager) OutputName(sequence int, ext string) string {
	name := fm.NameFormat
	if name == "" {
		name = "{uuid}"
	}

	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	name = strings.ReplaceAll(name, "{timestamp}", time.Now().Format("20060102_150405"))
	name = strings.ReplaceAll(name, "{sequence}", strconv.Itoa(sequence))

	if !strings.HasSuffix(name, ext) {
		name += ext
	}
	return name
}

// WriteOutput writes data into the output directory under name and returns
// the full path.
func (fm *FileManager) WriteOutput(name string, data []byte) (string, error) {
	path := filepath.Join(fm.OutputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write output file: %w", err)
	}
	return path, nil
}

// =============================================================================
// FILE ARCHIVAL
// =============================================================================

// ArchiveInputFile moves an input file to the archive directory, suffixing
// the name with a timestamp so repeated exports don't collide.
func (fm *FileManager) ArchiveInputFile(filePath string) (string, error) {
	base := filepath.Base(filePath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	archived := fmt.Sprintf("%s_%s%s", stem, time.Now().Format("20060102_150405"), ext)
	archivePath := filepath.Join(fm.ArchiveDir, archived)

	if err := os.Rename(filePath, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive input file: %w", err)
	}
	return archivePath, nil
}
