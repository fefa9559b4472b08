// File: pkg/archive/helpers.go
package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}

// archiveSelfName returns the slash path of output relative to baseDir, or "" when
// the archive lies outside the base directory and can never be visited.
func archiveSelfName(baseDir, output string) string {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return ""
	}
	absOutput, err := filepath.Abs(output)
	if err != nil {
		return ""
	}
	rel, err := filepath.Rel(absBase, absOutput)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return filepath.ToSlash(rel)
}

// printSummary writes the completion line, preceded by a blank line.
func printSummary(w io.Writer, s Summary) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", s); err != nil {
		return fmt.Errorf("report summary: %w", err)
	}
	return nil
}
