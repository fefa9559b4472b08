// Package archive packages selected files of a project tree into a single zip archive.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cleanpack/pkg/ignore"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Summary describes a finished archive.
type Summary struct {
	Output string // Path of the archive that was written.
	Files  int    // Number of entries stored.
	Bytes  int64  // Size of the archive on disk.
}

// MB returns the archive size in mebibytes.
func (s Summary) MB() float64 {
	return float64(s.Bytes) / (1024 * 1024)
}

// String returns the completion line printed after a run.
func (s Summary) String() string {
	return fmt.Sprintf("Created %s (%.2f MB)", s.Output, s.MB())
}

// Execute packages the default roots of the working directory.
func Execute(logger *zap.Logger) error {
	if _, err := Run(DefaultConfig(), logger); err != nil {
		return fmt.Errorf("archive execution failed: %w", err)
	}
	return nil
}

// Run walks the configured roots and writes every surviving file into the archive,
// one file at a time. The first I/O error aborts the run; the archive handle is
// closed either way.
func Run(cfg Config, logger *zap.Logger) (summary Summary, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return Summary{}, fmt.Errorf("invalid configuration: %w", err)
	}

	startTime := time.Now()
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	output := cfg.outputPath()
	logger.Info("Starting archive process",
		zap.String("baseDir", cfg.baseDir()),
		zap.String("output", output),
		zap.Strings("roots", cfg.Roots))

	if err := ensureDirectory(filepath.Dir(output), logger); err != nil {
		return Summary{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	rules := ignore.NewRuleSet(logger, cfg.Excludes...)
	selfName := archiveSelfName(cfg.baseDir(), output)

	w, err := NewWriter(output, logger)
	if err != nil {
		return Summary{}, err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	fsys := os.DirFS(cfg.baseDir())
	err = Collect(fsys, cfg.Roots, rules, logger, func(name string) error {
		if name == selfName {
			logger.Debug("Skipping the archive being written", zap.String("file", name))
			return nil
		}
		if _, err := fmt.Fprintf(stdout, "Adding file: %s\n", name); err != nil {
			return fmt.Errorf("report %s: %w", name, err)
		}
		return w.WriteFile(fsys, name)
	})
	if err != nil {
		logger.Error("Failed to package files", zap.Error(err))
		return Summary{}, fmt.Errorf("failed to package files: %w", err)
	}

	if err := w.Close(); err != nil {
		return Summary{}, err
	}

	info, err := os.Stat(output)
	if err != nil {
		return Summary{}, fmt.Errorf("stat archive: %w", err)
	}
	summary = Summary{
		Output: cfg.Output,
		Files:  w.Files(),
		Bytes:  info.Size(),
	}
	if err := printSummary(stdout, summary); err != nil {
		return summary, err
	}

	logger.Info("Archive process completed",
		zap.String("output", output),
		zap.Int("files", summary.Files),
		zap.String("size", humanize.IBytes(uint64(summary.Bytes))),
		zap.Duration("elapsed", time.Since(startTime)))
	return summary, nil
}
