// File: pkg/archive/traversal.go
package archive

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"

	"cleanpack/pkg/ignore"

	"go.uber.org/zap"
)

// EmitFunc receives the archive-relative name of every file selected for archiving.
// Returning an error stops the traversal.
type EmitFunc func(name string) error

// Collect visits the roots in declaration order and emits every file that survives
// the exclusion rules, exactly once.
//
// Roots that do not exist are skipped silently. Excluded directories are pruned, so
// nothing beneath them is evaluated. Any other filesystem error aborts the traversal.
func Collect(fsys fs.FS, roots []string, rules *ignore.RuleSet, logger *zap.Logger, emit EmitFunc) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("Starting file collection", zap.Int("rootCount", len(roots)))

	for _, root := range roots {
		cleaned, err := cleanRoot(root)
		if err != nil {
			return err
		}

		info, err := fs.Stat(fsys, cleaned)
		if err != nil {
			if isMissing(err) {
				logger.Debug("Root does not exist, skipping", zap.String("root", cleaned))
				continue
			}
			return fmt.Errorf("stat root %s: %w", cleaned, err)
		}

		switch {
		case info.Mode().IsRegular():
			if rules.MatchesPath(cleaned) {
				logger.Debug("Skipping excluded file", zap.String("file", cleaned))
				continue
			}
			if err := emit(cleaned); err != nil {
				return err
			}
		case info.IsDir():
			logger.Debug("Processing directory", zap.String("dir", cleaned))
			if err := walkRoot(fsys, cleaned, rules, logger, emit); err != nil {
				return err
			}
		default:
			logger.Debug("Root is neither a file nor a directory, skipping",
				zap.String("root", cleaned),
				zap.Stringer("mode", info.Mode()))
		}
	}

	return nil
}

// walkRoot traverses a single root directory depth-first in lexical order.
func walkRoot(fsys fs.FS, root string, rules *ignore.RuleSet, logger *zap.Logger, emit EmitFunc) error {
	return fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Error("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return fmt.Errorf("walk %s: %w", path, err)
		}

		if d.IsDir() {
			// The root itself is not tested; every file below it carries its name anyway.
			if path != root && rules.MatchesPath(path) {
				logger.Debug("Skipping excluded directory", zap.String("directory", path))
				return fs.SkipDir
			}
			return nil
		}

		if rules.MatchesPath(path) {
			logger.Debug("Skipping excluded file", zap.String("file", path))
			return nil
		}

		ok, err := isFileEntry(fsys, path, d)
		if err != nil {
			return err
		}
		if !ok {
			logger.Debug("Skipping non-regular entry", zap.String("path", path), zap.Stringer("type", d.Type()))
			return nil
		}

		return emit(path)
	})
}

// isFileEntry reports whether a non-directory entry has regular file content.
// Symlinks are resolved: links to files are archived, links to directories are not
// descended.
func isFileEntry(fsys fs.FS, path string, d fs.DirEntry) (bool, error) {
	if d.Type().IsRegular() {
		return true, nil
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}
	info, err := fs.Stat(fsys, path)
	if err != nil {
		return false, fmt.Errorf("resolve symlink %s: %w", path, err)
	}
	return info.Mode().IsRegular(), nil
}

// isMissing reports whether err means the path names nothing on disk.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
