// File: pkg/archive/config.go
package archive

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"

	"cleanpack/pkg/ignore"
)

// DefaultOutput is the archive name written when no output path is configured.
const DefaultOutput = "clean-machine-core.zip"

// DefaultRoots lists the files and directories packaged by default.
var DefaultRoots = []string{
	"client/src",
	"server",
	"shared/schema.ts",
	"package.json",
	"tsconfig.json",
	"drizzle.config.ts",
	"tailwind.config.ts",
	"components.json",
	"vite.config.ts",
	"postcss.config.js",
}

// Config holds the configuration options for a packaging run.
type Config struct {
	BaseDir  string    // Directory roots are resolved against; empty means the working directory.
	Output   string    // Archive path; relative paths are resolved against BaseDir.
	Roots    []string  // Ordered root inclusion entries, slash-separated and relative to BaseDir.
	Excludes []string  // Substring exclusion patterns.
	Stdout   io.Writer // Destination of per-file and summary lines; nil means os.Stdout.
}

// Entry is a file selected for archiving.
type Entry struct {
	Path string // Location of the file on disk.
	Name string // Archive-relative name, identical to the slash path used to find the file.
}

// DefaultConfig returns the configuration used by the command-line entry point:
// the default roots and exclusions, read from and written to the working directory.
func DefaultConfig() Config {
	return Config{
		Output:   DefaultOutput,
		Roots:    append([]string(nil), DefaultRoots...),
		Excludes: append([]string(nil), ignore.DefaultPatterns...),
	}
}

// Validate checks the configuration for values that cannot be packaged.
func (c Config) Validate() error {
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	for _, root := range c.Roots {
		if _, err := cleanRoot(root); err != nil {
			return err
		}
	}
	return nil
}

// outputPath resolves the archive location against the base directory.
func (c Config) outputPath() string {
	if filepath.IsAbs(c.Output) || c.BaseDir == "" {
		return c.Output
	}
	return filepath.Join(c.BaseDir, c.Output)
}

// baseDir returns the directory roots are resolved against.
func (c Config) baseDir() string {
	if c.BaseDir == "" {
		return "."
	}
	return c.BaseDir
}

// cleanRoot converts a root entry into the slash form accepted by io/fs.
func cleanRoot(root string) (string, error) {
	cleaned := path.Clean(filepath.ToSlash(root))
	if root == "" || !fs.ValidPath(cleaned) {
		return "", fmt.Errorf("invalid root %q: must be a relative path inside the base directory", root)
	}
	return cleaned, nil
}
