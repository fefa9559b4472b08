// File: pkg/archive/writer.go
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/klauspost/compress/flate"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Writer streams files into a deflate-compressed zip archive on disk.
type Writer struct {
	zw      *zip.Writer
	archive *os.File
	path    string
	files   int
	closed  bool
	logger  *zap.Logger
}

// NewWriter creates the archive file at path, truncating any previous one.
func NewWriter(path string, logger *zap.Logger) (*Writer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	archive, err := os.Create(path)
	if err != nil {
		logger.Error("Failed to create archive", zap.String("file", path), zap.Error(err))
		return nil, fmt.Errorf("create archive: %w", err)
	}

	zw := zip.NewWriter(archive)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.DefaultCompression)
	})

	return &Writer{
		zw:      zw,
		archive: archive,
		path:    path,
		logger:  logger,
	}, nil
}

// WriteFile copies the named file from fsys into the archive under the same name.
func (w *Writer) WriteFile(fsys fs.FS, name string) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", name, err)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("create header for %s: %w", name, err)
	}
	// FileInfoHeader only keeps the base name.
	header.Name = name
	header.Method = zip.Deflate

	dst, err := w.zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("create %s in archive: %w", name, err)
	}
	n, err := io.Copy(dst, f)
	if err != nil {
		return fmt.Errorf("write %s to archive: %w", name, err)
	}

	w.files++
	w.logger.Debug("Wrote archive entry", zap.String("name", name), zap.Int64("sizeBytes", n))
	return nil
}

// Files returns the number of entries written so far.
func (w *Writer) Files() int {
	return w.files
}

// Close writes the zip central directory and closes the archive file.
// The file is closed even when finalizing the zip fails. Closing twice is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := multierr.Append(w.zw.Close(), w.archive.Close())
	if err != nil {
		w.logger.Error("Failed to close archive", zap.String("file", w.path), zap.Error(err))
		return fmt.Errorf("close archive: %w", err)
	}
	return nil
}
