package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
)

// FS implements Provider backed by a local man hierarchy such as
// /usr/share/man, with pages stored as man<section>/<name>.gz.
type FS struct {
	root string // absolute path to the man hierarchy
}

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("corpus: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("corpus: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("corpus: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, nil
}

// Path returns the backing file path for section/name.
func (f *FS) Path(section, name string) string {
	return filepath.Join(f.root, "man"+section, name+".gz")
}

// Probe reports whether name.section.gz exists under man<section>.
func (f *FS) Probe(section, name string) bool {
	_, err := os.Stat(f.Path(section, name+"."+section))
	return err == nil
}

// ModTime returns the backing file's modification time. Man-page mtimes have
// second resolution on disk, matching the HTTP date grammar.
func (f *FS) ModTime(section, name string) (time.Time, error) {
	info, err := os.Stat(f.Path(section, name))
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// FirstLine returns the first line of the decompressed page. Only one line is
// read; the rest of the stream is never inflated.
func (f *FS) FirstLine(section, name string) (string, error) {
	file, err := os.Open(f.Path(section, name))
	if err != nil {
		return "", err
	}
	defer file.Close()

	zr, err := gzip.NewReader(file)
	if err != nil {
		return "", fmt.Errorf("corpus: decompress %s: %w", f.Path(section, name), err)
	}
	defer zr.Close()

	line, err := bufio.NewReader(zr).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("corpus: read %s: %w", f.Path(section, name), err)
	}
	return strings.TrimSuffix(line, "\n"), nil
}
