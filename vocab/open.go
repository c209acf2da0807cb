package vocab

import (
	"compress/bzip2"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var compressionExts = []string{".gz", ".zst", ".bz2"}

// TrimCompression strips a recognized compression extension from name.
func TrimCompression(name string) string {
	ext := filepath.Ext(name)
	for _, c := range compressionExts {
		if strings.EqualFold(ext, c) {
			return strings.TrimSuffix(name, ext)
		}
	}

	return name
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() error {
	var errs []error
	for _, c := range rc.closers {
		errs = append(errs, c.Close())
	}

	return errors.Join(errs...)
}

// Open opens a corpus file for reading. Files ending in .gz, .zst or .bz2 are
// decompressed on the fly.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		return &readCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		zrc := zr.IOReadCloser()
		return &readCloser{Reader: zrc, closers: []io.Closer{zrc, f}}, nil
	case ".bz2":
		return &readCloser{Reader: bzip2.NewReader(f), closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}
