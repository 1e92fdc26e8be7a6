// Package cliio is the ambient file-opening layer shared by the four
// command-line tools: it turns a path argument into an io.Reader, handling
// "-" for stdin, multi-scheme paths via grailbio/base/file, and transparent
// .gz decompression. None of the core packages (fold, join, prefix, diff,
// stat) import this; they work on io.Reader/io.Writer directly.
package cliio

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/klauspost/compress/gzip"
)

// Open returns a reader for path: "-" maps to stdin, anything ending in
// .gz is transparently decompressed, and everything else goes through
// grailbio/base/file so local paths and remote schemes (s3://, etc.) work
// the same way.
func Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "cliio: open", path)
	}
	r := f.Reader(ctx)

	if !strings.HasSuffix(path, ".gz") {
		return readCloser{Reader: r, close: func() error { return f.Close(ctx) }}, nil
	}

	gz, err := gzip.NewReader(r)
	if err != nil {
		f.Close(ctx)
		return nil, errors.E(err, "cliio: gunzip", path)
	}
	return readCloser{
		Reader: gz,
		close: func() error {
			gz.Close()
			return f.Close(ctx)
		},
	}, nil
}

// readCloser adapts an io.Reader plus an explicit close func to
// io.ReadCloser, since file.File's Reader and Close both need the context
// that created them.
type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error { return r.close() }
