// Package source loads the text to be searched.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// ErrInvalidUTF8 is wrapped by FileReadError when the contents are not text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// FileReadError reports a file that could not be loaded as text.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// Options controls how a file is loaded.
type Options struct {
	// Decompress decodes gzip and zstd files, detected by their magic
	// bytes. Other files are returned unchanged.
	Decompress bool
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// ReadFile returns the whole content of path as a string. The content must be
// valid UTF-8. Every failure is returned as a *FileReadError.
func ReadFile(_ context.Context, path string, opts Options) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return "", &FileReadError{Path: path, Err: unwrapPathError(err)}
	}

	if opts.Decompress {
		data, err = decompress(data)
		if err != nil {
			return "", &FileReadError{Path: path, Err: err}
		}
	}

	if !utf8.Valid(data) {
		return "", &FileReadError{Path: path, Err: ErrInvalidUTF8}
	}

	return string(data), nil
}

func decompress(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		defer r.Close()
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("decoding gzip stream: %w", err)
		}
		return out, nil

	case bytes.HasPrefix(data, zstdMagic):
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("creating zstd decoder: %w", err)
		}
		defer dec.Close()
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("decoding zstd stream: %w", err)
		}
		return out, nil

	default:
		return data, nil
	}
}

// unwrapPathError drops the *fs.PathError layer so the path is not repeated
// in FileReadError's message. errors.Is(err, fs.ErrNotExist) still holds.
func unwrapPathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
