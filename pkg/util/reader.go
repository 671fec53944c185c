// Package util provides file access helpers for the detection layers.
package util

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/encscan/encscan/pkg/errors"
)

// OpenFile opens a file, automatically decompressing if it's gzip-compressed.
// Returns the reader, a cleanup function (to close resources), and any error.
// The caller must call the cleanup function when done reading.
func OpenFile(path string) (io.Reader, func() error, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.FileNotFound(path)
		}
		if os.IsPermission(err) {
			return nil, nil, errors.Wrap(err, errors.CodeFilePermission, "open failed").
				WithContext("path", path)
		}
		return nil, nil, errors.ReadFailed(path, err)
	}

	if IsGzipFile(path) {
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, nil, errors.ReadFailed(path, err)
		}
		cleanup := func() error {
			gzReader.Close()
			return file.Close()
		}
		return gzReader, cleanup, nil
	}

	cleanup := func() error {
		return file.Close()
	}
	return file, cleanup, nil
}

// IsGzipFile returns true if the file path indicates gzip compression.
func IsGzipFile(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".gz")
}

// ReadSample reads up to n leading bytes from the named file, transparently
// decompressing gzip input so the detector sees text, not a deflate stream.
func ReadSample(path string, n int) ([]byte, error) {
	buf := make([]byte, n)
	read, err := ReadSampleInto(path, buf)
	if err != nil {
		return nil, err
	}
	return buf[:read], nil
}

// ReadSampleInto fills buf with the file's leading bytes and returns the
// count read. Callers supplying pooled buffers avoid per-file allocation.
func ReadSampleInto(path string, buf []byte) (int, error) {
	r, cleanup, err := OpenFile(path)
	if err != nil {
		return 0, err
	}
	defer cleanup()

	read, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, errors.ReadFailed(path, err)
	}
	return read, nil
}
