package util

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/encscan/encscan/pkg/errors"
)

func TestReadSample_Plain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	content := []byte("hello, sample reader")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadSample(path, 1024)
	if err != nil {
		t.Fatalf("ReadSample: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("ReadSample = %q, want %q", got, content)
	}
}

func TestReadSample_Truncates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.txt")
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), 100), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadSample(path, 10)
	if err != nil {
		t.Fatalf("ReadSample: %v", err)
	}
	if len(got) != 10 {
		t.Errorf("len = %d, want 10", len(got))
	}
}

func TestReadSample_Gzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "text.txt.gz")

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte("compressed text content")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadSample(path, 1024)
	if err != nil {
		t.Fatalf("ReadSample: %v", err)
	}
	if string(got) != "compressed text content" {
		t.Errorf("ReadSample = %q, want decompressed text", got)
	}
}

func TestReadSample_Missing(t *testing.T) {
	_, err := ReadSample(filepath.Join(t.TempDir(), "nope.txt"), 16)
	if err == nil {
		t.Fatal("want error for missing file")
	}
	if !errors.IsCode(err, errors.CodeFileNotFound) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.CodeFileNotFound)
	}
}

func TestIsGzipFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.txt.gz", true},
		{"a.TXT.GZ", true},
		{"a.txt", false},
		{"gz", false},
	}
	for _, tt := range tests {
		if got := IsGzipFile(tt.path); got != tt.want {
			t.Errorf("IsGzipFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
