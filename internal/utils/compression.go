package utils

import (
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// GzipCompress compresses data using gzip
func GzipCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// GzipDecompress decompresses gzip data
func GzipDecompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}

// ReadGzipFile reads and decompresses a gzip file
func ReadGzipFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return GzipDecompress(data)
}

// WriteGzipFile compresses data and writes it atomically to path
func WriteGzipFile(path string, data []byte, perm os.FileMode) error {
	compressed, err := GzipCompress(data)
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, compressed, perm)
}
