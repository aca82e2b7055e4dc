package tmx

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Parse parses the map document in data.
//
// Relative external tileset sources are resolved against the current
// directory unless WithBaseDir or WithFetcher says otherwise.
func Parse(data []byte, opts ...Option) (*Map, error) {
	return NewDecoder(bytes.NewReader(data), opts...).Decode()
}

// ReadFile parses the map document stored in the named file. Relative
// external tileset sources are resolved against the file's directory; an
// explicit WithBaseDir or WithFetcher in opts overrides that.
func ReadFile(name string, opts ...Option) (*Map, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, fmt.Errorf("tmx: %w", err)
	}
	f, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("tmx: %w", err)
	}
	defer f.Close()

	opts = append([]Option{WithBaseDir(filepath.Dir(abs))}, opts...)
	return NewDecoder(f, opts...).Decode()
}
