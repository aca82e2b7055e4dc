// Package testutil gives tests access to the embedded map fixtures.
package testutil

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed testdata
var testdataFS embed.FS

// FS returns the fixtures rooted at the testdata directory, so that map
// files and the tilesets they reference resolve against each other.
func FS() fs.FS {
	sub, err := fs.Sub(testdataFS, "testdata")
	if err != nil {
		panic(err)
	}
	return sub
}

// ReadTestData reads and returns the content of an embedded fixture.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(FS(), name)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Maps returns the names of all embedded map fixtures.
func Maps() ([]string, error) {
	return fs.Glob(FS(), "*.tmx")
}
