package tiledata

import (
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// Decompressor wraps r in a stream that inflates it. The caller closes the
// returned reader.
type Decompressor func(r io.Reader) (io.ReadCloser, error)

var decompressors = map[string]Decompressor{
	"gzip": func(r io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(r)
	},
	"zlib": zlib.NewReader,
	"zstd": func(r io.Reader) (io.ReadCloser, error) {
		d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	},
}

// Lookup returns the decompressor registered under name. Names are matched
// case-insensitively.
func Lookup(name string) (Decompressor, bool) {
	d, ok := decompressors[strings.ToLower(name)]
	return d, ok
}
