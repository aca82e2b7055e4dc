// Package tiledata decodes the cell array of a tile layer.
//
// Cells are unsigned 32-bit global tile ids in row-major order. They are
// passed through untouched: flip flags in the high bits are not interpreted.
package tiledata

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	tmxerrors "github.com/KimNorgaard/go-tmx/errors"
)

// Supported encodings.
const (
	EncodingCSV    = "csv"
	EncodingBase64 = "base64"
)

// Supported reports whether encoding selects a known decoding policy.
func Supported(encoding string) bool {
	switch strings.ToLower(encoding) {
	case EncodingCSV, EncodingBase64:
		return true
	}
	return false
}

// Decode returns exactly count tile ids decoded from text.
//
// An unsupported or empty encoding yields an empty slice and no error.
// compression only applies to base64 data; an unknown compression name
// leaves the decoded bytes as they are.
func Decode(encoding, compression, text string, count int) ([]uint32, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative cell count %d", tmxerrors.ErrTileCountMismatch, count)
	}
	switch strings.ToLower(encoding) {
	case EncodingCSV:
		return decodeCSV(text, count)
	case EncodingBase64:
		return decodeBase64(compression, text, count)
	default:
		return []uint32{}, nil
	}
}

func decodeCSV(text string, count int) ([]uint32, error) {
	// Empty text is read like an unknown encoding: no tiles, no error,
	// whatever the layer size.
	if strings.TrimSpace(text) == "" {
		return []uint32{}, nil
	}

	tokens := strings.Split(text, ",")
	if n := len(tokens); n > 1 && strings.TrimSpace(tokens[n-1]) == "" {
		tokens = tokens[:n-1]
	}
	if len(tokens) != count {
		return nil, fmt.Errorf("%w: csv has %d values, layer needs %d", tmxerrors.ErrTileCountMismatch, len(tokens), count)
	}

	tiles := make([]uint32, count)
	for i, tok := range tokens {
		v, err := strconv.ParseUint(strings.TrimSpace(tok), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: csv value %d: %v", tmxerrors.ErrMalformedTileData, i, err)
		}
		tiles[i] = uint32(v)
	}
	return tiles, nil
}

func decodeBase64(compression, text string, count int) ([]uint32, error) {
	raw, err := base64.StdEncoding.DecodeString(stripSpace(text))
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", tmxerrors.ErrMalformedTileData, err)
	}

	var r io.Reader = bytes.NewReader(raw)
	if open, ok := Lookup(compression); ok {
		rc, err := open(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", tmxerrors.ErrMalformedTileData, compression, err)
		}
		defer rc.Close()
		r = rc
	}

	buf := make([]byte, 4*count)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: layer needs %d bytes", tmxerrors.ErrTruncatedTileData, len(buf))
		}
		return nil, fmt.Errorf("%w: %s: %v", tmxerrors.ErrMalformedTileData, compression, err)
	}

	tiles := make([]uint32, count)
	for i := range tiles {
		tiles[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return tiles, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
