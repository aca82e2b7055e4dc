// Package errors defines the error kinds reported while reading a map.
//
// Every error returned by the tmx package matches one of the sentinels below
// with errors.Is. The typed errors carry the element, attribute, layer or
// source path needed to locate the problem in the input.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedAttribute reports a present attribute whose value cannot be
	// coerced to the expected type.
	ErrMalformedAttribute = errors.New("malformed attribute")
	// ErrMissingRoot reports a document without the expected root element.
	ErrMissingRoot = errors.New("missing root element")
	// ErrInvalidTilesetReference reports an external tileset that could not
	// be fetched or is not a tileset document.
	ErrInvalidTilesetReference = errors.New("invalid tileset reference")
	// ErrTruncatedTileData reports binary tile data shorter than the layer
	// dimensions require.
	ErrTruncatedTileData = errors.New("truncated tile data")
	// ErrTileCountMismatch reports CSV tile data whose token count differs
	// from the layer dimensions.
	ErrTileCountMismatch = errors.New("tile count mismatch")
	// ErrMalformedTileData reports tile data that cannot be decoded at all,
	// such as invalid base64, a corrupt compression stream, or a CSV token
	// that is not an unsigned 32-bit integer.
	ErrMalformedTileData = errors.New("malformed tile data")
	// ErrTileDataTooLarge reports a layer whose cell count exceeds the
	// configured limit.
	ErrTileDataTooLarge = errors.New("tile data too large")
)

// AttributeError is returned when a present attribute fails type coercion.
type AttributeError struct {
	Element string // element tag
	Name    string // attribute name
	Value   string // raw attribute value
	Err     error  // underlying conversion error
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("tmx: malformed attribute %s=%q on <%s>: %v", e.Name, e.Value, e.Element, e.Err)
}

func (e *AttributeError) Unwrap() []error { return []error{ErrMalformedAttribute, e.Err} }

// RootError is returned when a document lacks the expected root element.
// Source is empty for the main document.
type RootError struct {
	Source string
	Want   string
	Got    string
}

func (e *RootError) Error() string {
	doc := "document"
	if e.Source != "" {
		doc = fmt.Sprintf("document %q", e.Source)
	}
	if e.Got == "" {
		return fmt.Sprintf("tmx: %s has no root element, want <%s>", doc, e.Want)
	}
	return fmt.Sprintf("tmx: %s has root <%s>, want <%s>", doc, e.Got, e.Want)
}

func (e *RootError) Unwrap() error { return ErrMissingRoot }

// TilesetError is returned when an external tileset reference cannot be
// resolved.
type TilesetError struct {
	Source string
	Err    error
}

func (e *TilesetError) Error() string {
	return fmt.Sprintf("tmx: external tileset %q: %v", e.Source, e.Err)
}

func (e *TilesetError) Unwrap() []error { return []error{ErrInvalidTilesetReference, e.Err} }

// TileDataError is returned when the data of a tile layer cannot be decoded.
// Err wraps one of the tile data sentinels.
type TileDataError struct {
	Layer string
	Err   error
}

func (e *TileDataError) Error() string {
	return fmt.Sprintf("tmx: layer %q: %v", e.Layer, e.Err)
}

func (e *TileDataError) Unwrap() error { return e.Err }
