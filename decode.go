package tmx

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	tmxerrors "github.com/KimNorgaard/go-tmx/errors"
	"github.com/KimNorgaard/go-tmx/internal/resolve"
)

// Decoder reads a map document from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// It is the caller's responsibility to call Close on r if required.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the whole input and parses it into a Map.
//
// Note: the input is read into memory as an XML tree before parsing.
func (d *Decoder) Decode() (*Map, error) {
	if d.r == nil {
		return nil, fmt.Errorf("tmx: Decode(nil reader)")
	}
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(d.r); err != nil {
		return nil, fmt.Errorf("tmx: reading document: %w", err)
	}
	return ReadDocument(doc, d.opts...)
}

// ReadDocument parses an already loaded document. External tilesets are
// fetched through the configured Fetcher and merged into a copy of doc;
// doc itself is not modified.
func ReadDocument(doc *etree.Document, opts ...Option) (*Map, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("tmx: ReadDocument(nil document)")
	}
	root := doc.Root()
	if root == nil {
		return nil, &tmxerrors.RootError{Want: "map"}
	}
	if !strings.EqualFold(root.Tag, "map") {
		return nil, &tmxerrors.RootError{Want: "map", Got: root.Tag}
	}

	resolved, err := resolve.Tilesets(doc, o.fetcher.Fetch, o.logger)
	if err != nil {
		return nil, err
	}

	ds := &decodeState{opts: o, log: o.logger}
	return ds.decodeMap(resolved.Root())
}

type decodeState struct {
	opts *options
	log  *zap.Logger
}

func (ds *decodeState) decodeMap(root *etree.Element) (*Map, error) {
	m := &Map{}
	if err := ds.header(root, m); err != nil {
		return nil, err
	}
	readProperties(root, &m.Properties)
	if err := ds.tilesets(root, m); err != nil {
		return nil, err
	}
	if err := ds.layers(root, m); err != nil {
		return nil, err
	}
	return m, nil
}
