// Package resolve inlines externally referenced tilesets into a map
// document.
package resolve

import (
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	tmxerrors "github.com/KimNorgaard/go-tmx/errors"
	"github.com/KimNorgaard/go-tmx/internal/attr"
)

// FetchFunc loads the tileset document referenced by source.
type FetchFunc func(source string) (*etree.Document, error)

// copied lists the root attributes of an external tileset that are carried
// over when present. name, tilewidth and tileheight are always written.
var copied = []string{"spacing", "margin", "tilecount", "columns"}

// Tilesets returns a deep copy of doc in which every direct tileset child of
// the root that carries a source attribute has the referenced tileset merged
// into it. doc and the fetched documents are not modified.
//
// Resolution is one level deep: fetched tilesets are not scanned for
// further references.
func Tilesets(doc *etree.Document, fetch FetchFunc, log *zap.Logger) (*etree.Document, error) {
	out := doc.Copy()
	root := out.Root()
	if root == nil {
		return out, nil
	}

	for _, el := range root.SelectElements("tileset") {
		source := attr.String(el, "source", "")
		if source == "" {
			continue
		}
		if err := inline(el, source, fetch); err != nil {
			return nil, err
		}
		log.Debug("resolved external tileset",
			zap.String("source", source),
			zap.String("name", attr.String(el, "name", "")))
	}
	return out, nil
}

func inline(el *etree.Element, source string, fetch FetchFunc) error {
	ext, err := fetch(source)
	if err != nil {
		return &tmxerrors.TilesetError{Source: source, Err: err}
	}
	var extRoot *etree.Element
	if ext != nil {
		extRoot = ext.Root()
	}
	if extRoot == nil {
		return &tmxerrors.TilesetError{
			Source: source,
			Err:    &tmxerrors.RootError{Source: source, Want: "tileset"},
		}
	}
	if !strings.EqualFold(extRoot.Tag, "tileset") {
		return &tmxerrors.TilesetError{
			Source: source,
			Err:    &tmxerrors.RootError{Source: source, Want: "tileset", Got: extRoot.Tag},
		}
	}

	el.CreateAttr("name", attr.String(extRoot, "name", ""))
	el.CreateAttr("tilewidth", attr.String(extRoot, "tilewidth", "0"))
	el.CreateAttr("tileheight", attr.String(extRoot, "tileheight", "0"))
	for _, key := range copied {
		if a := extRoot.SelectAttr(key); a != nil {
			el.CreateAttr(key, a.Value)
		}
	}

	// Graft from a copy so a cached document can be shared between reads.
	for _, child := range extRoot.Copy().ChildElements() {
		el.AddChild(child)
	}
	return nil
}
