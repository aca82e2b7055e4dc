package tmx

import (
	"fmt"
	"image/color"
)

// Version is a two-component format version.
type Version struct {
	Major int
	Minor int
}

func (v Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

// Map is a parsed tile map.
type Map struct {
	Version         Version
	Orientation     string
	RenderOrder     string
	Width           int // in tiles
	Height          int // in tiles
	TileWidth       int // in pixels
	TileHeight      int // in pixels
	BackgroundColor color.RGBA
	Properties      Properties
	Tilesets        []*Tileset
	Layers          []Layer
}

// TilesetForGID returns the tileset that owns the global tile id gid: the
// one with the greatest FirstID not above gid. It returns nil for the empty
// cell id 0 and when no tileset qualifies.
func (m *Map) TilesetForGID(gid uint32) *Tileset {
	if gid == 0 {
		return nil
	}
	var best *Tileset
	for _, ts := range m.Tilesets {
		if ts.FirstID <= gid && (best == nil || ts.FirstID > best.FirstID) {
			best = ts
		}
	}
	return best
}

// TileLayers returns the tile layers of m in document order.
func (m *Map) TileLayers() []*TileLayer {
	var out []*TileLayer
	for _, l := range m.Layers {
		if tl, ok := l.(*TileLayer); ok {
			out = append(out, tl)
		}
	}
	return out
}

// ObjectGroups returns the object groups of m in document order.
func (m *Map) ObjectGroups() []*ObjectGroup {
	var out []*ObjectGroup
	for _, l := range m.Layers {
		if og, ok := l.(*ObjectGroup); ok {
			out = append(out, og)
		}
	}
	return out
}

// Tileset is a grid of tile images contributing the global ids starting at
// FirstID.
type Tileset struct {
	FirstID    uint32
	Source     string // external reference, empty for inline tilesets
	Name       string
	TileWidth  int
	TileHeight int
	Spacing    int
	Margin     int
	TileCount  int
	Columns    int
	OffsetX    int
	OffsetY    int
	Image      *Image // nil when the tileset has no image element
	Properties Properties
	Tiles      []*Tile
}

// Contains reports whether gid falls into the tileset's id range. It needs
// TileCount; without it only FirstID itself is known to belong to ts.
func (ts *Tileset) Contains(gid uint32) bool {
	if gid < ts.FirstID {
		return false
	}
	if ts.TileCount == 0 {
		return gid == ts.FirstID
	}
	return uint64(gid) < uint64(ts.FirstID)+uint64(ts.TileCount)
}

// Tile returns the metadata record for the tile-local id, or nil.
func (ts *Tileset) Tile(id int) *Tile {
	for _, t := range ts.Tiles {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Image references a tileset image by path.
type Image struct {
	Source string
	Width  int
	Height int
	Trans  *color.RGBA // transparent color key, if declared
}

// Tile holds per-tile metadata of a tileset.
type Tile struct {
	ID         int // tile-local id
	Properties Properties
}
