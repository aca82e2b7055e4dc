package tmx

import "image/color"

// Layer is either a *TileLayer or an *ObjectGroup.
// Use a type switch to reach the concrete variant.
type Layer interface {
	// Info returns the attributes shared by both variants.
	Info() *LayerInfo
	layer()
}

// LayerInfo holds the placement and display attributes common to all layers.
type LayerInfo struct {
	Name       string
	X          int // offset in tiles
	Y          int // offset in tiles
	Width      int // in tiles
	Height     int // in tiles
	Opacity    float64
	Visible    bool
	Properties Properties
}

// TileLayer is a dense grid of global tile ids.
type TileLayer struct {
	LayerInfo

	// Tiles holds Width*Height cells in row-major order. The value 0 marks
	// an empty cell. Layers with an unsupported or missing data encoding
	// have no tiles.
	Tiles []uint32
}

// At returns the cell at column x, row y, or 0 when the position is outside
// the decoded grid.
func (l *TileLayer) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return 0
	}
	i := y*l.Width + x
	if i >= len(l.Tiles) {
		return 0
	}
	return l.Tiles[i]
}

func (l *TileLayer) Info() *LayerInfo { return &l.LayerInfo }
func (*TileLayer) layer()             {}

// ObjectGroup is a layer of freely positioned objects.
type ObjectGroup struct {
	LayerInfo
	Color   color.RGBA
	Objects []Object
}

func (g *ObjectGroup) Info() *LayerInfo { return &g.LayerInfo }
func (*ObjectGroup) layer()             {}

// Object is either a *TileObject or a *RectangleObject.
type Object interface {
	// Info returns the attributes shared by both variants.
	Info() *ObjectInfo
	object()
}

// ObjectInfo holds the attributes common to all objects. Positions and
// sizes are in pixels.
type ObjectInfo struct {
	ID         int
	Name       string
	Type       string
	X          float64
	Y          float64
	Width      float64
	Height     float64
	Rotation   float64 // degrees, clockwise
	Visible    bool
	Properties Properties
}

// TileObject is an object drawn with a tile.
type TileObject struct {
	ObjectInfo
	GID uint32
}

func (o *TileObject) Info() *ObjectInfo { return &o.ObjectInfo }
func (*TileObject) object()             {}

// RectangleObject is a plain rectangular area.
type RectangleObject struct {
	ObjectInfo
}

func (o *RectangleObject) Info() *ObjectInfo { return &o.ObjectInfo }
func (*RectangleObject) object()             {}
