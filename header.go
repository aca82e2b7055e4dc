package tmx

import (
	"image/color"

	"github.com/beevik/etree"

	"github.com/KimNorgaard/go-tmx/internal/attr"
)

func (ds *decodeState) header(root *etree.Element, m *Map) error {
	major, minor, err := attr.Version(root, "version", "1.0")
	if err != nil {
		return err
	}
	m.Version = Version{Major: major, Minor: minor}

	r := attr.NewReader(root)
	m.Orientation = r.String("orientation", "")
	m.RenderOrder = r.String("renderorder", "right-down")
	m.Width = r.Count("width", 0)
	m.Height = r.Count("height", 0)
	m.TileWidth = r.Count("tilewidth", 0)
	m.TileHeight = r.Count("tileheight", 0)
	m.BackgroundColor = r.Color("backgroundcolor", color.RGBA{})
	return r.Err()
}
