package tmx

import (
	"image/color"

	"github.com/beevik/etree"

	"github.com/KimNorgaard/go-tmx/internal/attr"
)

func (ds *decodeState) tilesets(root *etree.Element, m *Map) error {
	for _, el := range root.SelectElements("tileset") {
		ts, err := ds.tileset(el)
		if err != nil {
			return err
		}
		m.Tilesets = append(m.Tilesets, ts)
	}
	return nil
}

func (ds *decodeState) tileset(el *etree.Element) (*Tileset, error) {
	r := attr.NewReader(el)
	ts := &Tileset{
		FirstID:    r.Uint32("firstgid", 0),
		Source:     r.String("source", ""),
		Name:       r.String("name", ""),
		TileWidth:  r.Count("tilewidth", 0),
		TileHeight: r.Count("tileheight", 0),
		Spacing:    r.Count("spacing", 0),
		Margin:     r.Count("margin", 0),
		TileCount:  r.Count("tilecount", 0),
		Columns:    r.Count("columns", 0),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}

	if img := el.SelectElement("image"); img != nil {
		image, err := readImage(img)
		if err != nil {
			return nil, err
		}
		ts.Image = image
	}

	if off := el.SelectElement("tileoffset"); off != nil {
		r := attr.NewReader(off)
		ts.OffsetX = r.Int("x", 0)
		ts.OffsetY = r.Int("y", 0)
		if err := r.Err(); err != nil {
			return nil, err
		}
	}

	readProperties(el, &ts.Properties)

	for _, tileEl := range el.SelectElements("tile") {
		id, err := attr.Count(tileEl, "id", 0)
		if err != nil {
			return nil, err
		}
		t := &Tile{ID: id}
		readProperties(tileEl, &t.Properties)
		ts.Tiles = append(ts.Tiles, t)
	}
	return ts, nil
}

func readImage(el *etree.Element) (*Image, error) {
	r := attr.NewReader(el)
	img := &Image{
		Source: r.String("source", ""),
		Width:  r.Count("width", 0),
		Height: r.Count("height", 0),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	if attr.String(el, "trans", "") != "" {
		c, err := attr.Color(el, "trans", color.RGBA{})
		if err != nil {
			return nil, err
		}
		img.Trans = &c
	}
	return img, nil
}
