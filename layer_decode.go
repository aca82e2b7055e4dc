package tmx

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	tmxerrors "github.com/KimNorgaard/go-tmx/errors"
	"github.com/KimNorgaard/go-tmx/internal/attr"
	"github.com/KimNorgaard/go-tmx/internal/tiledata"
)

// layers appends tile layers and object groups in document order.
func (ds *decodeState) layers(root *etree.Element, m *Map) error {
	for _, el := range root.ChildElements() {
		var (
			l   Layer
			err error
		)
		switch {
		case strings.EqualFold(el.Tag, "layer"):
			l, err = ds.tileLayer(el)
		case strings.EqualFold(el.Tag, "objectgroup"):
			l, err = ds.objectGroup(el)
		default:
			continue
		}
		if err != nil {
			return err
		}
		m.Layers = append(m.Layers, l)
	}
	return nil
}

func readLayerInfo(el *etree.Element, info *LayerInfo) error {
	r := attr.NewReader(el)
	info.Name = r.String("name", "")
	info.X = r.Int("x", 0)
	info.Y = r.Int("y", 0)
	info.Width = r.Count("width", 0)
	info.Height = r.Count("height", 0)
	info.Opacity = r.Float("opacity", 1)
	info.Visible = r.Bool("visible", true)
	if err := r.Err(); err != nil {
		return err
	}
	readProperties(el, &info.Properties)
	return nil
}

func (ds *decodeState) tileLayer(el *etree.Element) (*TileLayer, error) {
	l := &TileLayer{}
	if err := readLayerInfo(el, &l.LayerInfo); err != nil {
		return nil, err
	}

	data := el.SelectElement("data")
	if data == nil {
		l.Tiles = []uint32{}
		return l, nil
	}
	tiles, err := ds.tileData(l.Name, l.Width, l.Height, data)
	if err != nil {
		return nil, &tmxerrors.TileDataError{Layer: l.Name, Err: err}
	}
	l.Tiles = tiles
	return l, nil
}

func (ds *decodeState) tileData(layer string, width, height int, data *etree.Element) ([]uint32, error) {
	encoding := attr.String(data, "encoding", "")
	if !tiledata.Supported(encoding) {
		ds.log.Debug("unsupported tile data encoding, layer left empty",
			zap.String("layer", layer),
			zap.String("encoding", encoding))
		return []uint32{}, nil
	}

	if height != 0 && width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d cells", tmxerrors.ErrTileDataTooLarge, width, height)
	}
	count := width * height
	if count > ds.opts.maxTiles {
		return nil, fmt.Errorf("%w: %d cells, limit %d", tmxerrors.ErrTileDataTooLarge, count, ds.opts.maxTiles)
	}

	compression := attr.String(data, "compression", "")
	if compression != "" {
		if _, ok := tiledata.Lookup(compression); !ok {
			ds.log.Debug("unknown tile data compression, reading bytes as is",
				zap.String("layer", layer),
				zap.String("compression", compression))
		}
	}

	return tiledata.Decode(encoding, compression, data.Text(), count)
}

func (ds *decodeState) objectGroup(el *etree.Element) (*ObjectGroup, error) {
	g := &ObjectGroup{}
	if err := readLayerInfo(el, &g.LayerInfo); err != nil {
		return nil, err
	}
	c, err := attr.Color(el, "color", color.RGBA{})
	if err != nil {
		return nil, err
	}
	g.Color = c

	for _, objEl := range el.SelectElements("object") {
		obj, ok, err := ds.object(objEl)
		if err != nil {
			return nil, err
		}
		if ok {
			g.Objects = append(g.Objects, obj)
		}
	}
	return g, nil
}
