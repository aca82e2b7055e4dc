package tmx

import (
	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/KimNorgaard/go-tmx/internal/attr"
)

// Shapes that mark an object as something other than a rectangle. Objects
// carrying one of them are skipped.
var unsupportedShapes = []string{"ellipse", "polygon", "polyline"}

// object returns the object described by el. ok is false when the object is
// a shape this package does not model. A gid makes a tile object whatever
// shape children it has.
func (ds *decodeState) object(el *etree.Element) (obj Object, ok bool, err error) {
	if !attr.Has(el, "gid") {
		for _, shape := range unsupportedShapes {
			if el.SelectElement(shape) != nil {
				ds.log.Debug("skipping unsupported object shape",
					zap.String("object", attr.String(el, "name", "")),
					zap.String("shape", shape))
				return nil, false, nil
			}
		}
	}

	var info ObjectInfo
	r := attr.NewReader(el)
	info.ID = r.Int("id", 0)
	info.Name = r.String("name", "")
	info.Type = r.String("type", r.String("class", ""))
	info.X = r.Float("x", 0)
	info.Y = r.Float("y", 0)
	info.Width = r.Float("width", 0)
	info.Height = r.Float("height", 0)
	info.Rotation = r.Float("rotation", 0)
	info.Visible = r.Bool("visible", true)
	gid := r.Uint32("gid", 0)
	if err := r.Err(); err != nil {
		return nil, false, err
	}
	readProperties(el, &info.Properties)

	if attr.Has(el, "gid") {
		return &TileObject{ObjectInfo: info, GID: gid}, true, nil
	}
	return &RectangleObject{ObjectInfo: info}, true, nil
}
