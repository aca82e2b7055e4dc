package attr

import (
	"image/color"

	"github.com/beevik/etree"
)

// Reader reads several attributes of one element and keeps the first
// coercion error. Once an error is recorded every further read returns the
// zero value.
type Reader struct {
	el  *etree.Element
	err error
}

// NewReader returns a Reader for el.
func NewReader(el *etree.Element) *Reader {
	return &Reader{el: el}
}

// Err returns the first error encountered.
func (r *Reader) Err() error { return r.err }

func (r *Reader) String(name, def string) string {
	if r.err != nil {
		return ""
	}
	return String(r.el, name, def)
}

func (r *Reader) Int(name string, def int) int {
	return read(r, func() (int, error) { return Int(r.el, name, def) })
}

func (r *Reader) Count(name string, def int) int {
	return read(r, func() (int, error) { return Count(r.el, name, def) })
}

func (r *Reader) Uint32(name string, def uint32) uint32 {
	return read(r, func() (uint32, error) { return Uint32(r.el, name, def) })
}

func (r *Reader) Float(name string, def float64) float64 {
	return read(r, func() (float64, error) { return Float(r.el, name, def) })
}

func (r *Reader) Bool(name string, def bool) bool {
	return read(r, func() (bool, error) { return Bool(r.el, name, def) })
}

func (r *Reader) Color(name string, def color.RGBA) color.RGBA {
	return read(r, func() (color.RGBA, error) { return Color(r.el, name, def) })
}

func read[T any](r *Reader, get func() (T, error)) T {
	var zero T
	if r.err != nil {
		return zero
	}
	v, err := get()
	if err != nil {
		r.err = err
		return zero
	}
	return v
}
