// Package attr coerces element attributes into typed values.
//
// A missing attribute yields the supplied default. A present attribute that
// cannot be converted is an *errors.AttributeError; it is never silently
// replaced by the default.
package attr

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	tmxerrors "github.com/KimNorgaard/go-tmx/errors"
)

var (
	errNegative = errors.New("value must not be negative")
	errBool     = errors.New(`want "true" or "false"`)
	errVersion  = errors.New("want major.minor")
	errColor    = errors.New("want #RRGGBB or #AARRGGBB")
)

// Has reports whether el carries the attribute name.
func Has(el *etree.Element, name string) bool {
	return el.SelectAttr(name) != nil
}

// String returns the raw attribute value or def.
func String(el *etree.Element, name, def string) string {
	if a := el.SelectAttr(name); a != nil {
		return a.Value
	}
	return def
}

// Int returns the attribute as a signed integer.
func Int(el *etree.Element, name string, def int) (int, error) {
	a := el.SelectAttr(name)
	if a == nil {
		return def, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(a.Value))
	if err != nil {
		return 0, malformed(el, a, err)
	}
	return v, nil
}

// Count returns the attribute as a non-negative integer. It is used for
// dimensions, spacing and margins.
func Count(el *etree.Element, name string, def int) (int, error) {
	v, err := Int(el, name, def)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, malformed(el, el.SelectAttr(name), errNegative)
	}
	return v, nil
}

// Uint32 returns the attribute as an unsigned 32-bit integer, the width of a
// global tile id.
func Uint32(el *etree.Element, name string, def uint32) (uint32, error) {
	a := el.SelectAttr(name)
	if a == nil {
		return def, nil
	}
	v, err := strconv.ParseUint(strings.TrimSpace(a.Value), 10, 32)
	if err != nil {
		return 0, malformed(el, a, err)
	}
	return uint32(v), nil
}

// Float returns the attribute as a float64.
func Float(el *etree.Element, name string, def float64) (float64, error) {
	a := el.SelectAttr(name)
	if a == nil {
		return def, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(a.Value), 64)
	if err != nil {
		return 0, malformed(el, a, err)
	}
	return v, nil
}

// Bool returns the attribute as a bool. Besides "true" and "false" the
// digits "1" and "0" are accepted, which is how Tiled writes visibility.
func Bool(el *etree.Element, name string, def bool) (bool, error) {
	a := el.SelectAttr(name)
	if a == nil {
		return def, nil
	}
	switch a.Value {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, malformed(el, a, errBool)
}

// Version returns a dotted version attribute as its major and minor
// components. def is parsed the same way when the attribute is missing.
// Up to two trailing components are accepted and dropped.
func Version(el *etree.Element, name, def string) (major, minor int, err error) {
	a := el.SelectAttr(name)
	raw := def
	if a != nil {
		raw = a.Value
	}
	major, minor, err = parseVersion(raw)
	if err != nil {
		if a == nil {
			return 0, 0, fmt.Errorf("attr: invalid default version %q: %w", def, err)
		}
		return 0, 0, malformed(el, a, err)
	}
	return major, minor, nil
}

func parseVersion(s string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 || len(parts) > 4 {
		return 0, 0, errVersion
	}
	var nums [2]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, err
		}
		if n < 0 {
			return 0, 0, errNegative
		}
		if i < len(nums) {
			nums[i] = n
		}
	}
	return nums[0], nums[1], nil
}

// Color returns a hex color attribute. Accepted forms are RRGGBB and
// AARRGGBB, each with an optional leading '#'. Six-digit colors are opaque.
// An empty value is treated like a missing attribute.
func Color(el *etree.Element, name string, def color.RGBA) (color.RGBA, error) {
	a := el.SelectAttr(name)
	if a == nil || strings.TrimSpace(a.Value) == "" {
		return def, nil
	}
	c, err := ParseColor(a.Value)
	if err != nil {
		return color.RGBA{}, malformed(el, a, err)
	}
	return c, nil
}

// ParseColor parses RRGGBB or AARRGGBB with an optional leading '#'.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, errColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, errColor
	}
	c := color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
	if len(s) == 8 {
		c.A = uint8(v >> 24)
	}
	return c, nil
}

func malformed(el *etree.Element, a *etree.Attr, err error) error {
	return &tmxerrors.AttributeError{
		Element: el.Tag,
		Name:    a.Key,
		Value:   a.Value,
		Err:     err,
	}
}
