package tmx

import (
	"cmp"
	"slices"

	"github.com/beevik/etree"
	"golang.org/x/text/cases"

	"github.com/KimNorgaard/go-tmx/internal/attr"
)

// Property is a single name/value pair.
type Property struct {
	Name  string
	Value string
}

// Properties is a set of string properties keyed case-insensitively.
// The zero value is an empty set ready to use.
type Properties struct {
	entries map[string]Property
}

func foldKey(name string) string {
	return cases.Fold().String(name)
}

// Set stores value under name, replacing any entry whose name differs only
// in case. The most recent spelling of the name is kept.
func (p *Properties) Set(name, value string) {
	if p.entries == nil {
		p.entries = make(map[string]Property)
	}
	p.entries[foldKey(name)] = Property{Name: name, Value: value}
}

// Get returns the value stored under name, ignoring case.
func (p Properties) Get(name string) (string, bool) {
	e, ok := p.entries[foldKey(name)]
	return e.Value, ok
}

// Value returns the value stored under name, or "" when absent.
func (p Properties) Value(name string) string {
	v, _ := p.Get(name)
	return v
}

// Len returns the number of properties.
func (p Properties) Len() int { return len(p.entries) }

// All returns the properties sorted by name.
func (p Properties) All() []Property {
	out := make([]Property, 0, len(p.entries))
	for _, e := range p.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Property) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// Map returns the properties as a plain map keyed by their stored names.
func (p Properties) Map() map[string]string {
	out := make(map[string]string, len(p.entries))
	for _, e := range p.entries {
		out[e.Name] = e.Value
	}
	return out
}

// readProperties adds the entries of the first properties child of el to
// dst. A missing block leaves dst untouched.
func readProperties(el *etree.Element, dst *Properties) {
	block := el.SelectElement("properties")
	if block == nil {
		return
	}
	for _, prop := range block.SelectElements("property") {
		name := attr.String(prop, "name", "")
		value := attr.String(prop, "value", "")
		if !attr.Has(prop, "value") {
			// Multi-line string values are stored as element text.
			value = prop.Text()
		}
		dst.Set(name, value)
	}
}
