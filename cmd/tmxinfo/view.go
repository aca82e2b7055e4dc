package main

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/KimNorgaard/go-tmx"
)

type mapView struct {
	File        string            `json:"file" yaml:"file"`
	Version     string            `json:"version" yaml:"version"`
	Orientation string            `json:"orientation" yaml:"orientation"`
	Width       int               `json:"width" yaml:"width"`
	Height      int               `json:"height" yaml:"height"`
	TileWidth   int               `json:"tileWidth" yaml:"tileWidth"`
	TileHeight  int               `json:"tileHeight" yaml:"tileHeight"`
	Background  string            `json:"background,omitempty" yaml:"background,omitempty"`
	Properties  map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
	Tilesets    []tilesetView     `json:"tilesets" yaml:"tilesets"`
	Layers      []layerView       `json:"layers" yaml:"layers"`
}

type tilesetView struct {
	FirstID uint32 `json:"firstId" yaml:"firstId"`
	Name    string `json:"name" yaml:"name"`
	Source  string `json:"source,omitempty" yaml:"source,omitempty"`
	Image   string `json:"image,omitempty" yaml:"image,omitempty"`
	Tiles   int    `json:"tiles" yaml:"tiles"`
}

type layerView struct {
	Kind    string `json:"kind" yaml:"kind"`
	Name    string `json:"name" yaml:"name"`
	Visible bool   `json:"visible" yaml:"visible"`
	Cells   int    `json:"cells,omitempty" yaml:"cells,omitempty"`
	Used    int    `json:"used,omitempty" yaml:"used,omitempty"`
	Tiles   int    `json:"tileObjects,omitempty" yaml:"tileObjects,omitempty"`
	Rects   int    `json:"rectangles,omitempty" yaml:"rectangles,omitempty"`
}

func newMapView(file string, m *tmx.Map) mapView {
	v := mapView{
		File:        file,
		Version:     m.Version.String(),
		Orientation: m.Orientation,
		Width:       m.Width,
		Height:      m.Height,
		TileWidth:   m.TileWidth,
		TileHeight:  m.TileHeight,
		Background:  hexColor(m.BackgroundColor),
		Tilesets:    []tilesetView{},
		Layers:      []layerView{},
	}
	if m.Properties.Len() > 0 {
		v.Properties = m.Properties.Map()
	}
	for _, ts := range m.Tilesets {
		tv := tilesetView{FirstID: ts.FirstID, Name: ts.Name, Source: ts.Source, Tiles: ts.TileCount}
		if ts.Image != nil {
			tv.Image = ts.Image.Source
		}
		v.Tilesets = append(v.Tilesets, tv)
	}
	for _, l := range m.Layers {
		lv := layerView{Name: l.Info().Name, Visible: l.Info().Visible}
		switch l := l.(type) {
		case *tmx.TileLayer:
			lv.Kind = "tiles"
			lv.Cells = len(l.Tiles)
			for _, gid := range l.Tiles {
				if gid != 0 {
					lv.Used++
				}
			}
		case *tmx.ObjectGroup:
			lv.Kind = "objects"
			for _, obj := range l.Objects {
				switch obj.(type) {
				case *tmx.TileObject:
					lv.Tiles++
				case *tmx.RectangleObject:
					lv.Rects++
				}
			}
		}
		v.Layers = append(v.Layers, lv)
	}
	return v
}

func hexColor(c color.RGBA) string {
	if c == (color.RGBA{}) {
		return ""
	}
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.A, c.R, c.G, c.B)
}

func writeText(w io.Writer, views []mapView) error {
	var sb strings.Builder
	for i, v := range views {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s: %s map %dx%d, tiles %dx%d, version %s\n",
			v.File, v.Orientation, v.Width, v.Height, v.TileWidth, v.TileHeight, v.Version)
		for _, ts := range v.Tilesets {
			fmt.Fprintf(&sb, "  tileset %q firstgid=%d", ts.Name, ts.FirstID)
			if ts.Source != "" {
				fmt.Fprintf(&sb, " source=%s", ts.Source)
			}
			sb.WriteString("\n")
		}
		for _, l := range v.Layers {
			switch l.Kind {
			case "tiles":
				fmt.Fprintf(&sb, "  layer %q: %d/%d cells used\n", l.Name, l.Used, l.Cells)
			case "objects":
				fmt.Fprintf(&sb, "  objects %q: %d tile, %d rectangle\n", l.Name, l.Tiles, l.Rects)
			}
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeJSON(w io.Writer, views []mapView) error {
	b, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func writeYAML(w io.Writer, views []mapView) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(views); err != nil {
		return err
	}
	return enc.Close()
}
