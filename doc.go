/*
Package tmx reads tile maps in the TMX format written by the Tiled map
editor.

A map is read in one call and returned fully populated, or not at all:

	m, err := tmx.ReadFile("levels/intro.tmx")
	if err != nil {
		// handle error
	}
	for _, l := range m.Layers {
		switch l := l.(type) {
		case *tmx.TileLayer:
			fmt.Println(l.Name, l.At(0, 0))
		case *tmx.ObjectGroup:
			fmt.Println(l.Name, len(l.Objects))
		}
	}

Reading follows a fixed order. External tilesets referenced with a source
attribute are loaded and merged into a copy of the document first. The
header, the map properties, the tilesets and finally the layers are then
read from the merged tree. Layers keep the order in which they appear in the
document, so tile layers and object groups may interleave.

Tile data may be stored as CSV or as base64, the latter optionally
compressed with gzip, zlib or zstd. Cells are unsigned 32-bit global tile
ids; Map.TilesetForGID finds the tileset a gid belongs to. Flip flags in the
high bits are passed through as they are. A data element with a missing or
unknown encoding yields a layer without tiles.

External tilesets are loaded through a Fetcher. ReadFile resolves them
relative to the map file; Parse and NewDecoder resolve them relative to the
current directory unless WithBaseDir or WithFetcher is given. A Cache lets
many reads share the tileset documents they have in common:

	cache := tmx.NewCache(tmx.DirFetcher("assets"))
	a, err := tmx.ReadFile("assets/a.tmx", tmx.WithFetcher(cache))
	b, err := tmx.ReadFile("assets/b.tmx", tmx.WithFetcher(cache))

Errors can be matched with errors.Is against the sentinels of package
tmx/errors (re-exported here), and with errors.As to reach the attribute,
element or source that caused them.
*/
package tmx
