package main

import (
	"path/filepath"

	"github.com/beevik/etree"

	"github.com/KimNorgaard/go-tmx"
)

// relativeTo resolves tileset sources against the directory of the map file
// before asking the shared cache, so equal files get equal keys.
func relativeTo(mapFile string, cache *tmx.Cache) tmx.Fetcher {
	dir := filepath.Dir(mapFile)
	return tmx.FetcherFunc(func(source string) (*etree.Document, error) {
		if filepath.IsAbs(source) {
			return cache.Fetch(source)
		}
		return cache.Fetch(filepath.Join(dir, filepath.FromSlash(source)))
	})
}
