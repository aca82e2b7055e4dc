//go:build go1.18

package tmx_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-tmx"
	"github.com/KimNorgaard/go-tmx/internal/testutil"
)

func FuzzParse(f *testing.F) {
	// Seed the corpus with the map fixtures.
	names, err := testutil.Maps()
	if err != nil {
		f.Fatalf("failed to find seed files: %v", err)
	}
	for _, name := range names {
		data, err := testutil.ReadTestData(name)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", name, err)
		}
		f.Add(data)
	}

	f.Add([]byte(`<map/>`))
	f.Add([]byte(`<map><layer width="1" height="1"><data encoding="csv">1</data></layer></map>`))
	f.Add([]byte(`<map><layer width="1" height="1"><data encoding="base64" compression="zlib">eJxjZGBgAAAACAAC</data></layer></map>`))

	fetcher := tmx.FetcherFunc(func(string) (*etree.Document, error) {
		doc := etree.NewDocument()
		ts := doc.CreateElement("tileset")
		ts.CreateAttr("name", "fuzz")
		return doc, nil
	})

	f.Fuzz(func(t *testing.T, data []byte) {
		// Keep hostile sizes from exhausting memory.
		m, err := tmx.Parse(data, tmx.WithFetcher(fetcher), tmx.MaxTiles(1<<16))
		if err != nil {
			require.Nil(t, m)
			return
		}
		require.NotNil(t, m)

		// A decoded tile layer either has no tiles or one per cell.
		for _, l := range m.TileLayers() {
			if len(l.Tiles) != 0 {
				require.Equal(t, l.Width*l.Height, len(l.Tiles))
			}
		}
	})
}
