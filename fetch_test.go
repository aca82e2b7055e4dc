package tmx_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-tmx"
	"github.com/KimNorgaard/go-tmx/internal/testutil"
)

// writeFixtures copies the embedded map and tileset fixtures into a
// temporary directory and returns it.
func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"external.tmx", "inline.tmx", "tilesets/terrain.tsx"} {
		data, err := testutil.ReadTestData(name)
		require.NoError(t, err)
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, data, 0o644))
	}
	return dir
}

func TestExternalTilesetMatchesInline(t *testing.T) {
	external := readFixture(t, "external.tmx")
	inline := readFixture(t, "inline.tmx")

	require.Len(t, external.Tilesets, 1)
	require.Equal(t, "tilesets/terrain.tsx", external.Tilesets[0].Source)

	ts := external.Tilesets[0]
	require.Equal(t, "Terrain", ts.Name)
	require.Equal(t, 16, ts.TileWidth)
	require.Equal(t, 16, ts.TileHeight)
	require.Equal(t, 2, ts.Spacing)
	require.Equal(t, 1, ts.Margin)
	require.Equal(t, 32, ts.TileCount)
	require.Equal(t, 8, ts.Columns)
	require.Equal(t, 3, ts.OffsetX)
	require.Equal(t, 4, ts.OffsetY)
	require.Equal(t, "terrain.png", ts.Image.Source)
	require.Equal(t, "Forest", ts.Properties.Value("Biome"))
	require.Equal(t, "true", ts.Tile(5).Properties.Value("Solid"))

	ts.Source = ""
	require.Equal(t, inline, external)
}

func TestReadFile(t *testing.T) {
	dir := writeFixtures(t)

	t.Run("Relative To Map", func(t *testing.T) {
		m, err := tmx.ReadFile(filepath.Join(dir, "external.tmx"))
		require.NoError(t, err)
		require.Equal(t, "Terrain", m.Tilesets[0].Name)
	})

	t.Run("Explicit Base Dir Wins", func(t *testing.T) {
		_, err := tmx.ReadFile(filepath.Join(dir, "external.tmx"), tmx.WithBaseDir(t.TempDir()))
		require.ErrorIs(t, err, tmx.ErrInvalidTilesetReference)
	})

	t.Run("Base Dir For Parse", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(dir, "external.tmx"))
		require.NoError(t, err)
		m, err := tmx.Parse(data, tmx.WithBaseDir(dir))
		require.NoError(t, err)
		require.Equal(t, "Terrain", m.Tilesets[0].Name)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := tmx.ReadFile(filepath.Join(dir, "nope.tmx"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDirFetcher(t *testing.T) {
	dir := writeFixtures(t)

	doc, err := tmx.DirFetcher(dir).Fetch("tilesets/terrain.tsx")
	require.NoError(t, err)
	require.Equal(t, "tileset", doc.Root().Tag)

	abs := filepath.Join(dir, "tilesets", "terrain.tsx")
	doc, err = tmx.DirFetcher("/does/not/matter").Fetch(abs)
	require.NoError(t, err)
	require.Equal(t, "tileset", doc.Root().Tag)
}

func TestFSFetcher(t *testing.T) {
	f := tmx.FSFetcher(testutil.FS())

	doc, err := f.Fetch("./tilesets/../tilesets/terrain.tsx")
	require.NoError(t, err)
	require.Equal(t, "Terrain", doc.Root().SelectAttrValue("name", ""))

	_, err = f.Fetch("tilesets/missing.tsx")
	require.Error(t, err)
}

type countingFetcher struct {
	mu    sync.Mutex
	calls map[string]int
	next  tmx.Fetcher
}

func (c *countingFetcher) Fetch(source string) (*etree.Document, error) {
	c.mu.Lock()
	c.calls[source]++
	c.mu.Unlock()
	return c.next.Fetch(source)
}

func TestCache(t *testing.T) {
	counter := &countingFetcher{calls: map[string]int{}, next: tmx.FSFetcher(testutil.FS())}
	cache := tmx.NewCache(counter)

	data, err := testutil.ReadTestData("external.tmx")
	require.NoError(t, err)

	first, err := tmx.Parse(data, tmx.WithFetcher(cache))
	require.NoError(t, err)
	second, err := tmx.Parse(data, tmx.WithFetcher(cache))
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, counter.calls["tilesets/terrain.tsx"])
	require.Equal(t, 1, cache.Len())

	t.Run("Cleaned Keys", func(t *testing.T) {
		_, err := cache.Fetch("tilesets/./terrain.tsx")
		require.NoError(t, err)
		require.Equal(t, 1, cache.Len())
		require.Len(t, counter.calls, 1)
	})

	t.Run("Errors Not Cached", func(t *testing.T) {
		_, err := cache.Fetch("missing.tsx")
		require.Error(t, err)
		_, err = cache.Fetch("missing.tsx")
		require.Error(t, err)
		require.Equal(t, 2, counter.calls["missing.tsx"])
		require.Equal(t, 1, cache.Len())
	})

	t.Run("Clear", func(t *testing.T) {
		cache.Clear()
		require.Equal(t, 0, cache.Len())
		_, err := tmx.Parse(data, tmx.WithFetcher(cache))
		require.NoError(t, err)
		require.Equal(t, 2, counter.calls["tilesets/terrain.tsx"])
	})
}

func TestConcurrentReads(t *testing.T) {
	cache := tmx.NewCache(tmx.FSFetcher(testutil.FS()))
	names := []string{"correct.tmx", "external.tmx", "inline.tmx", "unsupported.tmx"}

	expected := make(map[string]*tmx.Map, len(names))
	for _, name := range names {
		expected[name] = readFixture(t, name)
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(names)*8)
	for i := 0; i < 8; i++ {
		for _, name := range names {
			name := name
			wg.Add(1)
			go func() {
				defer wg.Done()
				data, err := testutil.ReadTestData(name)
				if err != nil {
					errs <- err
					return
				}
				m, err := tmx.Parse(data, tmx.WithFetcher(cache))
				if err != nil {
					errs <- err
					return
				}
				if m.Width != expected[name].Width || len(m.Layers) != len(expected[name].Layers) {
					errs <- errors.New(name + ": result differs from sequential read")
				}
			}()
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}
