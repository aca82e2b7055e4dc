package tmx

import (
	"io/fs"
	"path"
	"path/filepath"
	"sync"

	"github.com/beevik/etree"
)

// Fetcher loads the external tileset document referenced by a tileset
// element's source attribute.
//
// Returned documents are treated as read-only: the reader copies what it
// needs, so a Fetcher may hand out the same document to many reads.
type Fetcher interface {
	Fetch(source string) (*etree.Document, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(source string) (*etree.Document, error)

// Fetch calls f(source).
func (f FetcherFunc) Fetch(source string) (*etree.Document, error) { return f(source) }

// DirFetcher returns a Fetcher that reads sources from the file system.
// Relative sources are resolved against dir.
func DirFetcher(dir string) Fetcher {
	return FetcherFunc(func(source string) (*etree.Document, error) {
		name := filepath.FromSlash(source)
		if !filepath.IsAbs(name) {
			name = filepath.Join(dir, name)
		}
		doc := etree.NewDocument()
		if err := doc.ReadFromFile(name); err != nil {
			return nil, err
		}
		return doc, nil
	})
}

// FSFetcher returns a Fetcher that reads sources from fsys. Sources are
// slash-separated paths relative to the root of fsys.
func FSFetcher(fsys fs.FS) Fetcher {
	return FetcherFunc(func(source string) (*etree.Document, error) {
		data, err := fs.ReadFile(fsys, path.Clean(source))
		if err != nil {
			return nil, err
		}
		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(data); err != nil {
			return nil, err
		}
		return doc, nil
	})
}

// Cache is a Fetcher that remembers the documents returned by another
// Fetcher, keyed by cleaned source path. It is owned by the caller and safe
// for concurrent use, so one Cache can serve many reads of maps that share
// tilesets. Keys are only meaningful relative to the wrapped Fetcher.
type Cache struct {
	fetcher Fetcher

	mu   sync.Mutex
	docs map[string]*etree.Document
}

// NewCache returns a Cache in front of f.
func NewCache(f Fetcher) *Cache {
	return &Cache{fetcher: f, docs: make(map[string]*etree.Document)}
}

// Fetch returns the cached document for source, fetching it on first use.
// Failed fetches are not cached.
func (c *Cache) Fetch(source string) (*etree.Document, error) {
	key := path.Clean(filepath.ToSlash(source))

	c.mu.Lock()
	defer c.mu.Unlock()

	if doc, ok := c.docs[key]; ok {
		return doc, nil
	}
	doc, err := c.fetcher.Fetch(source)
	if err != nil {
		return nil, err
	}
	c.docs[key] = doc
	return doc, nil
}

// Len returns the number of cached documents.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.docs)
}

// Clear drops all cached documents.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.docs)
}
