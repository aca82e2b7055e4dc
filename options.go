package tmx

import (
	"fmt"

	"go.uber.org/zap"
)

const defaultMaxTiles = 1 << 24

// Option configures a read.
type Option func(*options) error

type options struct {
	logger   *zap.Logger
	fetcher  Fetcher
	baseDir  string
	maxTiles int
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		logger:   zap.NewNop(),
		maxTiles: defaultMaxTiles,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if o.fetcher == nil {
		dir := o.baseDir
		if dir == "" {
			dir = "."
		}
		o.fetcher = DirFetcher(dir)
	}
	return o, nil
}

// WithLogger returns an Option that sends debug events to l. By default
// nothing is logged.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) error {
		if l == nil {
			return fmt.Errorf("tmx: logger must not be nil")
		}
		o.logger = l
		return nil
	}
}

// WithFetcher returns an Option that loads external tilesets through f.
// It takes precedence over WithBaseDir.
func WithFetcher(f Fetcher) Option {
	return func(o *options) error {
		if f == nil {
			return fmt.Errorf("tmx: fetcher must not be nil")
		}
		o.fetcher = f
		return nil
	}
}

// WithBaseDir returns an Option that resolves relative tileset sources
// against dir when no Fetcher is given. ReadFile sets it to the directory of
// the map file.
func WithBaseDir(dir string) Option {
	return func(o *options) error {
		if dir == "" {
			return fmt.Errorf("tmx: base dir must not be empty")
		}
		o.baseDir = dir
		return nil
	}
}

// MaxTiles returns an Option that limits the number of cells a single tile
// layer may declare. This bounds the memory a hostile document can claim.
//
// The limit n must be a positive integer.
func MaxTiles(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("tmx: max tiles must be a positive integer")
		}
		o.maxTiles = n
		return nil
	}
}
