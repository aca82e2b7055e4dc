package tmx

import tmxerrors "github.com/KimNorgaard/go-tmx/errors"

// Error kinds returned by the reader. See package tmx/errors for details.
var (
	ErrMalformedAttribute      = tmxerrors.ErrMalformedAttribute
	ErrMissingRoot             = tmxerrors.ErrMissingRoot
	ErrInvalidTilesetReference = tmxerrors.ErrInvalidTilesetReference
	ErrTruncatedTileData       = tmxerrors.ErrTruncatedTileData
	ErrTileCountMismatch       = tmxerrors.ErrTileCountMismatch
	ErrMalformedTileData       = tmxerrors.ErrMalformedTileData
	ErrTileDataTooLarge        = tmxerrors.ErrTileDataTooLarge
)

type (
	AttributeError = tmxerrors.AttributeError
	RootError      = tmxerrors.RootError
	TilesetError   = tmxerrors.TilesetError
	TileDataError  = tmxerrors.TileDataError
)
