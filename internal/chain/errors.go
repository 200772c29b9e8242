package chain

import "errors"

// Domain errors for chain construction.
var (
	// ErrParameterBounds indicates a randomized range or size is invalid.
	ErrParameterBounds = errors.New("chain: parameter out of valid bounds")

	// ErrEmptyPalette indicates there is no colour to pick new segments from.
	ErrEmptyPalette = errors.New("chain: palette is empty")
)
