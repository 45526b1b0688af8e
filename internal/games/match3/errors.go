package match3

import "errors"

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("match3: coordinate out of bounds")

	// ErrInvalidSwap is returned for swaps between non-adjacent or empty cells.
	// The grid is left untouched.
	ErrInvalidSwap = errors.New("match3: invalid swap")

	// ErrInvalidCatalog is returned when the tile catalog is empty or a tile
	// on the grid uses a type the catalog does not contain.
	ErrInvalidCatalog = errors.New("match3: invalid tile catalog")

	// ErrInvalidDimensions is returned for non-positive grid sizes.
	ErrInvalidDimensions = errors.New("match3: invalid grid dimensions")
)
