package cards

import "errors"

var (
	// ErrInvalidDeckCount is returned when a shoe is configured with fewer than one deck.
	ErrInvalidDeckCount = errors.New("invalid deck count")

	// ErrShoeExhausted is returned when a draw or burn needs more live cards than the shoe holds.
	ErrShoeExhausted = errors.New("shoe exhausted")
)
