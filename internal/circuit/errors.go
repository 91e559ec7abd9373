package circuit

import "github.com/pkg/errors"

var (
	// ErrInvalidGeometry is returned when an ingested pixel buffer is not
	// square or does not match its declared dimensions.
	ErrInvalidGeometry = errors.New("invalid circuit geometry")

	// ErrNetworkSpaceExhausted is returned when a grid holds more distinct
	// wire networks than a two-byte id can address.
	ErrNetworkSpaceExhausted = errors.New("out of wire network ids")
)
