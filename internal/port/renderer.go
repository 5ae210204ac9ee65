package port

import (
	"context"
)

// HTTPRenderer mediates between HTTP handlers and the location getter use
// case. It provides caching capabilities and returns both the JSON
// representation of the result as well as an ETag value derived from it.
type HTTPRenderer interface {
	// RenderImageLocation returns the cached JSON result and its ETag if
	// available or executes the underlying use case and caches the output
	// otherwise.
	RenderImageLocation(ctx context.Context, getter LocationGetter, in GetLocationInput) ([]byte, string, error)
}
