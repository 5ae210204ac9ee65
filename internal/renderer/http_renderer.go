package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"

	"github.com/fhuszti/images-ms-go/internal/port"
)

type httpRenderer struct {
	cache port.Cache
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation.
func NewHTTPRenderer(cache port.Cache) port.HTTPRenderer {
	return &httpRenderer{cache: cache}
}

// RenderImageLocation fetches the servable location either from cache or from
// the wrapped use case. It returns the JSON encoded output and a quoted ETag
// string. Only public images are ever written to the cache, so a hit can be
// served without re-running the visibility gate.
func (r *httpRenderer) RenderImageLocation(ctx context.Context, getter port.LocationGetter, in port.GetLocationInput) ([]byte, string, error) {
	raw, err := r.cache.GetImageLocation(ctx, in.ID)
	etag, errEtag := r.cache.GetEtagImageLocation(ctx, in.ID)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	out, err := getter.GetServableLocation(ctx, in)
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	if out.Public && !out.ValidUntil.IsZero() {
		r.cache.SetImageLocation(ctx, in.ID, raw, out.ValidUntil)
		r.cache.SetEtagImageLocation(ctx, in.ID, etag, out.ValidUntil)
	}

	return raw, etag, nil
}
