package mock

import (
	"context"

	"github.com/fhuszti/images-ms-go/internal/port"
)

// HTTPRenderer implements the renderer interface for tests.
type HTTPRenderer struct {
	DataOut []byte
	EtagOut string
	Err     error
	In      port.GetLocationInput
	Called  bool
}

var _ port.HTTPRenderer = (*HTTPRenderer)(nil)

func (m *HTTPRenderer) RenderImageLocation(ctx context.Context, getter port.LocationGetter, in port.GetLocationInput) ([]byte, string, error) {
	m.Called = true
	m.In = in
	return m.DataOut, m.EtagOut, m.Err
}
