package mock

import (
	"context"
	"time"

	"github.com/fhuszti/images-ms-go/internal/port"
	"github.com/fhuszti/images-ms-go/internal/uuid"
)

// Cache implements the cache interface for tests.
type Cache struct {
	DataOut []byte
	EtagOut string

	SetData       []byte
	SetEtag       string
	SetValidUntil time.Time

	GetErr  error
	EtagErr error

	GetCalled     bool
	SetCalled     bool
	SetEtagCalled bool
}

var _ port.Cache = (*Cache)(nil)

func (m *Cache) GetImageLocation(ctx context.Context, id uuid.UUID) ([]byte, error) {
	m.GetCalled = true
	return m.DataOut, m.GetErr
}

func (m *Cache) GetEtagImageLocation(ctx context.Context, id uuid.UUID) (string, error) {
	return m.EtagOut, m.EtagErr
}

func (m *Cache) SetImageLocation(ctx context.Context, id uuid.UUID, data []byte, validUntil time.Time) {
	m.SetCalled = true
	m.SetData = data
	m.SetValidUntil = validUntil
}

func (m *Cache) SetEtagImageLocation(ctx context.Context, id uuid.UUID, etag string, validUntil time.Time) {
	m.SetEtagCalled = true
	m.SetEtag = etag
}
