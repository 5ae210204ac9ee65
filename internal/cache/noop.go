package cache

import (
	"context"
	"time"

	"github.com/fhuszti/images-ms-go/internal/port"
	"github.com/fhuszti/images-ms-go/internal/uuid"
)

// Noop is used when no Redis is configured; every lookup is a miss.
type Noop struct{}

// compile-time check: *Noop must satisfy port.Cache
var _ port.Cache = (*Noop)(nil)

func NewNoop() *Noop { return &Noop{} }

func (n *Noop) GetImageLocation(context.Context, uuid.UUID) ([]byte, error)  { return nil, nil }
func (n *Noop) GetEtagImageLocation(context.Context, uuid.UUID) (string, error) {
	return "", nil
}
func (n *Noop) SetImageLocation(context.Context, uuid.UUID, []byte, time.Time)     {}
func (n *Noop) SetEtagImageLocation(context.Context, uuid.UUID, string, time.Time) {}
