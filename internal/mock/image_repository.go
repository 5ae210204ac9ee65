package mock

import (
	"context"

	"github.com/fhuszti/images-ms-go/internal/model"
	"github.com/fhuszti/images-ms-go/internal/port"
	"github.com/fhuszti/images-ms-go/internal/uuid"
)

// ImageRepository implements the image repository interface for tests.
type ImageRepository struct {
	ImageOut        *model.Image
	FeedOut         []model.Image
	TransitionedOut bool

	CreatedImage *model.Image
	QueriedID    uuid.UUID
	FeedFilter   port.FeedFilter
	NewType      string

	CreateErr    error
	GetErr       error
	ConfirmErr   error
	TypeErr      error
	ListErr      error

	CreateCalled  bool
	GetCalled     bool
	ConfirmCalled bool
	TypeCalled    bool
	ListCalled    bool
}

var _ port.ImageRepository = (*ImageRepository)(nil)

func (m *ImageRepository) Create(ctx context.Context, img *model.Image) error {
	m.CreateCalled = true
	m.CreatedImage = img
	return m.CreateErr
}

func (m *ImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Image, error) {
	m.GetCalled = true
	m.QueriedID = id
	return m.ImageOut, m.GetErr
}

func (m *ImageRepository) MarkConfirmed(ctx context.Context, id uuid.UUID) (bool, error) {
	m.ConfirmCalled = true
	m.QueriedID = id
	return m.TransitionedOut, m.ConfirmErr
}

func (m *ImageRepository) UpdateContentType(ctx context.Context, id uuid.UUID, contentType string) error {
	m.TypeCalled = true
	m.QueriedID = id
	m.NewType = contentType
	return m.TypeErr
}

func (m *ImageRepository) ListFeed(ctx context.Context, f port.FeedFilter) ([]model.Image, error) {
	m.ListCalled = true
	m.FeedFilter = f
	return m.FeedOut, m.ListErr
}
