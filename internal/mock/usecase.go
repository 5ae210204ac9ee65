package mock

import (
	"context"
	"io"

	"github.com/fhuszti/images-ms-go/internal/port"
	"github.com/fhuszti/images-ms-go/internal/uuid"
)

// UploadInitiator implements the upload initiation use case for tests.
type UploadInitiator struct {
	Out    port.InitiateUploadOutput
	Err    error
	In     port.InitiateUploadInput
	Called bool
}

var _ port.UploadInitiator = (*UploadInitiator)(nil)

func (m *UploadInitiator) InitiateUpload(ctx context.Context, in port.InitiateUploadInput) (port.InitiateUploadOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// UploadConfirmer implements the upload confirmation use case for tests.
type UploadConfirmer struct {
	Err    error
	In     port.ConfirmUploadInput
	Called bool
}

var _ port.UploadConfirmer = (*UploadConfirmer)(nil)

func (m *UploadConfirmer) ConfirmUpload(ctx context.Context, in port.ConfirmUploadInput) error {
	m.Called = true
	m.In = in
	return m.Err
}

// ByteStorer implements the app-managed upload use case for tests.
type ByteStorer struct {
	Err      error
	In       port.StoreBytesInput
	Received []byte
	Called   bool
}

var _ port.ByteStorer = (*ByteStorer)(nil)

func (m *ByteStorer) StoreUploadedBytes(ctx context.Context, in port.StoreBytesInput) error {
	m.Called = true
	m.In = in
	if in.Reader != nil {
		m.Received, _ = io.ReadAll(in.Reader)
	}
	return m.Err
}

// LocationGetter implements the location resolution use case for tests.
type LocationGetter struct {
	Out    *port.GetLocationOutput
	Err    error
	In     port.GetLocationInput
	Called bool
}

var _ port.LocationGetter = (*LocationGetter)(nil)

func (m *LocationGetter) GetServableLocation(ctx context.Context, in port.GetLocationInput) (*port.GetLocationOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// ImageOpener implements the raw image read use case for tests.
type ImageOpener struct {
	ReaderOut   io.ReadCloser
	ContentType string
	Err         error
	In          port.GetLocationInput
	Called      bool
}

var _ port.ImageOpener = (*ImageOpener)(nil)

func (m *ImageOpener) OpenImage(ctx context.Context, in port.GetLocationInput) (io.ReadCloser, string, error) {
	m.Called = true
	m.In = in
	return m.ReaderOut, m.ContentType, m.Err
}

// FeedLister implements the feed listing use case for tests.
type FeedLister struct {
	Out    port.ListFeedOutput
	Err    error
	In     port.ListFeedInput
	Called bool
}

var _ port.FeedLister = (*FeedLister)(nil)

func (m *FeedLister) ListFeed(ctx context.Context, in port.ListFeedInput) (port.ListFeedOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// UserRegistrar implements the registration use case for tests.
type UserRegistrar struct {
	Err    error
	In     port.RegisterInput
	Called bool
}

var _ port.UserRegistrar = (*UserRegistrar)(nil)

func (m *UserRegistrar) Register(ctx context.Context, in port.RegisterInput) error {
	m.Called = true
	m.In = in
	return m.Err
}

// UserAuthenticator implements the login use case for tests.
type UserAuthenticator struct {
	Out    port.LoginOutput
	Err    error
	In     port.LoginInput
	Called bool
}

var _ port.UserAuthenticator = (*UserAuthenticator)(nil)

func (m *UserAuthenticator) Login(ctx context.Context, in port.LoginInput) (port.LoginOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// ProfileGetter implements the profile use case for tests.
type ProfileGetter struct {
	Out    port.ProfileOutput
	Err    error
	ID     uuid.UUID
	Called bool
}

var _ port.ProfileGetter = (*ProfileGetter)(nil)

func (m *ProfileGetter) GetProfile(ctx context.Context, id uuid.UUID) (port.ProfileOutput, error) {
	m.Called = true
	m.ID = id
	return m.Out, m.Err
}
