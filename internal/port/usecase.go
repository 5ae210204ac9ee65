package port

import (
	"context"
	"io"
	"time"

	"github.com/fhuszti/images-ms-go/internal/uuid"
)

type UUIDGen func() uuid.UUID

// UploadInitiator creates an image record and returns upload instructions.
type UploadInitiator interface {
	InitiateUpload(ctx context.Context, in InitiateUploadInput) (InitiateUploadOutput, error)
}
type InitiateUploadInput struct {
	OwnerID    uuid.UUID
	Visibility string
}
type InitiateUploadOutput struct {
	ID uuid.UUID `json:"id"`
	// URL is either a presigned storage upload URL or the app-managed upload
	// endpoint, depending on Direct.
	URL    string `json:"url"`
	Direct bool   `json:"direct"`
}

// UploadConfirmer marks an image record as confirmed once its bytes are
// present in storage.
type UploadConfirmer interface {
	ConfirmUpload(ctx context.Context, in ConfirmUploadInput) error
}
type ConfirmUploadInput struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
}

// ByteStorer receives upload bytes through the application process
// (local-managed deployments only).
type ByteStorer interface {
	StoreUploadedBytes(ctx context.Context, in StoreBytesInput) error
}
type StoreBytesInput struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	Reader      io.Reader
}

// LocationGetter resolves a servable reference for a confirmed image.
type LocationGetter interface {
	GetServableLocation(ctx context.Context, in GetLocationInput) (*GetLocationOutput, error)
}
type GetLocationInput struct {
	ID       uuid.UUID
	ViewerID *uuid.UUID
}
type GetLocationOutput struct {
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	Public      bool      `json:"public"`
	ValidUntil  time.Time `json:"valid_until"`
}

// ImageOpener opens the raw bytes of a confirmed image, applying the same
// read gate as LocationGetter (local-managed deployments only).
type ImageOpener interface {
	OpenImage(ctx context.Context, in GetLocationInput) (io.ReadCloser, string, error)
}

// FeedLister returns a time-windowed, visibility-filtered image feed.
type FeedLister interface {
	ListFeed(ctx context.Context, in ListFeedInput) (ListFeedOutput, error)
}
type ListFeedInput struct {
	ViewerID  *uuid.UUID
	CreatorID *uuid.UUID
	After     time.Time
	Before    time.Time
}
type FeedItem struct {
	ID          uuid.UUID `json:"id"`
	Creator     uuid.UUID `json:"creator"`
	DownloadURL string    `json:"download_url"`
	CreatedAt   time.Time `json:"created_at"`
}
type ListFeedOutput struct {
	Count   int        `json:"count"`
	Results []FeedItem `json:"results"`
}

// UserRegistrar creates user accounts.
type UserRegistrar interface {
	Register(ctx context.Context, in RegisterInput) error
}
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// UserAuthenticator verifies credentials and issues access tokens.
type UserAuthenticator interface {
	Login(ctx context.Context, in LoginInput) (LoginOutput, error)
}
type LoginInput struct {
	Username string
	Password string
}
type LoginOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ProfileGetter returns the public profile of a user.
type ProfileGetter interface {
	GetProfile(ctx context.Context, id uuid.UUID) (ProfileOutput, error)
}
type ProfileOutput struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Bio      *string   `json:"bio"`
}
