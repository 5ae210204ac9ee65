package model

import (
	"time"

	"github.com/fhuszti/images-ms-go/internal/uuid"
)

const (
	ImageStatusInitiated = "initiated"
	ImageStatusConfirmed = "confirmed"
)

type Image struct {
	ID          uuid.UUID `json:"id"`
	Location    string    `json:"location"`
	ContentType string    `json:"content_type"`
	Status      string    `json:"status"`
	Public      bool      `json:"public"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// VisibleTo reports whether the given viewer may read this image.
// A nil viewer is an anonymous request. The feed SQL predicate must stay
// equivalent to this function.
func (i *Image) VisibleTo(viewer *uuid.UUID) bool {
	if i.Public {
		return true
	}
	return viewer != nil && *viewer == i.OwnerID
}

func (i *Image) Confirmed() bool {
	return i.Status == ImageStatusConfirmed
}
