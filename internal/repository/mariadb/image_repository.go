package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/fhuszti/images-ms-go/internal/model"
	"github.com/fhuszti/images-ms-go/internal/port"
	"github.com/fhuszti/images-ms-go/internal/uuid"
)

type ImageRepository struct {
	db *sql.DB
}

// compile-time check: *ImageRepository must satisfy port.ImageRepository
var _ port.ImageRepository = (*ImageRepository)(nil)

func NewImageRepository(db *sql.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Create(ctx context.Context, img *model.Image) error {
	log.Printf("creating database record for image #%s, at status %q...", img.ID, img.Status)

	const query = `
      INSERT INTO images
        (id, location, content_type, status, is_public, owner_id)
      VALUES (?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		img.ID, img.Location, img.ContentType,
		img.Status, img.Public, img.OwnerID,
	)
	return err
}

func (r *ImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Image, error) {
	log.Printf("fetching image #%s from the database...", id)

	const query = `
      SELECT id, location, content_type, status, is_public, owner_id, created_at
      FROM images
      WHERE id = ?
    `
	row := r.db.QueryRowContext(ctx, query, id)
	var img model.Image
	if err := row.Scan(
		&img.ID, &img.Location, &img.ContentType,
		&img.Status, &img.Public, &img.OwnerID, &img.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &img, nil
}

// MarkConfirmed performs the one-shot initiated→confirmed transition as a
// single conditional UPDATE, so two concurrent confirmations cannot both win.
func (r *ImageRepository) MarkConfirmed(ctx context.Context, id uuid.UUID) (bool, error) {
	log.Printf("confirming image #%s...", id)

	const query = `
      UPDATE images
      SET status = ?
      WHERE id = ? AND status = ?
    `
	res, err := r.db.ExecContext(ctx, query, model.ImageStatusConfirmed, id, model.ImageStatusInitiated)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *ImageRepository) UpdateContentType(ctx context.Context, id uuid.UUID, contentType string) error {
	log.Printf("recording content type %q for image #%s...", contentType, id)

	const query = `
      UPDATE images
      SET content_type = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query, contentType, id)
	return err
}

// ListFeed applies the same visibility rule as model.Image.VisibleTo in SQL:
// public images, plus the viewer's own. Only confirmed images are listed, and
// ordering ties on created_at are broken by id so pagination is stable.
func (r *ImageRepository) ListFeed(ctx context.Context, f port.FeedFilter) ([]model.Image, error) {
	log.Printf("listing feed between %s and %s...", f.After, f.Before)

	query := `
      SELECT id, location, content_type, status, is_public, owner_id, created_at
      FROM images
      WHERE created_at > ? AND created_at < ?
        AND status = ?
    `
	args := []any{f.After, f.Before, model.ImageStatusConfirmed}

	if f.ViewerID != nil {
		query += " AND (is_public = TRUE OR owner_id = ?)"
		args = append(args, *f.ViewerID)
	} else {
		query += " AND is_public = TRUE"
	}
	if f.CreatorID != nil {
		query += " AND owner_id = ?"
		args = append(args, *f.CreatorID)
	}

	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, f.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close feed rows: %v", err)
		}
	}()

	var imgs []model.Image
	for rows.Next() {
		var img model.Image
		if err := rows.Scan(
			&img.ID, &img.Location, &img.ContentType,
			&img.Status, &img.Public, &img.OwnerID, &img.CreatedAt,
		); err != nil {
			return nil, err
		}
		imgs = append(imgs, img)
	}
	return imgs, rows.Err()
}
