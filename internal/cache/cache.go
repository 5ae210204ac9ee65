package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fhuszti/images-ms-go/internal/port"
	"github.com/fhuszti/images-ms-go/internal/uuid"
	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetImageLocation(ctx context.Context, id uuid.UUID) ([]byte, error) {
	val, err := c.client.Get(ctx, locationKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtagImageLocation(ctx context.Context, id uuid.UUID) (string, error) {
	val, err := c.client.Get(ctx, etagKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // cache miss
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

// SetImageLocation caches the servable-location payload until the signing
// window of the embedded URL ends, so a cached entry never outlives its
// signature.
func (c *Cache) SetImageLocation(ctx context.Context, id uuid.UUID, data []byte, validUntil time.Time) {
	log.Printf("creating cache entry for image #%s, valid until %s...", id, validUntil.Format(time.RFC1123))

	if err := c.client.Set(ctx, locationKey(id), data, time.Until(validUntil)).Err(); err != nil {
		log.Printf("redis set failed for image #%s: %v", id, err)
	}
}

func (c *Cache) SetEtagImageLocation(ctx context.Context, id uuid.UUID, etag string, validUntil time.Time) {
	if err := c.client.Set(ctx, etagKey(id), etag, time.Until(validUntil)).Err(); err != nil {
		log.Printf("redis set failed for image #%s: %v", id, err)
	}
}

func locationKey(id uuid.UUID) string {
	return "image_location:" + id.String()
}

func etagKey(id uuid.UUID) string {
	return "image_location_etag:" + id.String()
}
