package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"casthub/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

// Directory caches the public podcast listing as a single JSON blob. A cache
// problem is never surfaced to callers; reads fall through to the database and
// writes are best-effort.
type Directory struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

func NewDirectory(rdb *redis.Client, key string, ttl time.Duration) *Directory {
	return &Directory{rdb: rdb, key: key, ttl: ttl}
}

func (d *Directory) Get(ctx context.Context) ([]model.Podcast, bool) {
	data, err := d.rdb.Get(ctx, d.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("WARN: directory cache read failed: %v", err)
		}
		return nil, false
	}

	var podcasts []model.Podcast
	if err := json.Unmarshal(data, &podcasts); err != nil {
		log.Printf("WARN: directory cache held malformed payload, dropping it: %v", err)
		d.Invalidate(ctx)
		return nil, false
	}
	return podcasts, true
}

func (d *Directory) Set(ctx context.Context, podcasts []model.Podcast) {
	data, err := json.Marshal(podcasts)
	if err != nil {
		log.Printf("WARN: directory cache marshal failed: %v", err)
		return
	}
	if err := d.rdb.Set(ctx, d.key, data, d.ttl).Err(); err != nil {
		log.Printf("WARN: directory cache write failed: %v", err)
	}
}

func (d *Directory) Invalidate(ctx context.Context) {
	if err := d.rdb.Del(ctx, d.key).Err(); err != nil {
		log.Printf("WARN: directory cache invalidation failed: %v", err)
	}
}
