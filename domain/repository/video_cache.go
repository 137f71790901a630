package repository

import (
	"context"
	"time"

	"finflix/domain/model"
)

// IVideoCache caches projected videos by id.
type IVideoCache interface {
	// Get returns nil, nil on a cache miss.
	Get(ctx context.Context, videoID string) (*model.VideoView, error)
	Set(ctx context.Context, view model.VideoView, ttl time.Duration) error
	Delete(ctx context.Context, videoID string) error
	// Flush drops every cached video, used when a creator or category
	// rename changes projections in bulk.
	Flush(ctx context.Context) error
}
