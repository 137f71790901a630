package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"finflix/domain/model"
	"finflix/infrastructure/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	videoCacheKeyPrefix = "finflix:video:"
	flushBatchSize      = 100
)

// videoJSON is the cached representation of a projected video.
type videoJSON struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Creator       string `json:"creator"`
	CreatorImgURL string `json:"creator_img_url"`
	Description   string `json:"description"`
	Duration      string `json:"duration"`
	Category      string `json:"category"`
}

// RedisVideoCache caches projected videos in Redis.
type RedisVideoCache struct {
	client *redis.Client
}

func NewRedisVideoCache(client *redis.Client) *RedisVideoCache {
	return &RedisVideoCache{client: client}
}

// Get returns nil, nil on cache miss.
func (c *RedisVideoCache) Get(ctx context.Context, videoID string) (*model.VideoView, error) {
	data, err := c.client.Get(ctx, videoCacheKeyPrefix+videoID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusMiss).Inc()
			return nil, nil
		}
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusError).Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var v videoJSON
	if err := json.Unmarshal(data, &v); err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusError).Inc()
		return nil, fmt.Errorf("deserialize video: %w", err)
	}
	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusHit).Inc()
	return &model.VideoView{
		ID:            v.ID,
		Title:         v.Title,
		Creator:       v.Creator,
		CreatorImgURL: v.CreatorImgURL,
		Description:   v.Description,
		Duration:      v.Duration,
		Category:      v.Category,
	}, nil
}

func (c *RedisVideoCache) Set(ctx context.Context, view model.VideoView, ttl time.Duration) error {
	data, err := json.Marshal(videoJSON{
		ID:            view.ID,
		Title:         view.Title,
		Creator:       view.Creator,
		CreatorImgURL: view.CreatorImgURL,
		Description:   view.Description,
		Duration:      view.Duration,
		Category:      view.Category,
	})
	if err != nil {
		return fmt.Errorf("serialize video: %w", err)
	}
	if err := c.client.Set(ctx, videoCacheKeyPrefix+view.ID, data, ttl).Err(); err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusError).Inc()
		return fmt.Errorf("redis set: %w", err)
	}
	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusSuccess).Inc()
	return nil
}

func (c *RedisVideoCache) Delete(ctx context.Context, videoID string) error {
	if err := c.client.Del(ctx, videoCacheKeyPrefix+videoID).Err(); err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpDelete, metrics.CacheStatusError).Inc()
		return fmt.Errorf("redis del: %w", err)
	}
	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpDelete, metrics.CacheStatusSuccess).Inc()
	return nil
}

// Flush deletes every cached video key, scanning in batches.
func (c *RedisVideoCache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, videoCacheKeyPrefix+"*", flushBatchSize).Iterator()
	batch := make([]string, 0, flushBatchSize)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == flushBatchSize {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpFlush, metrics.CacheStatusError).Inc()
				return fmt.Errorf("redis del: %w", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpFlush, metrics.CacheStatusError).Inc()
		return fmt.Errorf("redis scan: %w", err)
	}
	if len(batch) > 0 {
		if err := c.client.Del(ctx, batch...).Err(); err != nil {
			metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpFlush, metrics.CacheStatusError).Inc()
			return fmt.Errorf("redis del: %w", err)
		}
	}
	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpFlush, metrics.CacheStatusSuccess).Inc()
	return nil
}
