package persistence

import (
	"context"

	"finflix/domain/model"
	"finflix/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type VideoRepository struct {
	videos *Collection[model.Video]
}

func NewVideoRepository(db *mongo.Database) repository.IVideo {
	return &VideoRepository{videos: NewCollection[model.Video](db, collectionVideos)}
}

func (r *VideoRepository) Create(ctx context.Context, video model.Video) error {
	return r.videos.Insert(ctx, video)
}

func (r *VideoRepository) GetById(ctx context.Context, id string) (model.Video, error) {
	return r.videos.FindById(ctx, id)
}

func (r *VideoRepository) GetByIds(ctx context.Context, ids []string) ([]model.Video, error) {
	return r.videos.FindByIds(ctx, ids)
}

func (r *VideoRepository) GetAll(ctx context.Context) ([]model.Video, error) {
	return r.videos.FindMany(ctx, bson.M{})
}

func (r *VideoRepository) Update(ctx context.Context, video model.Video) error {
	return r.videos.Replace(ctx, video.ID, video)
}
