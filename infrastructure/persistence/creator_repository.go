package persistence

import (
	"context"

	"finflix/domain/model"
	"finflix/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type CreatorRepository struct {
	creators *Collection[model.Creator]
}

func NewCreatorRepository(db *mongo.Database) repository.ICreator {
	return &CreatorRepository{creators: NewCollection[model.Creator](db, collectionCreators)}
}

func (r *CreatorRepository) Create(ctx context.Context, creator model.Creator) error {
	return r.creators.Insert(ctx, creator)
}

func (r *CreatorRepository) GetById(ctx context.Context, id string) (model.Creator, error) {
	return r.creators.FindById(ctx, id)
}

func (r *CreatorRepository) GetByName(ctx context.Context, name string) (model.Creator, error) {
	return r.creators.FindOne(ctx, bson.M{"name": name})
}

func (r *CreatorRepository) GetByIds(ctx context.Context, ids []string) ([]model.Creator, error) {
	return r.creators.FindByIds(ctx, ids)
}

func (r *CreatorRepository) GetAll(ctx context.Context) ([]model.Creator, error) {
	return r.creators.FindMany(ctx, bson.M{})
}

func (r *CreatorRepository) Update(ctx context.Context, creator model.Creator) error {
	return r.creators.Replace(ctx, creator.ID, creator)
}
