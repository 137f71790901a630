package persistence

import (
	"context"

	"finflix/domain/model"
	"finflix/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type CategoryRepository struct {
	categories *Collection[model.Category]
}

func NewCategoryRepository(db *mongo.Database) repository.ICategory {
	return &CategoryRepository{categories: NewCollection[model.Category](db, collectionCategories)}
}

func (r *CategoryRepository) Create(ctx context.Context, category model.Category) error {
	return r.categories.Insert(ctx, category)
}

func (r *CategoryRepository) GetById(ctx context.Context, id string) (model.Category, error) {
	return r.categories.FindById(ctx, id)
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string) (model.Category, error) {
	return r.categories.FindOne(ctx, bson.M{"name": name})
}

func (r *CategoryRepository) GetByIds(ctx context.Context, ids []string) ([]model.Category, error) {
	return r.categories.FindByIds(ctx, ids)
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]model.Category, error) {
	return r.categories.FindMany(ctx, bson.M{})
}

func (r *CategoryRepository) Update(ctx context.Context, category model.Category) error {
	return r.categories.Replace(ctx, category.ID, category)
}
