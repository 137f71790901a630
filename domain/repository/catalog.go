package repository

import (
	"context"

	"finflix/domain/model"
)

type IVideo interface {
	Create(ctx context.Context, video model.Video) error
	GetById(ctx context.Context, id string) (model.Video, error)
	// GetByIds returns the videos whose ids are listed, in no particular order.
	GetByIds(ctx context.Context, ids []string) ([]model.Video, error)
	GetAll(ctx context.Context) ([]model.Video, error)
	Update(ctx context.Context, video model.Video) error
}

type ICreator interface {
	Create(ctx context.Context, creator model.Creator) error
	GetById(ctx context.Context, id string) (model.Creator, error)
	GetByName(ctx context.Context, name string) (model.Creator, error)
	GetByIds(ctx context.Context, ids []string) ([]model.Creator, error)
	GetAll(ctx context.Context) ([]model.Creator, error)
	Update(ctx context.Context, creator model.Creator) error
}

type ICategory interface {
	Create(ctx context.Context, category model.Category) error
	GetById(ctx context.Context, id string) (model.Category, error)
	GetByName(ctx context.Context, name string) (model.Category, error)
	GetByIds(ctx context.Context, ids []string) ([]model.Category, error)
	GetAll(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, category model.Category) error
}
