package repository

import (
	"context"

	"finflix/domain/model"
)

type IUser interface {
	GetById(ctx context.Context, id string) (model.User, error)
	GetByUserName(ctx context.Context, userName string) (model.User, error)
	CreateUser(ctx context.Context, user model.User) error
	// UpdateUser writes the whole user document if its stored version still
	// equals user.Version and returns the document with the bumped version.
	UpdateUser(ctx context.Context, user model.User) (model.User, error)
}
