package persistence

import (
	"context"

	"finflix/domain/model"
	"finflix/domain/repository"
	"finflix/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// UserRepository stores users, including their collection references, as
// single documents.
type UserRepository struct {
	users *Collection[model.User]
}

func NewUserRepository(db *mongo.Database) repository.IUser {
	return &UserRepository{users: NewCollection[model.User](db, collectionUsers)}
}

func (r *UserRepository) GetById(ctx context.Context, id string) (model.User, error) {
	return r.users.FindById(ctx, id)
}

func (r *UserRepository) GetByUserName(ctx context.Context, userName string) (model.User, error) {
	return r.users.FindOne(ctx, bson.M{"username": userName})
}

func (r *UserRepository) CreateUser(ctx context.Context, user model.User) error {
	user.Version = 0
	if err := r.users.Insert(ctx, user); err != nil {
		logger.GetLogger().WithField("error", err).WithField("user_name", user.UserName).Error("mongo: create user failed")
		return err
	}
	return nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user model.User) (model.User, error) {
	read := user.Version
	user.Version++
	if err := r.users.ReplaceVersioned(ctx, user.ID, read, user); err != nil {
		return model.User{}, err
	}
	return user, nil
}
