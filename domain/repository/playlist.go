package repository

import (
	"context"

	"finflix/domain/model"
)

type IPlaylist interface {
	Create(ctx context.Context, playlist model.Playlist) error
	GetById(ctx context.Context, id string) (model.Playlist, error)
	GetByIds(ctx context.Context, ids []string) ([]model.Playlist, error)
	// UpdatePlaylist is versioned the same way as IUser.UpdateUser.
	UpdatePlaylist(ctx context.Context, playlist model.Playlist) (model.Playlist, error)
	Delete(ctx context.Context, id string) error
}
