package persistence

import (
	"context"

	"finflix/domain/model"
	"finflix/domain/repository"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

type PlaylistRepository struct {
	playlists *Collection[model.Playlist]
}

func NewPlaylistRepository(db *mongo.Database) repository.IPlaylist {
	return &PlaylistRepository{playlists: NewCollection[model.Playlist](db, collectionPlaylists)}
}

func (r *PlaylistRepository) Create(ctx context.Context, playlist model.Playlist) error {
	playlist.Version = 0
	return r.playlists.Insert(ctx, playlist)
}

func (r *PlaylistRepository) GetById(ctx context.Context, id string) (model.Playlist, error) {
	return r.playlists.FindById(ctx, id)
}

func (r *PlaylistRepository) GetByIds(ctx context.Context, ids []string) ([]model.Playlist, error) {
	return r.playlists.FindByIds(ctx, ids)
}

func (r *PlaylistRepository) UpdatePlaylist(ctx context.Context, playlist model.Playlist) (model.Playlist, error) {
	read := playlist.Version
	playlist.Version++
	if err := r.playlists.ReplaceVersioned(ctx, playlist.ID, read, playlist); err != nil {
		return model.Playlist{}, err
	}
	return playlist, nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, id string) error {
	return r.playlists.Delete(ctx, id)
}
