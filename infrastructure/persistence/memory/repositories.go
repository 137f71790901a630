package memory

import (
	"context"

	"finflix/domain/model"
	"finflix/domain/repository"
)

// NewStore returns an empty in-memory repository set.
func NewStore() *repository.Repositories {
	return &repository.Repositories{
		Users:      NewUserRepository(),
		Videos:     NewVideoRepository(),
		Creators:   NewCreatorRepository(),
		Categories: NewCategoryRepository(),
		Playlists:  NewPlaylistRepository(),
	}
}

type userRepository struct {
	users *table[model.User]
}

func NewUserRepository() repository.IUser {
	return &userRepository{users: newTable(cloneUser)}
}

func cloneUser(u model.User) model.User {
	u.LikedVideos = cloneStrings(u.LikedVideos)
	u.WatchLater = cloneStrings(u.WatchLater)
	u.History = cloneStrings(u.History)
	u.Playlists = cloneStrings(u.Playlists)
	return u
}

func (r *userRepository) GetById(_ context.Context, id string) (model.User, error) {
	return r.users.get(id)
}

func (r *userRepository) GetByUserName(_ context.Context, userName string) (model.User, error) {
	return r.users.find(func(u model.User) bool { return u.UserName == userName })
}

func (r *userRepository) CreateUser(_ context.Context, user model.User) error {
	user.Version = 0
	return r.users.insert(user.ID, user, func(u model.User) bool { return u.UserName == user.UserName })
}

func (r *userRepository) UpdateUser(_ context.Context, user model.User) (model.User, error) {
	return r.users.update(user.ID, func(current model.User) (model.User, error) {
		if current.Version != user.Version {
			return model.User{}, repository.ErrVersionConflict
		}
		user.Version++
		return user, nil
	}, func(u model.User) bool { return u.UserName == user.UserName })
}

type videoRepository struct {
	videos *table[model.Video]
}

func NewVideoRepository() repository.IVideo {
	return &videoRepository{videos: newTable[model.Video](nil)}
}

func (r *videoRepository) Create(_ context.Context, video model.Video) error {
	return r.videos.insert(video.ID, video, nil)
}

func (r *videoRepository) GetById(_ context.Context, id string) (model.Video, error) {
	return r.videos.get(id)
}

func (r *videoRepository) GetByIds(_ context.Context, ids []string) ([]model.Video, error) {
	return r.videos.getMany(ids), nil
}

func (r *videoRepository) GetAll(_ context.Context) ([]model.Video, error) {
	return r.videos.all(), nil
}

func (r *videoRepository) Update(_ context.Context, video model.Video) error {
	_, err := r.videos.update(video.ID, func(model.Video) (model.Video, error) { return video, nil }, nil)
	return err
}

type creatorRepository struct {
	creators *table[model.Creator]
}

func NewCreatorRepository() repository.ICreator {
	return &creatorRepository{creators: newTable[model.Creator](nil)}
}

func (r *creatorRepository) Create(_ context.Context, creator model.Creator) error {
	return r.creators.insert(creator.ID, creator, sameCreatorName(creator))
}

func sameCreatorName(creator model.Creator) func(model.Creator) bool {
	return func(c model.Creator) bool { return c.Name == creator.Name }
}

func (r *creatorRepository) GetById(_ context.Context, id string) (model.Creator, error) {
	return r.creators.get(id)
}

func (r *creatorRepository) GetByName(_ context.Context, name string) (model.Creator, error) {
	return r.creators.find(func(c model.Creator) bool { return c.Name == name })
}

func (r *creatorRepository) GetByIds(_ context.Context, ids []string) ([]model.Creator, error) {
	return r.creators.getMany(ids), nil
}

func (r *creatorRepository) GetAll(_ context.Context) ([]model.Creator, error) {
	return r.creators.all(), nil
}

func (r *creatorRepository) Update(_ context.Context, creator model.Creator) error {
	_, err := r.creators.update(creator.ID, func(model.Creator) (model.Creator, error) { return creator, nil }, sameCreatorName(creator))
	return err
}

type categoryRepository struct {
	categories *table[model.Category]
}

func NewCategoryRepository() repository.ICategory {
	return &categoryRepository{categories: newTable[model.Category](nil)}
}

func (r *categoryRepository) Create(_ context.Context, category model.Category) error {
	return r.categories.insert(category.ID, category, sameCategoryName(category))
}

func sameCategoryName(category model.Category) func(model.Category) bool {
	return func(c model.Category) bool { return c.Name == category.Name }
}

func (r *categoryRepository) GetById(_ context.Context, id string) (model.Category, error) {
	return r.categories.get(id)
}

func (r *categoryRepository) GetByName(_ context.Context, name string) (model.Category, error) {
	return r.categories.find(func(c model.Category) bool { return c.Name == name })
}

func (r *categoryRepository) GetByIds(_ context.Context, ids []string) ([]model.Category, error) {
	return r.categories.getMany(ids), nil
}

func (r *categoryRepository) GetAll(_ context.Context) ([]model.Category, error) {
	return r.categories.all(), nil
}

func (r *categoryRepository) Update(_ context.Context, category model.Category) error {
	_, err := r.categories.update(category.ID, func(model.Category) (model.Category, error) { return category, nil }, sameCategoryName(category))
	return err
}

type playlistRepository struct {
	playlists *table[model.Playlist]
}

func NewPlaylistRepository() repository.IPlaylist {
	return &playlistRepository{playlists: newTable(clonePlaylist)}
}

func clonePlaylist(p model.Playlist) model.Playlist {
	p.Videos = cloneStrings(p.Videos)
	return p
}

func (r *playlistRepository) Create(_ context.Context, playlist model.Playlist) error {
	playlist.Version = 0
	return r.playlists.insert(playlist.ID, playlist, nil)
}

func (r *playlistRepository) GetById(_ context.Context, id string) (model.Playlist, error) {
	return r.playlists.get(id)
}

func (r *playlistRepository) GetByIds(_ context.Context, ids []string) ([]model.Playlist, error) {
	return r.playlists.getMany(ids), nil
}

func (r *playlistRepository) UpdatePlaylist(_ context.Context, playlist model.Playlist) (model.Playlist, error) {
	return r.playlists.update(playlist.ID, func(current model.Playlist) (model.Playlist, error) {
		if current.Version != playlist.Version {
			return model.Playlist{}, repository.ErrVersionConflict
		}
		playlist.Version++
		return playlist, nil
	}, nil)
}

func (r *playlistRepository) Delete(_ context.Context, id string) error {
	return r.playlists.delete(id)
}
