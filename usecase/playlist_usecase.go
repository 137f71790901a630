package usecase

import (
	"context"
	"errors"

	"finflix/domain/model"
	"finflix/domain/repository"
	"finflix/infrastructure/logger"
)

const (
	MsgPlaylistCreated      = "Playlist created successfully"
	MsgPlaylistDeleted      = "Playlist deleted successfully"
	MsgVideoAddedToPlaylist = "Video added to playlist"
	MsgVideoAlreadyPresent  = "Video already present in playlist"
	MsgVideoRemoved         = "Video removed from playlist"
	MsgVideoNotPresent      = "Video is not present in playlist"
)

// PlaylistChange is the outcome of adding or removing a playlist video.
// Changed is false for the idempotent "already present" / "not present"
// outcomes, which are not errors.
type PlaylistChange struct {
	Message   string
	Changed   bool
	Playlists []model.PlaylistView
}

type IPlaylistUsecase interface {
	Create(ctx context.Context, userID, name string) ([]model.PlaylistView, error)
	GetAll(ctx context.Context, userID string) ([]model.PlaylistView, error)
	GetById(ctx context.Context, userID, playlistID string) (model.PlaylistView, error)
	Delete(ctx context.Context, userID, playlistID string) ([]model.PlaylistView, error)
	AddVideo(ctx context.Context, userID, playlistID, videoID string) (PlaylistChange, error)
	RemoveVideo(ctx context.Context, userID, playlistID, videoID string) (PlaylistChange, error)
}

type playlistUsecase struct {
	userRepo     repository.IUser
	playlistRepo repository.IPlaylist
	videoRepo    repository.IVideo
	resolver     *videoResolver
}

func NewPlaylistUsecase(
	userRepo repository.IUser,
	playlistRepo repository.IPlaylist,
	videoRepo repository.IVideo,
	creatorRepo repository.ICreator,
	categoryRepo repository.ICategory,
) IPlaylistUsecase {
	return &playlistUsecase{
		userRepo:     userRepo,
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		resolver:     newVideoResolver(videoRepo, creatorRepo, categoryRepo),
	}
}

func (u *playlistUsecase) Create(ctx context.Context, userID, name string) ([]model.PlaylistView, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	playlist := model.Playlist{
		ID:     model.NewID(),
		Name:   name,
		UserID: user.ID,
		Videos: []string{},
	}
	if err := u.playlistRepo.Create(ctx, playlist); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while creating playlist")
		return nil, writeErr(err)
	}

	user.Playlists, _ = appendUnique(user.Playlists, playlist.ID)
	updated, err := u.userRepo.UpdateUser(ctx, user)
	if err != nil {
		// The playlist must not outlive a failed link to its owner.
		if delErr := u.playlistRepo.Delete(ctx, playlist.ID); delErr != nil {
			logger.GetLogger().
				WithField("error", delErr).
				WithField("playlist_id", playlist.ID).
				Error("Error while rolling back playlist creation")
		}
		return nil, writeErr(err)
	}
	return u.views(ctx, updated.Playlists)
}

func (u *playlistUsecase) GetAll(ctx context.Context, userID string) ([]model.PlaylistView, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.views(ctx, user.Playlists)
}

func (u *playlistUsecase) GetById(ctx context.Context, userID, playlistID string) (model.PlaylistView, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return model.PlaylistView{}, err
	}
	playlist, err := u.loadOwnedPlaylist(ctx, user, playlistID)
	if err != nil {
		return model.PlaylistView{}, err
	}
	views, err := u.project(ctx, []model.Playlist{playlist})
	if err != nil {
		return model.PlaylistView{}, err
	}
	return views[0], nil
}

func (u *playlistUsecase) Delete(ctx context.Context, userID, playlistID string) ([]model.PlaylistView, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := u.loadOwnedPlaylist(ctx, user, playlistID); err != nil {
		return nil, err
	}

	position := indexOf(user.Playlists, playlistID)
	user.Playlists, _ = removeRef(user.Playlists, playlistID)
	updated, err := u.userRepo.UpdateUser(ctx, user)
	if err != nil {
		return nil, writeErr(err)
	}

	if err := u.playlistRepo.Delete(ctx, playlistID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		u.relink(ctx, updated, playlistID, position)
		logger.GetLogger().WithField("error", err).WithField("playlist_id", playlistID).Error("Error while deleting playlist")
		return nil, Internal(err)
	}
	return u.views(ctx, updated.Playlists)
}

// relink restores a playlist reference removed by a delete whose second
// half failed.
func (u *playlistUsecase) relink(ctx context.Context, user model.User, playlistID string, position int) {
	refs := make([]string, 0, len(user.Playlists)+1)
	if position > len(user.Playlists) {
		position = len(user.Playlists)
	}
	refs = append(refs, user.Playlists[:position]...)
	refs = append(refs, playlistID)
	user.Playlists = append(refs, user.Playlists[position:]...)
	if _, err := u.userRepo.UpdateUser(ctx, user); err != nil {
		logger.GetLogger().
			WithField("error", err).
			WithField("playlist_id", playlistID).
			Error("Error while restoring playlist reference")
	}
}

func (u *playlistUsecase) AddVideo(ctx context.Context, userID, playlistID, videoID string) (PlaylistChange, error) {
	user, playlist, err := u.loadForVideoChange(ctx, userID, playlistID, videoID)
	if err != nil {
		return PlaylistChange{}, err
	}

	videos, added := appendUnique(playlist.Videos, videoID)
	if !added {
		return u.change(ctx, user, MsgVideoAlreadyPresent, false)
	}
	playlist.Videos = videos
	if _, err := u.playlistRepo.UpdatePlaylist(ctx, playlist); err != nil {
		logger.GetLogger().WithField("error", err).WithField("playlist_id", playlistID).Error("Error while adding video to playlist")
		return PlaylistChange{}, writeErr(err)
	}
	return u.change(ctx, user, MsgVideoAddedToPlaylist, true)
}

func (u *playlistUsecase) RemoveVideo(ctx context.Context, userID, playlistID, videoID string) (PlaylistChange, error) {
	user, playlist, err := u.loadForVideoChange(ctx, userID, playlistID, videoID)
	if err != nil {
		return PlaylistChange{}, err
	}

	videos, removed := removeRef(playlist.Videos, videoID)
	if !removed {
		return u.change(ctx, user, MsgVideoNotPresent, false)
	}
	playlist.Videos = videos
	if _, err := u.playlistRepo.UpdatePlaylist(ctx, playlist); err != nil {
		logger.GetLogger().WithField("error", err).WithField("playlist_id", playlistID).Error("Error while removing video from playlist")
		return PlaylistChange{}, writeErr(err)
	}
	return u.change(ctx, user, MsgVideoRemoved, true)
}

func (u *playlistUsecase) change(ctx context.Context, owner model.User, msg string, changed bool) (PlaylistChange, error) {
	views, err := u.views(ctx, owner.Playlists)
	if err != nil {
		return PlaylistChange{}, err
	}
	return PlaylistChange{Message: msg, Changed: changed, Playlists: views}, nil
}

func (u *playlistUsecase) loadForVideoChange(ctx context.Context, userID, playlistID, videoID string) (model.User, model.Playlist, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return model.User{}, model.Playlist{}, err
	}
	playlist, err := u.loadOwnedPlaylist(ctx, user, playlistID)
	if err != nil {
		return model.User{}, model.Playlist{}, err
	}
	if _, err := u.videoRepo.GetById(ctx, videoID); err != nil {
		return model.User{}, model.Playlist{}, lookupErr(err, "Video not found")
	}
	return user, playlist, nil
}

func (u *playlistUsecase) loadUser(ctx context.Context, userID string) (model.User, error) {
	if !model.IsValidID(userID) {
		return model.User{}, Validation("Invalid user id")
	}
	user, err := u.userRepo.GetById(ctx, userID)
	if err != nil {
		return model.User{}, lookupErr(err, "User not found")
	}
	return user, nil
}

// loadOwnedPlaylist fails with NotFound for a missing playlist and with
// Conflict for a playlist that is not linked to user.
func (u *playlistUsecase) loadOwnedPlaylist(ctx context.Context, user model.User, playlistID string) (model.Playlist, error) {
	if !model.IsValidID(playlistID) {
		return model.Playlist{}, Validation("Invalid playlist id")
	}
	playlist, err := u.playlistRepo.GetById(ctx, playlistID)
	if err != nil {
		return model.Playlist{}, lookupErr(err, "Playlist not found")
	}
	if playlist.UserID != user.ID || indexOf(user.Playlists, playlistID) == -1 {
		return model.Playlist{}, Conflict("Playlist is not associated with this user")
	}
	return playlist, nil
}

// views resolves the playlists referenced by a user, in reference order.
func (u *playlistUsecase) views(ctx context.Context, refs []string) ([]model.PlaylistView, error) {
	if len(refs) == 0 {
		return []model.PlaylistView{}, nil
	}
	playlists, err := u.playlistRepo.GetByIds(ctx, unique(refs))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching playlists")
		return nil, Internal(err)
	}
	byID := make(map[string]model.Playlist, len(playlists))
	for _, p := range playlists {
		byID[p.ID] = p
	}
	ordered := make([]model.Playlist, 0, len(refs))
	for _, ref := range refs {
		if p, ok := byID[ref]; ok {
			ordered = append(ordered, p)
		}
	}
	return u.project(ctx, ordered)
}

// project resolves the videos of every playlist in one bulk lookup and
// projects each playlist keeping its own video order.
func (u *playlistUsecase) project(ctx context.Context, playlists []model.Playlist) ([]model.PlaylistView, error) {
	var refs []string
	for _, p := range playlists {
		refs = append(refs, p.Videos...)
	}
	resolved, err := u.resolver.Resolve(ctx, unique(refs))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while resolving playlist videos")
		return nil, Internal(err)
	}

	views := make([]model.PlaylistView, 0, len(playlists))
	for _, p := range playlists {
		views = append(views, model.PlaylistView{
			ID:     p.ID,
			Name:   p.Name,
			UserID: p.UserID,
			Videos: FormatVideos(OrderByReference(p.Videos, resolved)),
		})
	}
	return views, nil
}
