package usecase_test

import (
	"context"
	"errors"
	"testing"

	"finflix/domain/model"
	"finflix/domain/repository"
	"finflix/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPlaylistUsecase(c *catalog) usecase.IPlaylistUsecase {
	return usecase.NewPlaylistUsecase(c.store.Users, c.store.Playlists, c.store.Videos, c.store.Creators, c.store.Categories)
}

func createPlaylist(t *testing.T, uc usecase.IPlaylistUsecase, userID, name string) model.PlaylistView {
	t.Helper()
	views, err := uc.Create(context.Background(), userID, name)
	require.NoError(t, err)
	require.NotEmpty(t, views)
	return views[len(views)-1]
}

func TestPlaylist_CreateLinksToOwner(t *testing.T) {
	ctx := context.Background()
	c := seedCatalog(t)
	uc := newPlaylistUsecase(c)

	first := createPlaylist(t, uc, c.user.ID, "Weekend")
	second := createPlaylist(t, uc, c.user.ID, "Commute")

	assert.Equal(t, "Weekend", first.Name)
	assert.Equal(t, c.user.ID, first.UserID)
	assert.Empty(t, first.Videos)
	assert.Equal(t, []string{first.ID, second.ID}, c.storedUser(t).Playlists)

	all, err := uc.GetAll(ctx, c.user.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Commute", all[1].Name)
}

func TestPlaylist_AddVideoIsIdempotent(t *testing.T) {
	ctx := context.Background()
	c := seedCatalog(t, "v1", "v2")
	uc := newPlaylistUsecase(c)
	p := createPlaylist(t, uc, c.user.ID, "Weekend")

	change, err := uc.AddVideo(ctx, c.user.ID, p.ID, "v2")
	require.NoError(t, err)
	assert.True(t, change.Changed)
	assert.Equal(t, usecase.MsgVideoAddedToPlaylist, change.Message)

	change, err = uc.AddVideo(ctx, c.user.ID, p.ID, "v1")
	require.NoError(t, err)
	assert.True(t, change.Changed)

	change, err = uc.AddVideo(ctx, c.user.ID, p.ID, "v2")
	require.NoError(t, err)
	assert.False(t, change.Changed)
	assert.Equal(t, usecase.MsgVideoAlreadyPresent, change.Message)

	got, err := uc.GetById(ctx, c.user.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"v2", "v1"}, viewIDs(got.Videos))
	assert.Equal(t, "Akshay", got.Videos[0].Creator)
}

func TestPlaylist_RemoveVideo(t *testing.T) {
	ctx := context.Background()
	c := seedCatalog(t, "v1")
	uc := newPlaylistUsecase(c)
	p := createPlaylist(t, uc, c.user.ID, "Weekend")

	change, err := uc.RemoveVideo(ctx, c.user.ID, p.ID, "v1")
	require.NoError(t, err)
	assert.False(t, change.Changed)
	assert.Equal(t, usecase.MsgVideoNotPresent, change.Message)

	_, err = uc.AddVideo(ctx, c.user.ID, p.ID, "v1")
	require.NoError(t, err)
	change, err = uc.RemoveVideo(ctx, c.user.ID, p.ID, "v1")
	require.NoError(t, err)
	assert.True(t, change.Changed)
	assert.Equal(t, usecase.MsgVideoRemoved, change.Message)
	require.Len(t, change.Playlists, 1)
	assert.Empty(t, change.Playlists[0].Videos)

	_, err = uc.AddVideo(ctx, c.user.ID, p.ID, "missing")
	assert.Equal(t, usecase.KindNotFound, usecase.KindOf(err))
	assert.Equal(t, "Video not found", usecase.MessageOf(err))
}

func TestPlaylist_DeleteUnlinksAndRemoves(t *testing.T) {
	ctx := context.Background()
	c := seedCatalog(t)
	uc := newPlaylistUsecase(c)
	keep := createPlaylist(t, uc, c.user.ID, "Keep")
	drop := createPlaylist(t, uc, c.user.ID, "Drop")

	views, err := uc.Delete(ctx, c.user.ID, drop.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, keep.ID, views[0].ID)
	assert.Equal(t, []string{keep.ID}, c.storedUser(t).Playlists)

	_, err = c.store.Playlists.GetById(ctx, drop.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = uc.GetById(ctx, c.user.ID, drop.ID)
	assert.Equal(t, usecase.KindNotFound, usecase.KindOf(err))
	assert.Equal(t, "Playlist not found", usecase.MessageOf(err))
}

func TestPlaylist_OwnershipIsEnforced(t *testing.T) {
	ctx := context.Background()
	c := seedCatalog(t, "v1")
	uc := newPlaylistUsecase(c)

	other := model.User{ID: model.NewID(), UserName: "eve@example.com", Playlists: []string{}}
	require.NoError(t, c.store.Users.CreateUser(ctx, other))
	foreign := createPlaylist(t, uc, other.ID, "Eve's")

	_, err := uc.GetById(ctx, c.user.ID, foreign.ID)
	assert.Equal(t, usecase.KindConflict, usecase.KindOf(err))
	assert.Equal(t, "Playlist is not associated with this user", usecase.MessageOf(err))

	_, err = uc.AddVideo(ctx, c.user.ID, foreign.ID, "v1")
	assert.Equal(t, usecase.KindConflict, usecase.KindOf(err))

	_, err = uc.Delete(ctx, c.user.ID, foreign.ID)
	assert.Equal(t, usecase.KindConflict, usecase.KindOf(err))

	_, err = c.store.Playlists.GetById(ctx, foreign.ID)
	assert.NoError(t, err)

	_, err = uc.GetById(ctx, c.user.ID, "bogus")
	assert.Equal(t, usecase.KindValidation, usecase.KindOf(err))
}

func TestPlaylist_CreateRollsBackWhenLinkFails(t *testing.T) {
	ctx := context.Background()
	c := seedCatalog(t)

	users := new(MockUserRepo)
	users.On("GetById", mock.Anything, c.user.ID).Return(c.user, nil)
	users.On("UpdateUser", mock.Anything, mock.Anything).Return(model.User{}, repository.ErrVersionConflict)

	uc := usecase.NewPlaylistUsecase(users, c.store.Playlists, c.store.Videos, c.store.Creators, c.store.Categories)
	_, err := uc.Create(ctx, c.user.ID, "Weekend")
	require.Error(t, err)
	assert.Equal(t, usecase.KindConflict, usecase.KindOf(err))

	// The new playlist id is only visible in the failed link attempt.
	linked := users.Calls[1].Arguments.Get(1).(model.User)
	require.Len(t, linked.Playlists, 1)
	_, err = c.store.Playlists.GetById(ctx, linked.Playlists[0])
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

type failingDeletePlaylists struct {
	repository.IPlaylist
}

func (f failingDeletePlaylists) Delete(context.Context, string) error {
	return errors.New("disk full")
}

func TestPlaylist_DeleteRelinksWhenRemovalFails(t *testing.T) {
	ctx := context.Background()
	c := seedCatalog(t)
	uc := newPlaylistUsecase(c)
	first := createPlaylist(t, uc, c.user.ID, "First")
	second := createPlaylist(t, uc, c.user.ID, "Second")

	broken := usecase.NewPlaylistUsecase(c.store.Users, failingDeletePlaylists{c.store.Playlists}, c.store.Videos, c.store.Creators, c.store.Categories)
	_, err := broken.Delete(ctx, c.user.ID, first.ID)
	require.Error(t, err)
	assert.Equal(t, usecase.KindInternal, usecase.KindOf(err))

	assert.Equal(t, []string{first.ID, second.ID}, c.storedUser(t).Playlists)
}
