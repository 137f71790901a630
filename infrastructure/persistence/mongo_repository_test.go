package persistence

import (
	"context"
	"os"
	"testing"
	"time"

	"finflix/domain/model"
	"finflix/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// testDatabase connects to MONGO_TEST_URI and returns a throwaway database
// that is dropped when the test ends.
func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := NewMongoDb(ctx, uri)
	require.NoError(t, err)
	db := client.Database("finflix_test_" + model.NewID())
	require.NoError(t, EnsureIndexes(ctx, db))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return db
}

func TestMongoUserRepository(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	user := model.User{
		ID:          model.NewID(),
		UserName:    "ada@example.com",
		Password:    "hash",
		LikedVideos: []string{},
		WatchLater:  []string{},
		History:     []string{},
		Playlists:   []string{},
	}
	require.NoError(t, repo.CreateUser(ctx, user))
	assert.ErrorIs(t, repo.CreateUser(ctx, model.User{ID: model.NewID(), UserName: "ada@example.com"}), repository.ErrDuplicate)

	stored, err := repo.GetByUserName(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)

	stale := stored
	stored.History = []string{"v1"}
	updated, err := repo.UpdateUser(ctx, stored)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.Version)

	_, err = repo.UpdateUser(ctx, stale)
	assert.ErrorIs(t, err, repository.ErrVersionConflict)

	_, err = repo.UpdateUser(ctx, model.User{ID: model.NewID()})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	grace := model.User{ID: model.NewID(), UserName: "grace@example.com", Password: "hash"}
	require.NoError(t, repo.CreateUser(ctx, grace))
	grace.UserName = "ada@example.com"
	_, err = repo.UpdateUser(ctx, grace)
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestMongoCatalogRepositories(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	creators := NewCreatorRepository(db)
	categories := NewCategoryRepository(db)
	videos := NewVideoRepository(db)

	creator := model.Creator{ID: model.NewID(), Name: "Akshay", ImgURL: "https://img.example.com/a.png"}
	category := model.Category{ID: model.NewID(), Name: "Investing"}
	require.NoError(t, creators.Create(ctx, creator))
	require.NoError(t, categories.Create(ctx, category))
	assert.ErrorIs(t, creators.Create(ctx, model.Creator{ID: model.NewID(), Name: "Akshay"}), repository.ErrDuplicate)

	v1 := model.Video{ID: "v1", Title: "Index funds", CreatorID: creator.ID, CategoryID: category.ID}
	v2 := model.Video{ID: "v2", Title: "Bonds", CreatorID: creator.ID, CategoryID: category.ID}
	require.NoError(t, videos.Create(ctx, v1))
	require.NoError(t, videos.Create(ctx, v2))
	assert.ErrorIs(t, videos.Create(ctx, v1), repository.ErrDuplicate)

	all, err := videos.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Video{v1, v2}, all)

	some, err := videos.GetByIds(ctx, []string{"v2", "missing"})
	require.NoError(t, err)
	assert.Equal(t, []model.Video{v2}, some)

	got, err := creators.GetByName(ctx, "Akshay")
	require.NoError(t, err)
	assert.Equal(t, creator, got)
}

func TestMongoPlaylistRepository(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	repo := NewPlaylistRepository(db)

	playlist := model.Playlist{ID: model.NewID(), Name: "Weekend", UserID: model.NewID(), Videos: []string{}}
	require.NoError(t, repo.Create(ctx, playlist))

	playlist.Videos = []string{"v1"}
	updated, err := repo.UpdatePlaylist(ctx, playlist)
	require.NoError(t, err)
	assert.Equal(t, []string{"v1"}, updated.Videos)

	_, err = repo.UpdatePlaylist(ctx, playlist)
	assert.ErrorIs(t, err, repository.ErrVersionConflict)

	require.NoError(t, repo.Delete(ctx, playlist.ID))
	_, err = repo.GetById(ctx, playlist.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
