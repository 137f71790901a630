package usecase_test

import (
	"context"
	"testing"

	"finflix/domain/model"
	"finflix/domain/repository"
	"finflix/infrastructure/persistence/memory"

	"github.com/stretchr/testify/require"
)

// catalog is a seeded in-memory store shared by the use case tests.
type catalog struct {
	store    *repository.Repositories
	creator  model.Creator
	category model.Category
	user     model.User
	videos   []model.Video
}

func seedCatalog(t *testing.T, videoIDs ...string) *catalog {
	t.Helper()
	ctx := context.Background()
	c := &catalog{
		store:    memory.NewStore(),
		creator:  model.Creator{ID: model.NewID(), Name: "Akshay", ImgURL: "https://img.example.com/akshay.png"},
		category: model.Category{ID: model.NewID(), Name: "Investing"},
	}
	require.NoError(t, c.store.Creators.Create(ctx, c.creator))
	require.NoError(t, c.store.Categories.Create(ctx, c.category))
	for _, id := range videoIDs {
		v := model.Video{
			ID:          id,
			Title:       "Title " + id,
			Description: "About " + id,
			Duration:    "10:00",
			CreatorID:   c.creator.ID,
			CategoryID:  c.category.ID,
		}
		require.NoError(t, c.store.Videos.Create(ctx, v))
		c.videos = append(c.videos, v)
	}
	c.user = model.User{
		ID:          model.NewID(),
		UserName:    "ada@example.com",
		LikedVideos: []string{},
		WatchLater:  []string{},
		History:     []string{},
		Playlists:   []string{},
	}
	require.NoError(t, c.store.Users.CreateUser(ctx, c.user))
	return c
}

func (c *catalog) storedUser(t *testing.T) model.User {
	t.Helper()
	u, err := c.store.Users.GetById(context.Background(), c.user.ID)
	require.NoError(t, err)
	return u
}

func viewIDs(views []model.VideoView) []string {
	ids := make([]string, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	return ids
}
