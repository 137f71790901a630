package server

import (
	"net/http"
	"testing"
	"time"

	"finflix/infrastructure/persistence/memory"
	httpHandler "finflix/interfaces/http"
	"finflix/usecase"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gavv/httpexpect/v2"
	"github.com/gin-gonic/gin"
)

const (
	testSecret   = "router-secret"
	testAdminKey = "router-admin-key"
)

func newAPI(t *testing.T) *httpexpect.Expect {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := memory.NewStore()
	auth := usecase.AuthOptions{SecretKey: testSecret, AdminKey: testAdminKey, TokenTTL: time.Hour}
	router := InitiateRouter(Handlers{
		User:       httpHandler.NewUserHandler(usecase.NewUserUsecase(repos.Users, auth)),
		Video:      httpHandler.NewVideoHandler(usecase.NewVideoUsecase(repos.Videos, repos.Creators, repos.Categories, nil, 0)),
		Creator:    httpHandler.NewCreatorHandler(usecase.NewCreatorUsecase(repos.Creators, nil)),
		Category:   httpHandler.NewCategoryHandler(usecase.NewCategoryUsecase(repos.Categories, nil)),
		Collection: httpHandler.NewCollectionHandler(usecase.NewCollectionUsecase(repos.Users, repos.Videos, repos.Creators, repos.Categories)),
		Playlist:   httpHandler.NewPlaylistHandler(usecase.NewPlaylistUsecase(repos.Users, repos.Playlists, repos.Videos, repos.Creators, repos.Categories)),
		Health:     httpHandler.NewHealthHandler(nil),
	}, repos.Users, RouterOptions{SecretKey: testSecret, AllowOrigins: []string{"http://localhost:3000"}})

	return httpexpect.WithConfig(httpexpect.Config{
		BaseURL:  "http://finflix.test",
		Reporter: httpexpect.NewAssertReporter(t),
		Client: &http.Client{
			Transport: httpexpect.NewBinder(router),
			Jar:       httpexpect.NewCookieJar(),
		},
	})
}

func fakePassword() string {
	return gofakeit.Password(true, true, true, false, false, 10) + "a1"
}

func signUpBody() map[string]string {
	return map[string]string{
		"first_name": gofakeit.FirstName(),
		"last_name":  gofakeit.LastName(),
		"username":   gofakeit.Email(),
		"password":   fakePassword(),
	}
}

// signUp registers a regular user and returns its bearer token.
func signUp(e *httpexpect.Expect) string {
	return e.POST("/auth/signup").WithJSON(signUpBody()).
		Expect().
		Status(http.StatusCreated).
		JSON().Object().Value("token").String().Raw()
}

// adminToken registers an admin and logs in as it.
func adminToken(e *httpexpect.Expect) string {
	body := signUpBody()
	e.POST("/auth/admin-signup").
		WithJSON(map[string]string{
			"first_name": body["first_name"],
			"last_name":  body["last_name"],
			"username":   body["username"],
			"password":   body["password"],
			"admin_key":  testAdminKey,
		}).
		Expect().
		Status(http.StatusCreated)

	return e.POST("/auth/login").
		WithJSON(map[string]string{"username": body["username"], "password": body["password"]}).
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("token").String().Raw()
}

// seedVideo creates a creator, a category and a video as admin and returns
// the video id.
func seedVideo(e *httpexpect.Expect, admin string) string {
	creatorID := e.POST("/creator").
		WithHeader("Authorization", "Bearer "+admin).
		WithJSON(map[string]string{"name": gofakeit.Name() + " " + gofakeit.UUID(), "img_url": "https://img.example.com/" + gofakeit.UUID() + ".png"}).
		Expect().
		Status(http.StatusCreated).
		JSON().Object().Value("_id").String().Raw()

	categoryID := e.POST("/category").
		WithHeader("Authorization", admin).
		WithJSON(map[string]string{"name": gofakeit.BuzzWord() + " " + gofakeit.UUID()}).
		Expect().
		Status(http.StatusCreated).
		JSON().Object().Value("_id").String().Raw()

	videoID := gofakeit.UUID()
	e.POST("/video").
		WithHeader("Authorization", "Bearer "+admin).
		WithJSON(map[string]string{
			"id":          videoID,
			"title":       gofakeit.Sentence(3),
			"description": gofakeit.Sentence(8),
			"duration":    "12:34",
			"creator_id":  creatorID,
			"category_id": categoryID,
		}).
		Expect().
		Status(http.StatusCreated).
		JSON().Object().Value("_id").String().IsEqual(videoID)
	return videoID
}

func TestAuthRoutes(t *testing.T) {
	e := newAPI(t)
	body := signUpBody()

	res := e.POST("/auth/signup").WithJSON(body).
		Expect().
		Status(http.StatusCreated).
		JSON().Object()
	res.Value("message").String().IsEqual("User registered successfully")
	res.Value("user").Object().NotContainsKey("password")

	e.POST("/auth/signup").WithJSON(body).
		Expect().
		Status(http.StatusBadRequest).
		JSON().Object().Value("error").String().IsEqual("User already exists")

	weak := signUpBody()
	weak["password"] = "onlyletters"
	e.POST("/auth/signup").WithJSON(weak).
		Expect().
		Status(http.StatusLengthRequired).
		JSON().Object().Value("errors").Object().ContainsKey("password")

	e.POST("/auth/login").
		WithJSON(map[string]string{"username": body["username"], "password": "wrongpass1"}).
		Expect().
		Status(http.StatusUnauthorized).
		JSON().Object().Value("error").String().IsEqual("Invalid credentials")

	bad := signUpBody()
	bad["admin_key"] = "nope"
	e.POST("/auth/admin-signup").WithJSON(bad).
		Expect().
		Status(http.StatusLengthRequired)
}

func TestAccessControl(t *testing.T) {
	e := newAPI(t)
	user := signUp(e)

	e.GET("/user/liked-videos").
		Expect().
		Status(http.StatusUnauthorized).
		JSON().Object().Value("message").String().IsEqual("Unauthorized - Missing token")

	e.GET("/user/liked-videos").WithHeader("Authorization", "Bearer junk").
		Expect().
		Status(http.StatusUnauthorized).
		JSON().Object().Value("message").String().IsEqual("Unauthorized - Invalid token")

	e.POST("/category").WithHeader("Authorization", "Bearer "+user).
		WithJSON(map[string]string{"name": "Investing"}).
		Expect().
		Status(http.StatusUnauthorized).
		JSON().Object().Value("message").String().IsEqual("Unauthorized - Admin access required")

	e.GET("/video/all").Expect().Status(http.StatusOK).JSON().Array().IsEmpty()
	e.GET("/healthz").Expect().Status(http.StatusOK).JSON().Object().Value("status").String().IsEqual("ok")
	e.GET("/metrics").Expect().Status(http.StatusOK)
}

func TestCatalogRoutes(t *testing.T) {
	e := newAPI(t)
	admin := adminToken(e)
	videoID := seedVideo(e, admin)

	view := e.GET("/video/" + videoID).Expect().Status(http.StatusOK).JSON().Object()
	view.Keys().ContainsOnly("_id", "title", "creator", "creatorImgUrl", "description", "duration", "category")
	view.Value("duration").String().IsEqual("12:34")

	e.PUT("/video/"+videoID).WithHeader("Authorization", admin).
		WithJSON(map[string]string{"title": "A brand new title"}).
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("title").String().IsEqual("A brand new title")

	e.GET("/video/missing").Expect().Status(http.StatusNotFound).
		JSON().Object().Value("error").String().IsEqual("Video not found")

	e.GET("/creator/not-an-id").WithHeader("Authorization", admin).
		Expect().
		Status(http.StatusLengthRequired).
		JSON().Object().Value("error").String().IsEqual("Invalid Creator ID")

	e.POST("/video").WithHeader("Authorization", admin).
		WithJSON(map[string]string{"id": "vid", "title": "ok title", "description": "desc", "duration": "1:00", "creator_id": "x", "category_id": "y"}).
		Expect().
		Status(http.StatusLengthRequired).
		JSON().Object().Value("errors").Object().ContainsKey("creator_id")

	e.GET("/creator/all").WithHeader("Authorization", admin).
		Expect().Status(http.StatusOK).JSON().Array().Length().IsEqual(1)
}

func TestLikeDislikeFlow(t *testing.T) {
	e := newAPI(t)
	videoID := seedVideo(e, adminToken(e))
	user := "Bearer " + signUp(e)

	liked := e.POST("/user/like").WithHeader("Authorization", user).
		WithJSON(map[string]string{"video_id": videoID}).
		Expect().
		Status(http.StatusOK).
		JSON().Object()
	liked.Value("message").String().IsEqual("Video liked successfully")
	liked.Value("data").Array().Length().IsEqual(1)
	liked.Value("data").Array().Value(0).Object().Value("_id").String().IsEqual(videoID)

	e.POST("/user/like").WithHeader("Authorization", user).
		WithJSON(map[string]string{"video_id": videoID}).
		Expect().
		Status(http.StatusBadRequest).
		JSON().Object().Value("error").String().IsEqual("Video already liked by the user")

	e.POST("/user/dislike").WithHeader("Authorization", user).
		WithJSON(map[string]string{"video_id": videoID}).
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("data").Array().IsEmpty()

	e.POST("/user/dislike").WithHeader("Authorization", user).
		WithJSON(map[string]string{"video_id": videoID}).
		Expect().
		Status(http.StatusBadRequest).
		JSON().Object().Value("error").String().IsEqual("User didn't like the video")

	e.GET("/user/liked-videos").WithHeader("Authorization", user).
		Expect().Status(http.StatusOK).JSON().Array().IsEmpty()
}

func TestWatchLaterAndHistoryFlow(t *testing.T) {
	e := newAPI(t)
	admin := adminToken(e)
	v1 := seedVideo(e, admin)
	v2 := seedVideo(e, admin)
	user := signUp(e)

	e.POST("/user/watch-later").WithHeader("Authorization", user).
		WithJSON(map[string]string{"video_id": v1}).
		Expect().Status(http.StatusOK)
	e.DELETE("/user/watch-later").WithHeader("Authorization", user).
		WithJSON(map[string]string{"video_id": v1}).
		Expect().Status(http.StatusOK)
	e.DELETE("/user/watch-later").WithHeader("Authorization", user).
		WithJSON(map[string]string{"video_id": v1}).
		Expect().Status(http.StatusBadRequest)

	for _, id := range []string{v1, v2, v1} {
		e.POST("/user/history/" + id).WithHeader("Authorization", user).
			Expect().Status(http.StatusOK)
	}
	history := e.GET("/user/history").WithHeader("Authorization", user).
		Expect().Status(http.StatusOK).JSON().Array()
	history.Length().IsEqual(2)
	history.Value(0).Object().Value("_id").String().IsEqual(v1)
	history.Value(1).Object().Value("_id").String().IsEqual(v2)

	e.DELETE("/user/history/" + v2).WithHeader("Authorization", user).
		Expect().Status(http.StatusOK).
		JSON().Object().Value("data").Array().Length().IsEqual(1)

	e.DELETE("/user/history").WithHeader("Authorization", user).
		Expect().Status(http.StatusOK)
	e.GET("/user/history").WithHeader("Authorization", user).
		Expect().Status(http.StatusOK).JSON().Array().IsEmpty()

	e.POST("/user/history/unknown").WithHeader("Authorization", user).
		Expect().Status(http.StatusNotFound)
}

func TestPlaylistFlow(t *testing.T) {
	e := newAPI(t)
	videoID := seedVideo(e, adminToken(e))
	user := "Bearer " + signUp(e)

	created := e.POST("/user/playlist").WithHeader("Authorization", user).
		WithJSON(map[string]string{"name": "Favorites"}).
		Expect().
		Status(http.StatusCreated).
		JSON().Object()
	created.Value("message").String().IsEqual(usecase.MsgPlaylistCreated)
	playlists := created.Value("data").Array()
	playlists.Length().IsEqual(1)
	playlists.Value(0).Object().Value("name").String().IsEqual("Favorites")
	playlists.Value(0).Object().Value("videos").Array().IsEmpty()
	playlistID := playlists.Value(0).Object().Value("_id").String().Raw()

	added := e.POST("/user/playlist/"+playlistID+"/"+videoID).WithHeader("Authorization", user).
		Expect().Status(http.StatusOK).JSON().Object()
	added.Value("message").String().IsEqual(usecase.MsgVideoAddedToPlaylist)
	added.Value("data").Array().Value(0).Object().Value("videos").Array().Length().IsEqual(1)

	again := e.POST("/user/playlist/"+playlistID+"/"+videoID).WithHeader("Authorization", user).
		Expect().Status(http.StatusOK).JSON().Object()
	again.Value("message").String().IsEqual(usecase.MsgVideoAlreadyPresent)
	again.Value("data").Array().Value(0).Object().Value("videos").Array().Length().IsEqual(1)

	e.GET("/user/playlist/"+playlistID).WithHeader("Authorization", user).
		Expect().Status(http.StatusOK).
		JSON().Object().Value("videos").Array().Value(0).Object().Value("_id").String().IsEqual(videoID)

	other := signUp(e)
	e.DELETE("/user/playlist/"+playlistID).WithHeader("Authorization", other).
		Expect().
		Status(http.StatusBadRequest).
		JSON().Object().Value("error").String().IsEqual("Playlist is not associated with this user")

	e.DELETE("/user/playlist/"+playlistID).WithHeader("Authorization", user).
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("data").Array().IsEmpty()

	e.GET("/user/playlist").WithHeader("Authorization", user).
		Expect().Status(http.StatusOK).JSON().Array().IsEmpty()

	e.DELETE("/user/playlist/"+playlistID).WithHeader("Authorization", user).
		Expect().Status(http.StatusNotFound)
}
