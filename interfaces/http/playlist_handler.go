package http

import (
	"net/http"

	"finflix/domain/dto"
	"finflix/usecase"

	"github.com/gin-gonic/gin"
)

type IPlaylistHandler interface {
	Create(ctx *gin.Context)
	GetAll(ctx *gin.Context)
	GetById(ctx *gin.Context)
	Delete(ctx *gin.Context)
	AddVideo(ctx *gin.Context)
	RemoveVideo(ctx *gin.Context)
}

type PlaylistHandler struct {
	playlistUsecase usecase.IPlaylistUsecase
}

func NewPlaylistHandler(playlistUsecase usecase.IPlaylistUsecase) IPlaylistHandler {
	return &PlaylistHandler{playlistUsecase: playlistUsecase}
}

// Create handles POST /user/playlist
func (h *PlaylistHandler) Create(ctx *gin.Context) {
	var req dto.ReqCreatePlaylist
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	playlists, err := h.playlistUsecase.Create(ctx.Request.Context(), currentUser(ctx), req.Name)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ResData{Message: usecase.MsgPlaylistCreated, Data: playlists})
}

// GetAll handles GET /user/playlist
func (h *PlaylistHandler) GetAll(ctx *gin.Context) {
	playlists, err := h.playlistUsecase.GetAll(ctx.Request.Context(), currentUser(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, playlists)
}

// GetById handles GET /user/playlist/:playlistId
func (h *PlaylistHandler) GetById(ctx *gin.Context) {
	playlist, err := h.playlistUsecase.GetById(ctx.Request.Context(), currentUser(ctx), ctx.Param("playlistId"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, playlist)
}

// Delete handles DELETE /user/playlist/:playlistId
func (h *PlaylistHandler) Delete(ctx *gin.Context) {
	playlists, err := h.playlistUsecase.Delete(ctx.Request.Context(), currentUser(ctx), ctx.Param("playlistId"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ResData{Message: usecase.MsgPlaylistDeleted, Data: playlists})
}

// AddVideo handles POST /user/playlist/:playlistId/:videoId
func (h *PlaylistHandler) AddVideo(ctx *gin.Context) {
	change, err := h.playlistUsecase.AddVideo(ctx.Request.Context(), currentUser(ctx), ctx.Param("playlistId"), ctx.Param("videoId"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ResData{Message: change.Message, Data: change.Playlists})
}

// RemoveVideo handles DELETE /user/playlist/:playlistId/:videoId
func (h *PlaylistHandler) RemoveVideo(ctx *gin.Context) {
	change, err := h.playlistUsecase.RemoveVideo(ctx.Request.Context(), currentUser(ctx), ctx.Param("playlistId"), ctx.Param("videoId"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ResData{Message: change.Message, Data: change.Playlists})
}
