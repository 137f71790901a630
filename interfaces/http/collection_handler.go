package http

import (
	"context"
	"net/http"

	"finflix/domain/dto"
	"finflix/domain/model"
	"finflix/interfaces/middleware"
	"finflix/usecase"

	"github.com/gin-gonic/gin"
)

type ICollectionHandler interface {
	Like(ctx *gin.Context)
	Dislike(ctx *gin.Context)
	GetLiked(ctx *gin.Context)

	AddWatchLater(ctx *gin.Context)
	RemoveWatchLater(ctx *gin.Context)
	GetWatchLater(ctx *gin.Context)

	AddHistory(ctx *gin.Context)
	RemoveHistory(ctx *gin.Context)
	ClearHistory(ctx *gin.Context)
	GetHistory(ctx *gin.Context)
}

type CollectionHandler struct {
	collectionUsecase usecase.ICollectionUsecase
}

func NewCollectionHandler(collectionUsecase usecase.ICollectionUsecase) ICollectionHandler {
	return &CollectionHandler{collectionUsecase: collectionUsecase}
}

func currentUser(ctx *gin.Context) string {
	return ctx.GetString(middleware.KeyUserID)
}

// Like handles POST /user/like
func (h *CollectionHandler) Like(ctx *gin.Context) {
	h.mutateFromBody(ctx, model.CollectionLiked, h.collectionUsecase.Add, "Video liked successfully")
}

// Dislike handles POST /user/dislike
func (h *CollectionHandler) Dislike(ctx *gin.Context) {
	h.mutateFromBody(ctx, model.CollectionLiked, h.collectionUsecase.Remove, "Video disliked successfully")
}

// GetLiked handles GET /user/liked-videos
func (h *CollectionHandler) GetLiked(ctx *gin.Context) {
	h.list(ctx, model.CollectionLiked)
}

// AddWatchLater handles POST /user/watch-later
func (h *CollectionHandler) AddWatchLater(ctx *gin.Context) {
	h.mutateFromBody(ctx, model.CollectionWatchLater, h.collectionUsecase.Add, "Video added to watch later successfully")
}

// RemoveWatchLater handles DELETE /user/watch-later
func (h *CollectionHandler) RemoveWatchLater(ctx *gin.Context) {
	h.mutateFromBody(ctx, model.CollectionWatchLater, h.collectionUsecase.Remove, "Video removed from Watch later")
}

// GetWatchLater handles GET /user/watch-later
func (h *CollectionHandler) GetWatchLater(ctx *gin.Context) {
	h.list(ctx, model.CollectionWatchLater)
}

// AddHistory handles POST /user/history/:videoId
func (h *CollectionHandler) AddHistory(ctx *gin.Context) {
	h.mutate(ctx, model.CollectionHistory, ctx.Param("videoId"), h.collectionUsecase.Add, "Video added to history successfully")
}

// RemoveHistory handles DELETE /user/history/:videoId
func (h *CollectionHandler) RemoveHistory(ctx *gin.Context) {
	h.mutate(ctx, model.CollectionHistory, ctx.Param("videoId"), h.collectionUsecase.Remove, "Video removed from history")
}

// ClearHistory handles DELETE /user/history
func (h *CollectionHandler) ClearHistory(ctx *gin.Context) {
	if err := h.collectionUsecase.ClearHistory(ctx.Request.Context(), currentUser(ctx)); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ResData{Message: "History cleared", Data: []model.VideoView{}})
}

// GetHistory handles GET /user/history
func (h *CollectionHandler) GetHistory(ctx *gin.Context) {
	h.list(ctx, model.CollectionHistory)
}

type collectionOp func(ctx context.Context, userID string, kind model.CollectionKind, videoID string) ([]model.VideoView, error)

func (h *CollectionHandler) mutateFromBody(ctx *gin.Context, kind model.CollectionKind, op collectionOp, msg string) {
	var req dto.ReqVideoRef
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	h.mutate(ctx, kind, req.VideoID, op, msg)
}

func (h *CollectionHandler) mutate(ctx *gin.Context, kind model.CollectionKind, videoID string, op collectionOp, msg string) {
	videos, err := op(ctx.Request.Context(), currentUser(ctx), kind, videoID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ResData{Message: msg, Data: videos})
}

func (h *CollectionHandler) list(ctx *gin.Context, kind model.CollectionKind) {
	videos, err := h.collectionUsecase.List(ctx.Request.Context(), currentUser(ctx), kind)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, videos)
}
