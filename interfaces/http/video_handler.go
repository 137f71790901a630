package http

import (
	"net/http"

	"finflix/domain/dto"
	"finflix/usecase"

	"github.com/gin-gonic/gin"
)

type IVideoHandler interface {
	Create(ctx *gin.Context)
	GetAll(ctx *gin.Context)
	GetById(ctx *gin.Context)
	Update(ctx *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

// Create handles POST /video
func (h *VideoHandler) Create(ctx *gin.Context) {
	var req dto.ReqCreateVideo
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	video, err := h.videoUsecase.Create(ctx.Request.Context(), req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, video)
}

// GetAll handles GET /video/all
func (h *VideoHandler) GetAll(ctx *gin.Context) {
	videos, err := h.videoUsecase.GetAll(ctx.Request.Context())
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, videos)
}

// GetById handles GET /video/:id
func (h *VideoHandler) GetById(ctx *gin.Context) {
	video, err := h.videoUsecase.GetById(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, video)
}

// Update handles PUT /video/:id
func (h *VideoHandler) Update(ctx *gin.Context) {
	var req dto.ReqUpdateVideo
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	video, err := h.videoUsecase.Update(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, video)
}
