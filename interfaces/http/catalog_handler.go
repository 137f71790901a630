package http

import (
	"net/http"

	"finflix/domain/dto"
	"finflix/usecase"

	"github.com/gin-gonic/gin"
)

// ICatalogHandler serves one admin-managed catalog entity (creators or
// categories).
type ICatalogHandler interface {
	Create(ctx *gin.Context)
	GetAll(ctx *gin.Context)
	GetById(ctx *gin.Context)
	Update(ctx *gin.Context)
}

type CreatorHandler struct {
	creatorUsecase usecase.ICreatorUsecase
}

func NewCreatorHandler(creatorUsecase usecase.ICreatorUsecase) ICatalogHandler {
	return &CreatorHandler{creatorUsecase: creatorUsecase}
}

func (h *CreatorHandler) Create(ctx *gin.Context) {
	var req dto.ReqCreator
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	creator, err := h.creatorUsecase.Create(ctx.Request.Context(), req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, creator)
}

func (h *CreatorHandler) GetAll(ctx *gin.Context) {
	creators, err := h.creatorUsecase.GetAll(ctx.Request.Context())
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, creators)
}

func (h *CreatorHandler) GetById(ctx *gin.Context) {
	creator, err := h.creatorUsecase.GetById(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, creator)
}

func (h *CreatorHandler) Update(ctx *gin.Context) {
	var req dto.ReqCreator
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	creator, err := h.creatorUsecase.Update(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, creator)
}

type CategoryHandler struct {
	categoryUsecase usecase.ICategoryUsecase
}

func NewCategoryHandler(categoryUsecase usecase.ICategoryUsecase) ICatalogHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase}
}

func (h *CategoryHandler) Create(ctx *gin.Context) {
	var req dto.ReqCategory
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	category, err := h.categoryUsecase.Create(ctx.Request.Context(), req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) GetAll(ctx *gin.Context) {
	categories, err := h.categoryUsecase.GetAll(ctx.Request.Context())
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetById(ctx *gin.Context) {
	category, err := h.categoryUsecase.GetById(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Update(ctx *gin.Context) {
	var req dto.ReqCategory
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	category, err := h.categoryUsecase.Update(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}
