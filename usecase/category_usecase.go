package usecase

import (
	"context"
	"errors"

	"finflix/domain/dto"
	"finflix/domain/model"
	"finflix/domain/repository"
	"finflix/infrastructure/logger"
)

type ICategoryUsecase interface {
	Create(ctx context.Context, req dto.ReqCategory) (model.Category, error)
	GetAll(ctx context.Context) ([]model.Category, error)
	GetById(ctx context.Context, id string) (model.Category, error)
	Update(ctx context.Context, id string, req dto.ReqCategory) (model.Category, error)
}

type categoryUsecase struct {
	categoryRepo repository.ICategory
	cache        repository.IVideoCache
}

func NewCategoryUsecase(categoryRepo repository.ICategory, cache repository.IVideoCache) ICategoryUsecase {
	return &categoryUsecase{categoryRepo: categoryRepo, cache: cache}
}

func (u *categoryUsecase) Create(ctx context.Context, req dto.ReqCategory) (model.Category, error) {
	if err := u.checkNameFree(ctx, req.Name, ""); err != nil {
		return model.Category{}, err
	}
	category := model.Category{ID: model.NewID(), Name: req.Name}
	if err := u.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return model.Category{}, Conflict("Category already exists")
		}
		logger.GetLogger().WithField("error", err).Error("Error while creating category")
		return model.Category{}, Internal(err)
	}
	return category, nil
}

func (u *categoryUsecase) GetAll(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categoryRepo.GetAll(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching categories")
		return nil, Internal(err)
	}
	return categories, nil
}

func (u *categoryUsecase) GetById(ctx context.Context, id string) (model.Category, error) {
	if !model.IsValidID(id) {
		return model.Category{}, Validation("Invalid category ID")
	}
	category, err := u.categoryRepo.GetById(ctx, id)
	if err != nil {
		return model.Category{}, lookupErr(err, "Category not found")
	}
	return category, nil
}

func (u *categoryUsecase) Update(ctx context.Context, id string, req dto.ReqCategory) (model.Category, error) {
	category, err := u.GetById(ctx, id)
	if err != nil {
		return model.Category{}, err
	}
	if err := u.checkNameFree(ctx, req.Name, id); err != nil {
		return model.Category{}, err
	}
	category.Name = req.Name
	if err := u.categoryRepo.Update(ctx, category); err != nil {
		logger.GetLogger().WithField("error", err).WithField("category_id", id).Error("Error while updating category")
		return model.Category{}, writeErr(err)
	}
	flushVideoCache(ctx, u.cache)
	return category, nil
}

func (u *categoryUsecase) checkNameFree(ctx context.Context, name, selfID string) error {
	existing, err := u.categoryRepo.GetByName(ctx, name)
	switch {
	case err == nil && existing.ID != selfID:
		return Conflict("Category already exists")
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return lookupErr(err, "")
	}
	return nil
}
