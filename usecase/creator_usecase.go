package usecase

import (
	"context"
	"errors"

	"finflix/domain/dto"
	"finflix/domain/model"
	"finflix/domain/repository"
	"finflix/infrastructure/logger"
)

type ICreatorUsecase interface {
	Create(ctx context.Context, req dto.ReqCreator) (model.Creator, error)
	GetAll(ctx context.Context) ([]model.Creator, error)
	GetById(ctx context.Context, id string) (model.Creator, error)
	Update(ctx context.Context, id string, req dto.ReqCreator) (model.Creator, error)
}

type creatorUsecase struct {
	creatorRepo repository.ICreator
	cache       repository.IVideoCache
}

func NewCreatorUsecase(creatorRepo repository.ICreator, cache repository.IVideoCache) ICreatorUsecase {
	return &creatorUsecase{creatorRepo: creatorRepo, cache: cache}
}

func (u *creatorUsecase) Create(ctx context.Context, req dto.ReqCreator) (model.Creator, error) {
	if err := u.checkNameFree(ctx, req.Name, ""); err != nil {
		return model.Creator{}, err
	}
	creator := model.Creator{ID: model.NewID(), Name: req.Name, ImgURL: req.ImgURL}
	if err := u.creatorRepo.Create(ctx, creator); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return model.Creator{}, Conflict("Creator already exists")
		}
		logger.GetLogger().WithField("error", err).Error("Error while creating creator")
		return model.Creator{}, Internal(err)
	}
	return creator, nil
}

func (u *creatorUsecase) GetAll(ctx context.Context) ([]model.Creator, error) {
	creators, err := u.creatorRepo.GetAll(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching creators")
		return nil, Internal(err)
	}
	return creators, nil
}

func (u *creatorUsecase) GetById(ctx context.Context, id string) (model.Creator, error) {
	if !model.IsValidID(id) {
		return model.Creator{}, Validation("Invalid Creator ID")
	}
	creator, err := u.creatorRepo.GetById(ctx, id)
	if err != nil {
		return model.Creator{}, lookupErr(err, "Creator not found")
	}
	return creator, nil
}

func (u *creatorUsecase) Update(ctx context.Context, id string, req dto.ReqCreator) (model.Creator, error) {
	creator, err := u.GetById(ctx, id)
	if err != nil {
		return model.Creator{}, err
	}
	if err := u.checkNameFree(ctx, req.Name, id); err != nil {
		return model.Creator{}, err
	}
	creator.Name = req.Name
	creator.ImgURL = req.ImgURL
	if err := u.creatorRepo.Update(ctx, creator); err != nil {
		logger.GetLogger().WithField("error", err).WithField("creator_id", id).Error("Error while updating creator")
		return model.Creator{}, writeErr(err)
	}
	flushVideoCache(ctx, u.cache)
	return creator, nil
}

// checkNameFree fails with Conflict when another creator already uses name.
func (u *creatorUsecase) checkNameFree(ctx context.Context, name, selfID string) error {
	existing, err := u.creatorRepo.GetByName(ctx, name)
	switch {
	case err == nil && existing.ID != selfID:
		return Conflict("Creator already exists")
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return lookupErr(err, "")
	}
	return nil
}

// flushVideoCache drops cached projections after a creator or category
// change, since every projection embeds their names.
func flushVideoCache(ctx context.Context, cache repository.IVideoCache) {
	if cache == nil {
		return
	}
	if err := cache.Flush(ctx); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Error while flushing video cache")
	}
}
