package usecase

import (
	"context"
	"errors"
	"time"

	"finflix/domain/dto"
	"finflix/domain/model"
	"finflix/domain/repository"
	"finflix/infrastructure/logger"
	"finflix/infrastructure/metrics"

	"golang.org/x/sync/singleflight"
)

type IVideoUsecase interface {
	Create(ctx context.Context, req dto.ReqCreateVideo) (model.Video, error)
	GetAll(ctx context.Context) ([]model.VideoView, error)
	GetById(ctx context.Context, id string) (model.VideoView, error)
	Update(ctx context.Context, id string, req dto.ReqUpdateVideo) (model.Video, error)
}

type videoUsecase struct {
	videoRepo    repository.IVideo
	creatorRepo  repository.ICreator
	categoryRepo repository.ICategory
	resolver     *videoResolver
	cache        repository.IVideoCache
	cacheTTL     time.Duration
	sfGroup      singleflight.Group
}

// NewVideoUsecase builds the catalog video use case. cache may be nil, in
// which case every read goes to the store.
func NewVideoUsecase(
	videoRepo repository.IVideo,
	creatorRepo repository.ICreator,
	categoryRepo repository.ICategory,
	cache repository.IVideoCache,
	cacheTTL time.Duration,
) IVideoUsecase {
	return &videoUsecase{
		videoRepo:    videoRepo,
		creatorRepo:  creatorRepo,
		categoryRepo: categoryRepo,
		resolver:     newVideoResolver(videoRepo, creatorRepo, categoryRepo),
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

func (u *videoUsecase) Create(ctx context.Context, req dto.ReqCreateVideo) (model.Video, error) {
	if err := u.checkReferences(ctx, req.CreatorID, req.CategoryID); err != nil {
		return model.Video{}, err
	}
	if _, err := u.videoRepo.GetById(ctx, req.ID); err == nil {
		return model.Video{}, Conflict("Video already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return model.Video{}, lookupErr(err, "")
	}

	video := model.Video{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		CreatorID:   req.CreatorID,
		CategoryID:  req.CategoryID,
	}
	if err := u.videoRepo.Create(ctx, video); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return model.Video{}, Conflict("Video already exists")
		}
		logger.GetLogger().WithField("error", err).WithField("video_id", req.ID).Error("Error while creating video")
		return model.Video{}, Internal(err)
	}
	return video, nil
}

func (u *videoUsecase) GetAll(ctx context.Context) ([]model.VideoView, error) {
	videos, err := u.videoRepo.GetAll(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching videos")
		return nil, Internal(err)
	}
	resolved, err := u.resolver.ResolveVideos(ctx, videos)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while resolving videos")
		return nil, Internal(err)
	}
	return FormatVideos(resolved), nil
}

func (u *videoUsecase) GetById(ctx context.Context, id string) (model.VideoView, error) {
	if view := u.cached(ctx, id); view != nil {
		return *view, nil
	}

	// Concurrent misses for the same id share one store round trip, so the
	// load must outlive the caller that started it.
	loadCtx := context.WithoutCancel(ctx)
	result, err, shared := u.sfGroup.Do(id, func() (interface{}, error) {
		return u.load(loadCtx, id)
	})
	if shared {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightShared).Inc()
	} else {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightInitiated).Inc()
	}
	if err != nil {
		return model.VideoView{}, err
	}
	return result.(model.VideoView), nil
}

func (u *videoUsecase) load(ctx context.Context, id string) (model.VideoView, error) {
	video, err := u.videoRepo.GetById(ctx, id)
	if err != nil {
		return model.VideoView{}, lookupErr(err, "Video not found")
	}
	resolved, err := u.resolver.ResolveVideos(ctx, []model.Video{video})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while resolving video")
		return model.VideoView{}, Internal(err)
	}
	if len(resolved) == 0 {
		return model.VideoView{}, Internal(errors.New("video " + id + " references a missing creator or category"))
	}
	view := FormatVideo(resolved[0])
	if u.cache != nil {
		if err := u.cache.Set(ctx, view, u.cacheTTL); err != nil {
			logger.GetLogger().WithField("error", err).WithField("video_id", id).Warn("Error while caching video")
		}
	}
	return view, nil
}

func (u *videoUsecase) cached(ctx context.Context, id string) *model.VideoView {
	if u.cache == nil {
		return nil
	}
	view, err := u.cache.Get(ctx, id)
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("video_id", id).Warn("Error while reading video cache")
		return nil
	}
	return view
}

func (u *videoUsecase) Update(ctx context.Context, id string, req dto.ReqUpdateVideo) (model.Video, error) {
	replaceRefs := req.CreatorID != "" && req.CategoryID != ""
	if replaceRefs {
		if err := u.checkReferences(ctx, req.CreatorID, req.CategoryID); err != nil {
			return model.Video{}, err
		}
	}

	video, err := u.videoRepo.GetById(ctx, id)
	if err != nil {
		return model.Video{}, lookupErr(err, "Video not found")
	}
	if req.Title != nil {
		video.Title = *req.Title
	}
	if req.Description != nil {
		video.Description = *req.Description
	}
	if req.Duration != nil {
		video.Duration = *req.Duration
	}
	if replaceRefs {
		video.CreatorID = req.CreatorID
		video.CategoryID = req.CategoryID
	}

	if err := u.videoRepo.Update(ctx, video); err != nil {
		logger.GetLogger().WithField("error", err).WithField("video_id", id).Error("Error while updating video")
		return model.Video{}, writeErr(err)
	}
	// Later misses start a fresh load instead of joining one that read the
	// old document.
	u.sfGroup.Forget(id)
	if u.cache != nil {
		if err := u.cache.Delete(ctx, id); err != nil {
			logger.GetLogger().WithField("error", err).WithField("video_id", id).Warn("Error while invalidating video cache")
		}
	}
	return video, nil
}

func (u *videoUsecase) checkReferences(ctx context.Context, creatorID, categoryID string) error {
	if _, err := u.creatorRepo.GetById(ctx, creatorID); err != nil {
		return lookupErr(err, "Creator not found")
	}
	if _, err := u.categoryRepo.GetById(ctx, categoryID); err != nil {
		return lookupErr(err, "Category not found")
	}
	return nil
}
